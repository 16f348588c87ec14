// Package notification derives the navigation badge counts from the cached
// notification and request collections. Everything here is pure; the counts
// are recomputed on every render from the current snapshots.
package notification

import "github.com/lynkcircles/client/internal/models"

// UnreadCount returns the number of notifications not yet read. A nil or
// not-yet-loaded collection counts as zero.
func UnreadCount(notifications []models.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// PendingRequestCount returns the number of outstanding requests addressed to
// the viewer. Outgoing requests do not badge.
func PendingRequestCount(viewerID string, requests []models.ConnectionRequest) int {
	count := 0
	for _, req := range requests {
		if req.ToUserID == viewerID {
			count++
		}
	}
	return count
}

// Badges bundles the two navigation badge counts.
type Badges struct {
	UnreadNotifications int `json:"unreadNotifications"`
	PendingRequests     int `json:"pendingRequests"`
}

// ForViewer computes both badge counts for the viewer in one pass over the
// current snapshots.
func ForViewer(viewerID string, notifications []models.Notification, requests []models.ConnectionRequest) Badges {
	return Badges{
		UnreadNotifications: UnreadCount(notifications),
		PendingRequests:     PendingRequestCount(viewerID, requests),
	}
}
