// Package relationship derives and mutates the pairwise connection state
// between the viewer and another member. Status is never stored; it is
// recomputed from the cached connection and request collections on every
// read.
package relationship

import "github.com/lynkcircles/client/internal/models"

// Status is the derived relationship state between a viewer and a target.
// The state space is closed: Resolve can return nothing outside these four.
type Status string

const (
	// StatusConnected means an established, symmetric connection exists.
	StatusConnected Status = "connected"

	// StatusPending means the viewer has sent a request the target has not
	// answered yet.
	StatusPending Status = "pending"

	// StatusReceived means the target has sent a request the viewer has not
	// answered yet.
	StatusReceived Status = "received"

	// StatusNotConnected means no connection and no outstanding request
	// exists between the pair.
	StatusNotConnected Status = "not_connected"
)

// Resolve computes the relationship status between viewer and target from the
// viewer's connection ids and the pending requests involving the viewer.
// First match wins: an established connection outranks any request record, so
// store-inconsistent data can never display a connected user as pending.
func Resolve(viewerID, targetID string, connections []string, pending []models.ConnectionRequest) Status {
	for _, id := range connections {
		if id == targetID {
			return StatusConnected
		}
	}
	for _, req := range pending {
		if req.FromUserID == viewerID && req.ToUserID == targetID {
			return StatusPending
		}
	}
	for _, req := range pending {
		if req.FromUserID == targetID && req.ToUserID == viewerID {
			return StatusReceived
		}
	}
	return StatusNotConnected
}

// PendingRequestBetween returns the outstanding request linking the two users,
// in either direction, or nil when none exists. The UI needs the request id
// to offer accept and reject.
func PendingRequestBetween(viewerID, targetID string, pending []models.ConnectionRequest) *models.ConnectionRequest {
	for i := range pending {
		if pending[i].IsBetween(viewerID, targetID) {
			return &pending[i]
		}
	}
	return nil
}
