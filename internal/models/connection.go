package models

import "time"

// ConnectionRequest is a directed, pending connection proposal between two
// members. It is created by a send action and removed again when the recipient
// accepts or rejects it; acceptance promotes it to a symmetric connection on
// the remote store.
type ConnectionRequest struct {
	ID         string      `json:"requestId"`
	FromUserID string      `json:"fromUserId"`
	ToUserID   string      `json:"toUserId"`
	CreatedAt  time.Time   `json:"createdAt"`
	From       UserCompact `json:"from,omitempty"`
}

// Involves reports whether the given user is either side of the request.
func (r ConnectionRequest) Involves(userID string) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// IsBetween reports whether the request links the two given users, in either
// direction.
func (r ConnectionRequest) IsBetween(a, b string) bool {
	return (r.FromUserID == a && r.ToUserID == b) || (r.FromUserID == b && r.ToUserID == a)
}
