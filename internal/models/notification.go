package models

import "time"

// Notification represents a user notification as returned by the remote API
type Notification struct {
	ID        string    `json:"_id"`
	Type      string    `json:"type"` // connection_accepted, review, mention, message
	ActorID   string    `json:"actorId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
