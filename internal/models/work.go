package models

import "time"

// WorkDetails describes the service a worker member offers on their profile.
type WorkDetails struct {
	ID          string   `json:"_id"`
	UserID      string   `json:"userId"`
	ServiceName string   `json:"serviceName"`
	Description string   `json:"description"`
	HourlyRate  float64  `json:"hourlyRate"`
	WorkingDays []string `json:"workingDays"`
	Reviews     []Review `json:"reviews,omitempty"`
}

// Review is a rating left on a service listing.
type Review struct {
	ID         string    `json:"_id"`
	ReviewerID string    `json:"reviewerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// JobPortfolio is a portfolio entry attached to a service listing, with
// optional image and video attachments.
type JobPortfolio struct {
	ID          string   `json:"_id,omitempty"`
	ServiceID   string   `json:"serviceId"`
	JobTitle    string   `json:"jobTitle"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
	Videos      []string `json:"videos,omitempty"`
}
