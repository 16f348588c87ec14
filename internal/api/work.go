package api

import (
	"context"
	"net/http"

	"github.com/lynkcircles/client/internal/models"
)

// FetchWorkDetails retrieves a member's service listing, including reviews.
func (c *Client) FetchWorkDetails(ctx context.Context, username string) (*models.WorkDetails, error) {
	var details models.WorkDetails
	if err := c.do(ctx, http.MethodGet, "/workdetails/"+username, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// UpdateWorkDetails persists edits to the viewer's own service listing.
func (c *Client) UpdateWorkDetails(ctx context.Context, details models.WorkDetails) (*models.WorkDetails, error) {
	var updated models.WorkDetails
	if err := c.do(ctx, http.MethodPut, "/workdetails/update", details, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddJobPortfolio attaches a new portfolio entry to a service listing.
func (c *Client) AddJobPortfolio(ctx context.Context, job models.JobPortfolio) (*models.JobPortfolio, error) {
	var created models.JobPortfolio
	if err := c.do(ctx, http.MethodPost, "/workdetails/jobportfolio", job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateJobPortfolio persists edits to an existing portfolio entry.
func (c *Client) UpdateJobPortfolio(ctx context.Context, job models.JobPortfolio) (*models.JobPortfolio, error) {
	var updated models.JobPortfolio
	if err := c.do(ctx, http.MethodPut, "/workdetails/jobportfolio", job, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteJobPortfolio removes a portfolio entry.
func (c *Client) DeleteJobPortfolio(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/workdetails/jobportfolio/"+jobID, nil, nil)
}
