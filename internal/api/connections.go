package api

import (
	"context"
	"net/http"

	"github.com/lynkcircles/client/internal/models"
)

// SendConnectionRequest creates a directed connection request from the
// authenticated viewer to the given user.
func (c *Client) SendConnectionRequest(ctx context.Context, userID string) (*models.ConnectionRequest, error) {
	var req models.ConnectionRequest
	if err := c.do(ctx, http.MethodPost, "/connections/request/"+userID, nil, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// AcceptConnectionRequest promotes the request to a symmetric connection on
// both users and deletes the request.
func (c *Client) AcceptConnectionRequest(ctx context.Context, requestID string) error {
	return c.do(ctx, http.MethodPut, "/connections/accept/"+requestID, nil, nil)
}

// RejectConnectionRequest deletes the request without creating a connection.
func (c *Client) RejectConnectionRequest(ctx context.Context, requestID string) error {
	return c.do(ctx, http.MethodPut, "/connections/reject/"+requestID, nil, nil)
}

// RemoveConnection deletes the connection between the viewer and the given
// user on both sides.
func (c *Client) RemoveConnection(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/connections/"+userID, nil, nil)
}

// FetchConnections retrieves the ids of all users connected to the viewer.
func (c *Client) FetchConnections(ctx context.Context) ([]string, error) {
	var ids []string
	if err := c.do(ctx, http.MethodGet, "/connections", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// FetchPendingRequests retrieves all outstanding connection requests involving
// the viewer, in both directions.
func (c *Client) FetchPendingRequests(ctx context.Context) ([]models.ConnectionRequest, error) {
	var requests []models.ConnectionRequest
	if err := c.do(ctx, http.MethodGet, "/connections/requests", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
