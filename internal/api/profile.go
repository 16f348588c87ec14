package api

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/lynkcircles/client/internal/models"
)

// FetchProfile retrieves another member's public profile by username.
func (c *Client) FetchProfile(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/profile/"+username, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile persists edits to the viewer's own profile and returns the
// updated record.
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := c.do(ctx, http.MethodPut, "/users/profile", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
