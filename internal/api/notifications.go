package api

import (
	"context"
	"net/http"

	"github.com/lynkcircles/client/internal/models"
)

// FetchNotifications retrieves all notifications for the viewer, newest first.
func (c *Client) FetchNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+notificationID+"/read", nil, nil)
}

// MarkAllNotificationsRead marks every notification for the viewer as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil)
}
