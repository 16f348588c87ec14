package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lynkcircles/client/internal/models"
)

func TestUnreadCount(t *testing.T) {
	tests := []struct {
		name          string
		notifications []models.Notification
		want          int
	}{
		{
			name: "nil collection counts as zero",
			want: 0,
		},
		{
			name:          "empty collection counts as zero",
			notifications: []models.Notification{},
			want:          0,
		},
		{
			name: "only unread entries count",
			notifications: []models.Notification{
				{ID: "n1", Read: false},
				{ID: "n2", Read: true},
				{ID: "n3", Read: false},
			},
			want: 2,
		},
		{
			name: "all read counts as zero",
			notifications: []models.Notification{
				{ID: "n1", Read: true},
				{ID: "n2", Read: true},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnreadCount(tt.notifications))
		})
	}
}

func TestPendingRequestCount(t *testing.T) {
	requests := []models.ConnectionRequest{
		{ID: "r1", FromUserID: "u2", ToUserID: "u1"},
		{ID: "r2", FromUserID: "u1", ToUserID: "u3"}, // outgoing, must not badge
		{ID: "r3", FromUserID: "u4", ToUserID: "u1"},
	}

	assert.Equal(t, 2, PendingRequestCount("u1", requests))
	assert.Equal(t, 1, PendingRequestCount("u3", requests))
	assert.Equal(t, 0, PendingRequestCount("u5", requests))
	assert.Equal(t, 0, PendingRequestCount("u1", nil))
}

func TestForViewer(t *testing.T) {
	notifications := []models.Notification{
		{ID: "n1", Read: false},
		{ID: "n2", Read: true},
	}
	requests := []models.ConnectionRequest{
		{ID: "r1", FromUserID: "u2", ToUserID: "u1"},
	}

	badges := ForViewer("u1", notifications, requests)
	assert.Equal(t, Badges{UnreadNotifications: 1, PendingRequests: 1}, badges)

	assert.Equal(t, Badges{}, ForViewer("u1", nil, nil))
}
