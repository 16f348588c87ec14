// Package cache holds the client-side snapshots of the remote collections the
// relationship and notification layers read from. The remote store is the
// single source of truth; these snapshots are only ever overwritten by a
// refetch, never edited in place.
package cache

import (
	"context"
	"sync"

	"github.com/lynkcircles/client/internal/models"
)

// Fetcher is the slice of the remote API the store pulls from.
type Fetcher interface {
	FetchConnections(ctx context.Context) ([]string, error)
	FetchPendingRequests(ctx context.Context) ([]models.ConnectionRequest, error)
	FetchNotifications(ctx context.Context) ([]models.Notification, error)
}

// Store caches the viewer's connections, pending requests and notifications.
// Reads are cheap snapshot copies; an unloaded collection reads as empty
// rather than as an error, so callers can render a loading state as zero.
type Store struct {
	mu      sync.RWMutex
	fetcher Fetcher

	connections   []string
	requests      []models.ConnectionRequest
	notifications []models.Notification

	connectionsLoaded   bool
	requestsLoaded      bool
	notificationsLoaded bool
}

// NewStore creates a Store backed by the given fetcher. No collection is
// loaded until the first Refresh call.
func NewStore(fetcher Fetcher) *Store {
	return &Store{fetcher: fetcher}
}

// Connections returns a copy of the cached set of connected user ids.
func (s *Store) Connections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.connections))
	copy(out, s.connections)
	return out
}

// PendingRequests returns a copy of the cached connection requests involving
// the viewer, in both directions.
func (s *Store) PendingRequests() []models.ConnectionRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ConnectionRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Notifications returns a copy of the cached notifications.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// Loaded reports whether all three collections have been fetched at least
// once since the last invalidation.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connectionsLoaded && s.requestsLoaded && s.notificationsLoaded
}

// RefreshConnections refetches the connection ids. On failure the previous
// snapshot is kept.
func (s *Store) RefreshConnections(ctx context.Context) error {
	ids, err := s.fetcher.FetchConnections(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.connections = ids
	s.connectionsLoaded = true
	s.mu.Unlock()
	return nil
}

// RefreshPendingRequests refetches the pending request records. On failure
// the previous snapshot is kept.
func (s *Store) RefreshPendingRequests(ctx context.Context) error {
	requests, err := s.fetcher.FetchPendingRequests(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.requests = requests
	s.requestsLoaded = true
	s.mu.Unlock()
	return nil
}

// RefreshNotifications refetches the notification records. On failure the
// previous snapshot is kept.
func (s *Store) RefreshNotifications(ctx context.Context) error {
	notifications, err := s.fetcher.FetchNotifications(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.notifications = notifications
	s.notificationsLoaded = true
	s.mu.Unlock()
	return nil
}

// RefreshRelationships refetches the two collections a relationship mutation
// can change: connections and pending requests.
func (s *Store) RefreshRelationships(ctx context.Context) error {
	if err := s.RefreshConnections(ctx); err != nil {
		return err
	}
	return s.RefreshPendingRequests(ctx)
}

// RefreshAll refetches every cached collection.
func (s *Store) RefreshAll(ctx context.Context) error {
	if err := s.RefreshRelationships(ctx); err != nil {
		return err
	}
	return s.RefreshNotifications(ctx)
}

// Invalidate marks every collection as unloaded. The stale snapshots remain
// readable until the next refresh overwrites them.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.connectionsLoaded = false
	s.requestsLoaded = false
	s.notificationsLoaded = false
	s.mu.Unlock()
}
