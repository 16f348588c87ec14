package relationship

import (
	"context"

	"github.com/pkg/errors"

	"github.com/lynkcircles/client/internal/cache"
	"github.com/lynkcircles/client/internal/models"
	"github.com/lynkcircles/client/internal/session"
)

// ErrNotAuthenticated is returned when a mutation is attempted without a
// viewer identity. The call never reaches the network.
var ErrNotAuthenticated = errors.New("relationship: viewer is not authenticated")

// ErrOperationInFlight is returned when a mutation for the same user pair is
// already pending. The duplicate is rejected locally.
var ErrOperationInFlight = errors.New("relationship: an operation for this pair is already in flight")

// Remote is the slice of the remote API the Mutator writes through.
type Remote interface {
	SendConnectionRequest(ctx context.Context, userID string) (*models.ConnectionRequest, error)
	AcceptConnectionRequest(ctx context.Context, requestID string) error
	RejectConnectionRequest(ctx context.Context, requestID string) error
	RemoveConnection(ctx context.Context, userID string) error
}

// Mutator issues relationship mutations against the remote store and refetches
// the affected cached collections on success. It never edits the cache
// optimistically; a failed call leaves every snapshot untouched.
type Mutator struct {
	remote  Remote
	store   *cache.Store
	session *session.Session
	guard   *pairGuard
}

// NewMutator creates a Mutator for the given viewer session.
func NewMutator(remote Remote, store *cache.Store, sess *session.Session) *Mutator {
	return &Mutator{
		remote:  remote,
		store:   store,
		session: sess,
		guard:   newPairGuard(),
	}
}

// Status resolves the current relationship status between the viewer and the
// target from the cached collections.
func (m *Mutator) Status(targetID string) Status {
	if !m.session.Authenticated() {
		return StatusNotConnected
	}
	return Resolve(m.session.UserID, targetID, m.store.Connections(), m.store.PendingRequests())
}

// SendRequest creates a connection request from the viewer to the target. The
// caller is expected to have checked that the pair resolves to not_connected.
func (m *Mutator) SendRequest(ctx context.Context, targetID string) error {
	return m.mutatePair(ctx, targetID, func(ctx context.Context) error {
		_, err := m.remote.SendConnectionRequest(ctx, targetID)
		return err
	})
}

// AcceptRequest promotes a received request to a connection on both sides.
func (m *Mutator) AcceptRequest(ctx context.Context, requestID string) error {
	return m.mutateRequest(ctx, requestID, m.remote.AcceptConnectionRequest)
}

// RejectRequest deletes a received request without creating a connection.
func (m *Mutator) RejectRequest(ctx context.Context, requestID string) error {
	return m.mutateRequest(ctx, requestID, m.remote.RejectConnectionRequest)
}

// RemoveConnection deletes the established connection with the target on both
// sides.
func (m *Mutator) RemoveConnection(ctx context.Context, targetID string) error {
	return m.mutatePair(ctx, targetID, func(ctx context.Context) error {
		return m.remote.RemoveConnection(ctx, targetID)
	})
}

// mutatePair runs a mutation keyed by the viewer/target pair.
func (m *Mutator) mutatePair(ctx context.Context, targetID string, op func(context.Context) error) error {
	if !m.session.Authenticated() {
		return ErrNotAuthenticated
	}
	return m.run(ctx, pairKey(m.session.UserID, targetID), op)
}

// mutateRequest runs a mutation addressed by request id. The pair key is
// derived from the cached request record so that accept/reject and a
// concurrent send/remove for the same pair exclude each other; a request that
// is no longer cached falls back to keying on its id.
func (m *Mutator) mutateRequest(ctx context.Context, requestID string, op func(context.Context, string) error) error {
	if !m.session.Authenticated() {
		return ErrNotAuthenticated
	}

	key := "request|" + requestID
	for _, req := range m.store.PendingRequests() {
		if req.ID == requestID {
			key = pairKey(req.FromUserID, req.ToUserID)
			break
		}
	}

	return m.run(ctx, key, func(ctx context.Context) error {
		return op(ctx, requestID)
	})
}

func (m *Mutator) run(ctx context.Context, key string, op func(context.Context) error) error {
	if !m.guard.acquire(key) {
		return ErrOperationInFlight
	}
	defer m.guard.release(key)

	if err := op(ctx); err != nil {
		return err
	}

	// The mutation is committed remotely; a refetch failure only means the
	// UI keeps showing the pre-mutation snapshot until the next refresh.
	if err := m.store.RefreshRelationships(ctx); err != nil {
		return errors.Wrap(err, "mutation succeeded but cache refresh failed")
	}
	return nil
}
