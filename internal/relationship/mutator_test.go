package relationship_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lynkcircles/client/internal/cache"
	"github.com/lynkcircles/client/internal/models"
	"github.com/lynkcircles/client/internal/relationship"
	"github.com/lynkcircles/client/internal/remotetest"
	"github.com/lynkcircles/client/internal/session"
)

type party struct {
	store   *cache.Store
	mutator *relationship.Mutator
}

// newParty wires an authenticated client stack for one member against the
// fake remote.
func newParty(srv *remotetest.Server, userID string) *party {
	client := srv.Client(userID)
	store := cache.NewStore(client)
	sess := session.FromUser(&models.User{ID: userID, Username: userID})
	return &party{
		store:   store,
		mutator: relationship.NewMutator(client, store, sess),
	}
}

func newTwoUserServer(t *testing.T) (*remotetest.Server, *party, *party) {
	t.Helper()
	srv := remotetest.NewServer()
	t.Cleanup(srv.Close)

	srv.AddUser(&models.User{ID: "u1", Username: "alice"})
	srv.AddUser(&models.User{ID: "u2", Username: "bob"})

	u1 := newParty(srv, "u1")
	u2 := newParty(srv, "u2")

	ctx := context.Background()
	require.NoError(t, u1.store.RefreshRelationships(ctx))
	require.NoError(t, u2.store.RefreshRelationships(ctx))
	return srv, u1, u2
}

func TestMutator_SendAcceptScenario(t *testing.T) {
	_, u1, u2 := newTwoUserServer(t)
	ctx := context.Background()

	require.Equal(t, relationship.StatusNotConnected, u1.mutator.Status("u2"))

	// u1 sends; requester sees pending, recipient sees received.
	require.NoError(t, u1.mutator.SendRequest(ctx, "u2"))
	require.NoError(t, u2.store.RefreshRelationships(ctx))
	assert.Equal(t, relationship.StatusPending, u1.mutator.Status("u2"))
	assert.Equal(t, relationship.StatusReceived, u2.mutator.Status("u1"))

	req := relationship.PendingRequestBetween("u2", "u1", u2.store.PendingRequests())
	require.NotNil(t, req)

	// u2 accepts; both sides resolve to connected.
	require.NoError(t, u2.mutator.AcceptRequest(ctx, req.ID))
	require.NoError(t, u1.store.RefreshRelationships(ctx))
	assert.Equal(t, relationship.StatusConnected, u1.mutator.Status("u2"))
	assert.Equal(t, relationship.StatusConnected, u2.mutator.Status("u1"))
}

func TestMutator_RejectRequest(t *testing.T) {
	srv, u1, u2 := newTwoUserServer(t)
	ctx := context.Background()

	require.NoError(t, u1.mutator.SendRequest(ctx, "u2"))
	require.NoError(t, u2.store.RefreshRelationships(ctx))

	req := relationship.PendingRequestBetween("u2", "u1", u2.store.PendingRequests())
	require.NotNil(t, req)

	require.NoError(t, u2.mutator.RejectRequest(ctx, req.ID))
	require.NoError(t, u1.store.RefreshRelationships(ctx))

	assert.Equal(t, relationship.StatusNotConnected, u1.mutator.Status("u2"))
	assert.Equal(t, relationship.StatusNotConnected, u2.mutator.Status("u1"))
	assert.Zero(t, srv.PendingRequestCountFor("u1"))
	assert.Zero(t, srv.PendingRequestCountFor("u2"))
}

func TestMutator_RemoveConnection(t *testing.T) {
	srv, u1, u2 := newTwoUserServer(t)
	ctx := context.Background()

	srv.Connect("u1", "u2")
	require.NoError(t, u1.store.RefreshRelationships(ctx))
	require.NoError(t, u2.store.RefreshRelationships(ctx))
	require.Equal(t, relationship.StatusConnected, u1.mutator.Status("u2"))

	require.NoError(t, u1.mutator.RemoveConnection(ctx, "u2"))
	require.NoError(t, u2.store.RefreshRelationships(ctx))

	assert.Equal(t, relationship.StatusNotConnected, u1.mutator.Status("u2"))
	assert.Equal(t, relationship.StatusNotConnected, u2.mutator.Status("u1"))
}

func TestMutator_FailedAcceptLeavesCacheUnchanged(t *testing.T) {
	srv, u1, u2 := newTwoUserServer(t)
	ctx := context.Background()

	require.NoError(t, u1.mutator.SendRequest(ctx, "u2"))
	require.NoError(t, u2.store.RefreshRelationships(ctx))

	req := relationship.PendingRequestBetween("u2", "u1", u2.store.PendingRequests())
	require.NotNil(t, req)
	before := u2.store.PendingRequests()

	srv.FailNext(1)
	err := u2.mutator.AcceptRequest(ctx, req.ID)
	require.Error(t, err)

	assert.Equal(t, before, u2.store.PendingRequests())
	assert.Equal(t, relationship.StatusReceived, u2.mutator.Status("u1"))
	assert.Equal(t, 1, srv.PendingRequestCountFor("u2"))
}

func TestMutator_FailedSendSurfacesServerMessage(t *testing.T) {
	srv, u1, _ := newTwoUserServer(t)
	ctx := context.Background()

	srv.Connect("u1", "u2")

	// The fake, like the real store, rejects a request between connected
	// users. The cached snapshot must stay on its pre-call state.
	err := u1.mutator.SendRequest(ctx, "u2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already connected")
	assert.Empty(t, u1.store.Connections())
}

func TestMutator_Unauthenticated(t *testing.T) {
	srv := remotetest.NewServer()
	t.Cleanup(srv.Close)

	client := srv.Client("")
	store := cache.NewStore(client)
	m := relationship.NewMutator(client, store, session.Anonymous())

	err := m.SendRequest(context.Background(), "u2")
	assert.ErrorIs(t, err, relationship.ErrNotAuthenticated)
	assert.Equal(t, relationship.StatusNotConnected, m.Status("u2"))
}

// blockingRemote parks the first SendConnectionRequest until released, so a
// second operation for the same pair can be attempted while the first is in
// flight. Later calls pass through to the real remote.
type blockingRemote struct {
	relationship.Remote
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (b *blockingRemote) SendConnectionRequest(ctx context.Context, userID string) (*models.ConnectionRequest, error) {
	blocked := false
	b.once.Do(func() {
		blocked = true
		close(b.entered)
		<-b.release
	})
	if blocked {
		return &models.ConnectionRequest{ID: "r1", FromUserID: "u1", ToUserID: userID}, nil
	}
	return b.Remote.SendConnectionRequest(ctx, userID)
}

func TestMutator_InFlightGuardRejectsDuplicate(t *testing.T) {
	srv := remotetest.NewServer()
	t.Cleanup(srv.Close)
	srv.AddUser(&models.User{ID: "u1", Username: "alice"})
	srv.AddUser(&models.User{ID: "u2", Username: "bob"})

	client := srv.Client("u1")
	remote := &blockingRemote{
		Remote:  client,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	store := cache.NewStore(client)
	m := relationship.NewMutator(remote, store, session.FromUser(&models.User{ID: "u1"}))

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- m.SendRequest(context.Background(), "u2")
	}()

	<-remote.entered
	err := m.SendRequest(context.Background(), "u2")
	assert.ErrorIs(t, err, relationship.ErrOperationInFlight)

	close(remote.release)
	require.NoError(t, <-firstDone)

	// Once the first operation resolves, the pair is free again. The blocked
	// call never reached the fake remote, so this send goes through.
	require.NoError(t, m.SendRequest(context.Background(), "u2"))
}
