package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lynkcircles/client/internal/models"
)

func signedToken(t *testing.T, claims models.SessionClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestFromToken(t *testing.T) {
	token := signedToken(t, models.SessionClaims{
		UserID:   "u1",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	sess, err := FromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.True(t, sess.Authenticated())
}

func TestFromToken_MissingUserID(t *testing.T) {
	token := signedToken(t, models.SessionClaims{Username: "alice"})

	_, err := FromToken(token)
	assert.Error(t, err)
}

func TestFromToken_Garbage(t *testing.T) {
	_, err := FromToken("not-a-token")
	assert.Error(t, err)
}

func TestAnonymous(t *testing.T) {
	assert.False(t, Anonymous().Authenticated())

	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
}

func TestFromUser(t *testing.T) {
	sess := FromUser(&models.User{ID: "u1", Username: "alice"})
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "alice", sess.Username)

	assert.False(t, FromUser(nil).Authenticated())
}
