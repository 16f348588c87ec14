// Package session resolves the viewer identity from the auth collaborator.
// The client never verifies token signatures; that is the server's job. It
// only needs the claims to know who is looking.
package session

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"

	"github.com/lynkcircles/client/internal/models"
)

// Session is the viewer's identity for the current client session. The zero
// value is an unauthenticated session.
type Session struct {
	UserID   string
	Username string
}

// Anonymous returns an unauthenticated session. All relationship fetches and
// operations are disabled for it.
func Anonymous() *Session {
	return &Session{}
}

// FromToken extracts the viewer identity from a session token without
// verifying its signature.
func FromToken(token string) (*Session, error) {
	claims := &models.SessionClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parsing session token")
	}
	if claims.UserID == "" {
		return nil, errors.New("session token has no user_id claim")
	}
	return &Session{UserID: claims.UserID, Username: claims.Username}, nil
}

// FromUser builds a session from an already-fetched profile, typically the
// /auth/me response.
func FromUser(user *models.User) *Session {
	if user == nil {
		return Anonymous()
	}
	return &Session{UserID: user.ID, Username: user.Username}
}

// Authenticated reports whether a viewer identity is present.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}
