package models

import "github.com/golang-jwt/jwt/v4"

// User is a LynkCircles member profile as returned by the remote API.
type User struct {
	ID             string   `json:"_id"`
	Username       string   `json:"username"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Headline       string   `json:"headline"`
	Location       string   `json:"location"`
	Bio            string   `json:"bio"`
	ProfilePicture string   `json:"profilePicture"`
	BannerImg      string   `json:"bannerImg"`
	Connections    []string `json:"connections"` // ids of connected users
	IsActive       bool     `json:"isActive"`
	IsWorker       bool     `json:"isWorker"`
}

// UserCompact is the reduced shape embedded in notifications and request lists.
type UserCompact struct {
	ID             string `json:"_id"`
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ProfilePicture string `json:"profilePicture"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:             u.ID,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
	}
}

// UpdateProfileRequest defines the payload for editing the viewer's own profile
type UpdateProfileRequest struct {
	FirstName      string `json:"firstName,omitempty" validate:"omitempty,min=1,max=50"`
	LastName       string `json:"lastName,omitempty" validate:"omitempty,min=1,max=50"`
	Headline       string `json:"headline,omitempty" validate:"omitempty,max=120"`
	Location       string `json:"location,omitempty" validate:"omitempty,max=100"`
	Bio            string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	BannerImg      string `json:"bannerImg,omitempty"`
}

// SessionClaims are custom claims extending standard jwt.RegisteredClaims,
// carried by the session token issued at sign-in.
type SessionClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
