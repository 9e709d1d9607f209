package model

import (
	"context"
	"errors"
)

var (
	ErrUnauthenticated = errors.New("action requires an authenticated session")
	ErrProfileNotFound = errors.New("profile not found")
)

const RoleAdmin = "admin"

// Session identifies the authenticated principal, or is absent (nil).
type Session struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

// Profile enriches a session with attributes kept in the profiles table.
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

type ProfileRepository interface {
	Find(ctx context.Context, id string) (*Profile, error)
}

// AuthGateway is the authentication surface of the remote data service.
// CurrentSession reflects the locally tracked session and performs no
// network call; sign-in, sign-up and sign-out do. Every session change is
// delivered to OnSessionChange subscribers.
type AuthGateway interface {
	CurrentSession(ctx context.Context) (*Session, error)
	OnSessionChange(fn func(*Session)) (unsubscribe func())
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password, fullName string) (*Session, error)
	SignOut(ctx context.Context) error
}
