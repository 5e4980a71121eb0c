package ports

import (
	"context"
	"time"
)

// SessionIdentity is the "current user + role" view surfaced to clients.
// Role always resolves to a value (default "user"); FullName is empty
// when the profile row could not be read.
type SessionIdentity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}

// TokenPair is the credential issued on signin and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthService implements the session manager: signup, credential
// issuance, refresh rotation, and signout invalidation.
type AuthService interface {
	Signup(ctx context.Context, email, password, fullName string) (*SessionIdentity, error)
	Signin(ctx context.Context, email, password string) (*TokenPair, *SessionIdentity, error)
	// Signout deletes the refresh session (when provided) and denylists
	// the access token id for the remainder of its lifetime.
	Signout(ctx context.Context, refreshToken, jti string, accessExpiry time.Time) error
	// Refresh rotates the refresh session and issues a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Session re-derives the caller's identity from storage. A missing
	// profile or role row degrades the result instead of failing it.
	Session(ctx context.Context, userID, email string) (*SessionIdentity, error)
}
