package ports

import (
	"context"
	"time"
)

// SessionStore holds refresh sessions and the signout denylist.
// Both kinds of entries expire on their own; nothing here is permanent.
type SessionStore interface {
	// CreateSession stores refreshToken → userID for ttl.
	CreateSession(ctx context.Context, refreshToken, userID string, ttl time.Duration) error
	// GetSession resolves a refresh token to its user id.
	// Returns domain.ErrSessionNotFound for unknown or expired tokens.
	GetSession(ctx context.Context, refreshToken string) (string, error)
	DeleteSession(ctx context.Context, refreshToken string) error

	// Revoke denylists an access token id until its natural expiry.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
