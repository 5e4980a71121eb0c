package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// SessionStore keeps refresh sessions and the signout denylist in Redis.
// Key formats: session:<refresh_token> → user id, revoked:<jti> → 1.
// Every entry carries a TTL, so signing out and token expiry both clean
// up after themselves.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) CreateSession(ctx context.Context, refreshToken, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(refreshToken), userID, ttl).Err(); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *SessionStore) GetSession(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKey(refreshToken)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	return userID, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, refreshToken string) error {
	if err := s.client.Del(ctx, sessionKey(refreshToken)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, revokedKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *SessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func sessionKey(refreshToken string) string {
	return "session:" + refreshToken
}

func revokedKey(jti string) string {
	return "revoked:" + jti
}

var _ ports.SessionStore = (*SessionStore)(nil)
