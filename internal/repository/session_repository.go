package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// SessionRepository registers live session ids in Redis so logout can revoke
// tokens before they expire. A nil client degrades to stateless mode: every
// signature-valid token passes and revocation becomes a no-op.
type SessionRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSessionRepository constructs a session repository.
func NewSessionRepository(client *redis.Client, logger *zap.Logger) *SessionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionRepository{client: client, logger: logger}
}

// Save registers a session id for the token's lifetime.
func (r *SessionRepository) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+sessionID, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", sessionID, err)
	}
	return nil
}

// Validate reports whether the session id is still registered. Without a
// client every session validates.
func (r *SessionRepository) Validate(ctx context.Context, sessionID string) (bool, error) {
	if r.client == nil {
		return true, nil
	}
	if err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis get session %s: %w", sessionID, err)
	}
	return true, nil
}

// Delete revokes a session id.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis delete session %s: %w", sessionID, err)
	}
	return nil
}
