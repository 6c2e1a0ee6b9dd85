package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionRepository records revoked session token ids until they would
// have expired anyway.
type RedisSessionRepository struct {
	client redis.Cmdable
}

func NewSessionRepository(client redis.Cmdable) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func revokedKey(tokenID string) string {
	return "revoked_session_" + tokenID
}

func (r *RedisSessionRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("sessions: revoke %s: %w", tokenID, err)
	}
	return nil
}

func (r *RedisSessionRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, revokedKey(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sessions: check %s: %w", tokenID, err)
	}
	return true, nil
}
