// Copyright (c) 2026 Riwaya. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/riwaya/riwaya/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis.
//
// One key per account: presence means the account has a live session, absence
// means every issued token is rejected at the middleware.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis-backed SessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(userID string) string {
	return constants.RedisPrefixSession + userID
}

// Set marks the account as having a live session for the given TTL.
func (repository *RedisSessionRepository) Set(context context.Context, userID string, ttl time.Duration) error {
	if err := repository.client.Set(context, sessionKey(userID), time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

// Exists reports whether the account currently holds a live session.
func (repository *RedisSessionRepository) Exists(context context.Context, userID string) (bool, error) {
	count, err := repository.client.Exists(context, sessionKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_session_exists_failed: %w", err)
	}
	return count > 0, nil
}

// Delete revokes the account's session. Missing keys are not an error, so
// logout stays idempotent.
func (repository *RedisSessionRepository) Delete(context context.Context, userID string) error {
	if err := repository.client.Del(context, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}

// SessionExists satisfies the middleware session check without exporting the
// repository type across layers.
func (repository *RedisSessionRepository) SessionExists(ctx context.Context, userID string) (bool, error) {
	return repository.Exists(ctx, userID)
}
