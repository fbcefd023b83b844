// Package tokenstore keeps the revocation list for session tokens.
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "placement:revoked:"

// RevocationStore records logged-out token IDs until they would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisStore is a RevocationStore backed by Redis keys with TTLs.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// Revoke marks tokenID revoked. Tokens already past expiresAt are ignored.
func (s *RedisStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return errors.New("token id is required")
	}

	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, keyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked and has not yet expired.
func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check token revocation: %w", err)
	}
	return n > 0, nil
}

// NopStore is used when Redis is not configured: nothing is ever revoked.
type NopStore struct{}

// Revoke does nothing.
func (NopStore) Revoke(context.Context, string, time.Time) error { return nil }

// IsRevoked always reports false.
func (NopStore) IsRevoked(context.Context, string) (bool, error) { return false, nil }

// NewRedisClient connects and pings Redis at addr.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}
