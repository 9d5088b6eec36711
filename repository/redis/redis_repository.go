package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/verified-commerce/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "revoked_token:"

// Repository keeps the denylist of logged-out token ids. Every method is a
// no-op when no Redis client is configured.
type Repository interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// RevokeToken marks tokenID as revoked until the token would have expired anyway.
func (r *redis) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil || tokenID == "" {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return client.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err()
}

// IsTokenRevoked reports whether tokenID was revoked by a logout.
func (r *redis) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	client := redisclient.Get()
	if client == nil || tokenID == "" {
		return false, nil
	}
	err := client.Get(ctx, revokedTokenPrefix+tokenID).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
