package draft

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Storage backend on a shared redis client, for drafts that must
// survive process restarts and follow the user across hosts.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisOption configures the redis backend.
type RedisOption func(*Redis)

// WithTTL expires drafts after the given duration. Zero keeps them until
// explicitly cleared.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// NewRedis wraps an existing redis client.
func NewRedis(client *redis.Client, options ...RedisOption) *Redis {
	r := &Redis{client: client}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Get implements Storage.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set implements Storage.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// Del implements Storage.
func (r *Redis) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
