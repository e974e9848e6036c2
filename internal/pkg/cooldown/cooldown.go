// Package cooldown rate-limits repeatable operations with a Redis-backed guard.
package cooldown

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Guard tracks per-key cooldown windows.
type Guard interface {
	// Acquire starts a cooldown window for key. It returns false when the key
	// is still inside an active window.
	Acquire(ctx context.Context, key string, window time.Duration) (bool, error)

	// Release clears the window for key, allowing the next Acquire to succeed.
	Release(ctx context.Context, key string) error
}

// RedisGuard implements Guard using SET NX with expiry.
type RedisGuard struct {
	client *redis.Client
	prefix string
}

// New constructs a RedisGuard.
func New(client *redis.Client) *RedisGuard {
	return &RedisGuard{
		client: client,
		prefix: "cooldown:",
	}
}

const defaultWindow = time.Minute

// Acquire attempts to claim the cooldown window for key.
func (g *RedisGuard) Acquire(ctx context.Context, key string, window time.Duration) (bool, error) {
	if window <= 0 {
		window = defaultWindow
	}

	acquired, err := g.client.SetNX(ctx, g.prefix+key, time.Now().UTC().Format(time.RFC3339), window).Result()
	if err != nil {
		return false, err
	}

	return acquired, nil
}

// Release clears the window for key.
func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, g.prefix+key).Err()
}
