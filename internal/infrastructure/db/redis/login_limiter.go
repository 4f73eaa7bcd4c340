package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles failed logins per account, backed by Redis so the
// count holds across replicas. Key format: login_attempts:<email>
//
// A fixed window starts at the first failure; reaching maxAttempts within
// it blocks further attempts until the key expires.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow reports whether a login attempt for key may proceed. When blocked,
// retryAfter is the remaining lifetime of the window.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	n, err := l.client.Get(ctx, l.key(key)).Int()
	if err == redis.Nil {
		return true, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("limiter get: %w", err)
	}
	if n < l.maxAttempts {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, l.key(key)).Result()
	if err != nil {
		return false, l.window, nil
	}
	return false, ttl, nil
}

// RecordFailure counts one failed attempt; the first failure opens the window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, key string) error {
	n, err := l.client.Incr(ctx, l.key(key)).Result()
	if err != nil {
		return fmt.Errorf("limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, l.key(key), l.window).Err(); err != nil {
			return fmt.Errorf("limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure count after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.key(key)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_attempts:" + email
}
