package ports

import (
	"context"
	"time"
)

// LoginLimiter throttles repeated failed logins per account key.
type LoginLimiter interface {
	// Allow reports whether a login attempt may proceed. When blocked,
	// retryAfter indicates how long the caller should wait.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
	// RecordFailure counts one failed attempt against key.
	RecordFailure(ctx context.Context, key string) error
	// Reset clears the failure count for key after a successful login.
	Reset(ctx context.Context, key string) error
}
