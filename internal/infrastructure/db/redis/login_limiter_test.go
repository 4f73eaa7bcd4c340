package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginLimiter(client, maxAttempts, window), mr
}

func TestLoginLimiter_AllowsUnderLimit(t *testing.T) {
	l, _ := newTestLimiter(t, 3, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, _, err := l.Allow(ctx, "alice@example.com")
		require.NoError(t, err)
		require.True(t, allowed)
		require.NoError(t, l.RecordFailure(ctx, "alice@example.com"))
	}
}

func TestLoginLimiter_BlocksAtLimit(t *testing.T) {
	l, _ := newTestLimiter(t, 3, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, l.RecordFailure(ctx, "alice@example.com"))
	}

	allowed, retryAfter, err := l.Allow(ctx, "alice@example.com")
	require.NoError(t, err)
	require.False(t, allowed)
	require.Greater(t, retryAfter, time.Duration(0))
}

func TestLoginLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t, 1, 15*time.Minute)
	ctx := context.Background()

	require.NoError(t, l.RecordFailure(ctx, "alice@example.com"))

	allowed, _, err := l.Allow(ctx, "bob@example.com")
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestLoginLimiter_ResetClearsCount(t *testing.T) {
	l, _ := newTestLimiter(t, 1, 15*time.Minute)
	ctx := context.Background()

	require.NoError(t, l.RecordFailure(ctx, "alice@example.com"))
	require.NoError(t, l.Reset(ctx, "alice@example.com"))

	allowed, _, err := l.Allow(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	l, mr := newTestLimiter(t, 1, 15*time.Minute)
	ctx := context.Background()

	require.NoError(t, l.RecordFailure(ctx, "alice@example.com"))

	allowed, _, err := l.Allow(ctx, "alice@example.com")
	require.NoError(t, err)
	require.False(t, allowed)

	mr.FastForward(16 * time.Minute)

	allowed, _, err = l.Allow(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, allowed)
}
