package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisStore(client)
}

func TestRedisStore_Hit(t *testing.T) {
	mr, store := newTestRedis(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		count, resetIn, err := store.Hit(ctx, "login:10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
		assert.LessOrEqual(t, resetIn, time.Minute)
		assert.Greater(t, resetIn, time.Duration(0))
	}

	assert.True(t, mr.Exists("ratelimit:login:10.0.0.1"))
	assert.Equal(t, time.Minute, mr.TTL("ratelimit:login:10.0.0.1"))

	mr.FastForward(time.Minute + time.Second)

	count, _, err := store.Hit(ctx, "login:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "window should restart after expiry")
}

func TestRedisStore_RepairsMissingExpiry(t *testing.T) {
	mr, store := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("ratelimit:stuck", "4"))

	count, resetIn, err := store.Hit(ctx, "stuck", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Equal(t, 30*time.Second, resetIn)
	assert.Equal(t, 30*time.Second, mr.TTL("ratelimit:stuck"))
}

func TestRedisStore_Reset(t *testing.T) {
	mr, store := newTestRedis(t)
	ctx := context.Background()

	_, _, err := store.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Reset(ctx, "k"))
	assert.False(t, mr.Exists("ratelimit:k"))
}

func TestRedisStore_ErrorWhenUnavailable(t *testing.T) {
	mr, store := newTestRedis(t)
	mr.Close()

	_, _, err := store.Hit(context.Background(), "k", time.Minute)
	assert.Error(t, err)
}
