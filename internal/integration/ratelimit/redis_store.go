package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

const keyPrefix = "ratelimit:"

// RedisStore keeps counters in Redis so that every API instance shares them.
type RedisStore struct {
	client redis.UniversalClient
}

var _ adapter.RateLimitStore = (*RedisStore)(nil)

// NewRedisStore creates a store on top of client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// Hit increments the counter for key. The first hit of a window sets its
// expiry; a counter left without one is given the full window.
func (s *RedisStore) Hit(ctx context.Context, key string, window time.Duration) (int, time.Duration, error) {
	redisKey := keyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("rate limit hit: %w", err)
	}

	if count == 1 {
		if err := s.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("rate limit expire: %w", err)
		}
		return 1, window, nil
	}

	ttl, err := s.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("rate limit ttl: %w", err)
	}
	if ttl < 0 {
		if err := s.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("rate limit expire: %w", err)
		}
		ttl = window
	}

	return int(count), ttl, nil
}

// Reset clears the counter for key.
func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("rate limit reset: %w", err)
	}
	return nil
}
