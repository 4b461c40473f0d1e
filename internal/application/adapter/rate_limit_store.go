package adapter

import (
	"context"
	"time"
)

// RateLimitStore counts attempts per key inside a fixed window.
type RateLimitStore interface {
	// Hit records one attempt for key and returns the attempts seen in the
	// current window and the time until the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (count int, resetIn time.Duration, err error)

	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error
}
