package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter provides IP-based rate limiting on top of a counter store.
type RateLimiter struct {
	store          adapter.RateLimitStore
	scope          string
	maxAttempts    int
	windowDuration time.Duration
	disabled       bool
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(store adapter.RateLimitStore, scope string) *RateLimiter {
	return NewRateLimiterWithConfig(store, scope, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(store adapter.RateLimitStore, scope string, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RateLimiter{
		store:          store,
		scope:          scope,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Disable turns the limiter into a pass-through (test and e2e environments).
func (rl *RateLimiter) Disable() *RateLimiter {
	rl.disabled = true
	return rl
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// A failing store lets the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.disabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		count, resetIn, err := rl.store.Hit(c.Request.Context(), rl.scope+":"+clientIP, rl.windowDuration)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limit store unavailable", "scope", rl.scope, "error", err)
			c.Next()
			return
		}

		if count > rl.maxAttempts {
			c.Header("Retry-After", strconv.Itoa(int(resetIn.Round(time.Second).Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}
