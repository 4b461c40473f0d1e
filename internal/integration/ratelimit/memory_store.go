// Package ratelimit provides fixed-window attempt counters for rate limiting.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// windowEntry tracks attempts for a single key.
type windowEntry struct {
	attempts  int
	resetTime time.Time
}

// MemoryStore keeps counters in process memory. It suits a single instance.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

var _ adapter.RateLimitStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

// Hit records an attempt for key.
func (s *MemoryStore) Hit(_ context.Context, key string, window time.Duration) (int, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, exists := s.entries[key]
	if !exists || !now.Before(entry.resetTime) {
		entry = &windowEntry{resetTime: now.Add(window)}
		s.entries[key] = entry
	}

	entry.attempts++
	return entry.attempts, entry.resetTime.Sub(now), nil
}

// Reset clears the counter for key.
func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Cleanup removes expired entries. Call it periodically to free memory.
func (s *MemoryStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if !now.Before(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (s *MemoryStore) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}
