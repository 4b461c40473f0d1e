package mock

import (
	"sync"
	"time"
)

// Time is a settable clock. Until Set is called it reports the wall clock.
type Time struct {
	mu      sync.RWMutex
	current time.Time
}

func NewTime() *Time {
	return &Time{}
}

func (t *Time) Set(current time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = current
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.current.IsZero() {
		return time.Now().UTC()
	}
	return t.current
}
