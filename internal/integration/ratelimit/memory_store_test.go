package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_FixedWindow(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		count, resetIn, err := store.Hit(ctx, "10.0.0.1", time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != i {
			t.Errorf("hit %d: expected count %d, got %d", i, i, count)
		}
		if resetIn != time.Minute {
			t.Errorf("hit %d: expected reset in 1m, got %s", i, resetIn)
		}
	}

	if count, _, _ := store.Hit(ctx, "10.0.0.2", time.Minute); count != 1 {
		t.Errorf("keys must be independent, got %d", count)
	}

	now = now.Add(time.Minute)
	if count, _, _ := store.Hit(ctx, "10.0.0.1", time.Minute); count != 1 {
		t.Errorf("expected a fresh window, got %d", count)
	}
}

func TestMemoryStore_ResetAndCleanup(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Hit(ctx, "a", time.Minute)
	store.Hit(ctx, "a", time.Minute)
	if err := store.Reset(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count, _, _ := store.Hit(ctx, "a", time.Minute); count != 1 {
		t.Errorf("expected count 1 after reset, got %d", count)
	}

	store.Hit(ctx, "b", time.Second)
	now = now.Add(2 * time.Second)
	store.Cleanup()

	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.entries["b"]; ok {
		t.Error("expected expired entry to be removed")
	}
	if _, ok := store.entries["a"]; !ok {
		t.Error("expected live entry to be kept")
	}
}
