package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_ExactBoundary(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := New(3, 5*time.Minute, WithClock(func() time.Time { return current }))

	// Exactly limit requests succeed.
	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("1.2.3.4")
		require.True(t, allowed, "request %d", i+1)
	}

	// The limit+1-th request in the same window is denied with a retry hint.
	allowed, retryAfter := limiter.Allow("1.2.3.4")
	require.False(t, allowed)
	assert.Equal(t, 5*time.Minute, retryAfter)
}

func TestAllow_WindowReset(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := New(2, time.Minute, WithClock(func() time.Time { return current }))

	limiter.Allow("key")
	limiter.Allow("key")
	allowed, _ := limiter.Allow("key")
	require.False(t, allowed)

	// After the window elapses a new request succeeds.
	current = current.Add(time.Minute + time.Second)
	allowed, _ = limiter.Allow("key")
	assert.True(t, allowed)
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	limiter := New(1, time.Minute)

	allowed, _ := limiter.Allow("a")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("a")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("b")
	assert.True(t, allowed)
}

func TestAllow_CounterDoesNotGrowPastCap(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	limiter := New(2, time.Minute, WithStore(store), WithClock(func() time.Time { return current }))

	for i := 0; i < 50; i++ {
		limiter.Allow("hammer")
	}

	entry := store.Increment("hammer", time.Minute, 3, current)
	assert.Equal(t, 3, entry.Count)
}

func TestMemoryStore_PurgeExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()

	store.Increment("old", time.Minute, 5, now)
	store.Increment("fresh", time.Hour, 5, now)

	purged := store.PurgeExpired(now.Add(2 * time.Minute))
	assert.Equal(t, 1, purged)

	// Purged key starts a fresh window.
	entry := store.Increment("old", time.Minute, 5, now.Add(2*time.Minute))
	assert.Equal(t, 1, entry.Count)
}

func TestAllow_ConcurrentAccess(t *testing.T) {
	limiter := New(100, time.Minute)

	var wg sync.WaitGroup
	allowedCount := make(chan bool, 200)

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := limiter.Allow("shared")
			allowedCount <- allowed
		}()
	}
	wg.Wait()
	close(allowedCount)

	granted := 0
	for allowed := range allowedCount {
		if allowed {
			granted++
		}
	}
	assert.Equal(t, 100, granted)
}
