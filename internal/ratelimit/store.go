package ratelimit

import (
	"sync"
	"time"
)

// Entry per-key window state
type Entry struct {
	Count   int
	ResetAt time.Time
}

// Store is the counter backend. The limiter only needs one atomic operation,
// so a production deployment can swap in a shared store (e.g. redis) without
// touching the limiter logic.
type Store interface {
	// Increment bumps the counter for key within the current window,
	// starting a fresh window when the previous one has expired.
	// maxCount caps the stored counter so abusive keys cannot grow it
	// unboundedly; counts above the cap are still reported as maxCount.
	Increment(key string, window time.Duration, maxCount int, now time.Time) Entry
}

// MemoryStore in-process store. State is lost on restart, which is
// acceptable: this is best-effort abuse mitigation, not a security boundary.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Increment implements Store
func (s *MemoryStore) Increment(key string, window time.Duration, maxCount int, now time.Time) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, found := s.entries[key]
	if !found || now.After(entry.ResetAt) {
		entry = Entry{Count: 1, ResetAt: now.Add(window)}
		s.entries[key] = entry
		return entry
	}

	if entry.Count < maxCount {
		entry.Count++
		s.entries[key] = entry
	}
	return entry
}

// PurgeExpired drops entries whose window has passed.
// Called periodically so long-running processes do not accumulate stale keys.
func (s *MemoryStore) PurgeExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for key, entry := range s.entries {
		if now.After(entry.ResetAt) {
			delete(s.entries, key)
			purged++
		}
	}
	return purged
}
