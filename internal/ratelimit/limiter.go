// Package ratelimit implements a fixed-window request limiter keyed by
// client identifier. Submission endpoints carry stricter (limit, window)
// pairs than generic API traffic.
package ratelimit

import "time"

// Limiter fixed-window limiter over an injectable store
type Limiter struct {
	limit  int
	window time.Duration
	store  Store
	now    func() time.Time
}

// Option configures a Limiter
type Option func(*Limiter)

// WithStore replaces the default in-memory store
func WithStore(store Store) Option {
	return func(l *Limiter) { l.store = store }
}

// WithClock replaces the time source (for tests)
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a limiter allowing limit requests per window per key
func New(limit int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		limit:  limit,
		window: window,
		store:  NewMemoryStore(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records a request for key and reports whether it is within the
// limit. When denied, retryAfter is how long the caller should wait.
func (l *Limiter) Allow(key string) (allowed bool, retryAfter time.Duration) {
	now := l.now()
	entry := l.store.Increment(key, l.window, l.limit+1, now)

	if entry.Count > l.limit {
		retryAfter = entry.ResetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return false, retryAfter
	}
	return true, 0
}
