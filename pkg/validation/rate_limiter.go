package validation

import (
	"sync"
	"time"
)

// RateLimiter implements a token bucket rate limiter per key. Buckets refill
// on the caller's clock, so a game can throttle by frame time.
type RateLimiter struct {
	maxEvents int
	window    time.Duration
	buckets   map[string]*bucket
	mu        sync.Mutex
}

// bucket tracks rate limiting state for a single key
type bucket struct {
	tokens     int
	lastRefill time.Duration
}

// NewRateLimiter allows maxEvents per key within each window.
func NewRateLimiter(maxEvents int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxEvents: max(maxEvents, 1),
		window:    window,
		buckets:   make(map[string]*bucket),
	}
}

// Allow checks if an event for key at now should go through.
func (rl *RateLimiter) Allow(key string, now time.Duration) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.removeInactive(now)

	b, exists := rl.buckets[key]
	if !exists {
		b = &bucket{tokens: rl.maxEvents, lastRefill: now}
		rl.buckets[key] = b
	}
	return rl.consume(b, now)
}

// consume attempts to take a token from b
func (rl *RateLimiter) consume(b *bucket, now time.Duration) bool {
	if b.tokens >= rl.maxEvents {
		// a full bucket starts refilling from its next spend
		b.lastRefill = now
	} else if elapsed := now - b.lastRefill; elapsed > 0 && rl.window > 0 {
		windowsPassed := float64(elapsed) / float64(rl.window)
		tokensToAdd := int(float64(rl.maxEvents) * windowsPassed)
		if tokensToAdd > 0 {
			b.tokens = min(b.tokens+tokensToAdd, rl.maxEvents)
			b.lastRefill = now
		}
	} else if rl.window <= 0 {
		b.tokens = rl.maxEvents
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// removeInactive drops keys that haven't been refilled for 2 windows
func (rl *RateLimiter) removeInactive(now time.Duration) {
	cutoff := now - 2*rl.window
	for key, b := range rl.buckets {
		if b.lastRefill < cutoff {
			delete(rl.buckets, key)
		}
	}
}

// Len returns the number of keys being tracked.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

// Reset forgets every key.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	clear(rl.buckets)
}
