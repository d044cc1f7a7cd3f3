// Package ratelimit provides a keyed rate limiter using token bucket algorithm.
// Each key (typically a caller identity or remote address) gets its own
// independent limiter.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyedRateLimiter manages per-key rate limiting.
type KeyedRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	limit    rate.Limit
	burst    int

	done     chan struct{}
	stopOnce sync.Once
}

// entry pairs a limiter with its last access time so idle keys can be evicted.
type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// How long an idle key survives before eviction, and how often eviction runs.
const (
	idleTTL       = 10 * time.Minute
	sweepInterval = time.Minute
)

// New creates a new keyed rate limiter.
// rps: requests per second allowed per key.
// burst: maximum burst size (tokens available immediately).
func New(rps float64, burst int) *KeyedRateLimiter {
	krl := &KeyedRateLimiter{
		limiters: make(map[string]*entry),
		limit:    rate.Limit(rps),
		burst:    burst,
		done:     make(chan struct{}),
	}

	go krl.sweep()

	return krl
}

// Allow checks if a request for the given key should be allowed.
// Returns immediately without blocking. Use for inbound request protection.
func (krl *KeyedRateLimiter) Allow(key string) bool {
	return krl.getLimiter(key).Allow()
}

// getLimiter returns the limiter for a key, creating one if needed.
func (krl *KeyedRateLimiter) getLimiter(key string) *rate.Limiter {
	krl.mu.Lock()
	defer krl.mu.Unlock()

	if e, exists := krl.limiters[key]; exists {
		e.lastSeen = time.Now()
		return e.limiter
	}

	e := &entry{
		limiter:  rate.NewLimiter(krl.limit, krl.burst),
		lastSeen: time.Now(),
	}
	krl.limiters[key] = e
	return e.limiter
}

// Stop shuts down the background sweeper.
func (krl *KeyedRateLimiter) Stop() {
	krl.stopOnce.Do(func() {
		close(krl.done)
	})
}

// sweep periodically evicts keys that have been idle longer than idleTTL.
func (krl *KeyedRateLimiter) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-krl.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-idleTTL)
			krl.mu.Lock()
			for key, e := range krl.limiters {
				if e.lastSeen.Before(cutoff) {
					delete(krl.limiters, key)
				}
			}
			krl.mu.Unlock()
		}
	}
}
