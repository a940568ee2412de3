package services

import (
	"sync"
	"time"
)

// RateLimiter throttles repeated calls per identity key. The interface keeps
// the backing store swappable; the bundled implementation is in-memory and
// therefore per-process best-effort, not a cross-instance guarantee.
type RateLimiter interface {
	Allow(key string, maxRequests int, window time.Duration) bool
}

// MemoryRateLimiter is a sliding-window counter over an in-process map.
type MemoryRateLimiter struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		hits: make(map[string][]time.Time),
		now:  time.Now,
	}
}

// Allow records a hit for key and reports whether it stays within
// maxRequests per window.
func (l *MemoryRateLimiter) Allow(key string, maxRequests int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	kept := l.hits[key][:0]
	for _, ts := range l.hits[key] {
		if now.Sub(ts) < window {
			kept = append(kept, ts)
		}
	}
	l.hits[key] = kept

	if len(kept) >= maxRequests {
		return false
	}
	l.hits[key] = append(kept, now)
	return true
}
