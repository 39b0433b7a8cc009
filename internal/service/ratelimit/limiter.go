// Package ratelimit implements a per-key token bucket used to protect the
// heavier analytics endpoints from request bursts.
package ratelimit

import (
	"sync"
	"time"
)

// pruneAfter is how long an untouched bucket survives before the next
// Allow sweeps it out.
const pruneAfter = 10 * time.Minute

type bucket struct {
	tokens float64
	last   time.Time
}

// Limiter tracks one token bucket per key (typically client IP plus
// endpoint). Buckets refill continuously and idle ones are pruned.
type Limiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastPrune time.Time
}

func New() *Limiter {
	return &Limiter{buckets: make(map[string]*bucket), lastPrune: time.Now()}
}

// Allow consumes one token for key if available. capacity bounds the
// burst size and refillPerSec is the sustained rate.
func (l *Limiter) Allow(key string, capacity, refillPerSec float64) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPrune) > pruneAfter {
		for k, b := range l.buckets {
			if now.Sub(b.last) > pruneAfter {
				delete(l.buckets, k)
			}
		}
		l.lastPrune = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: capacity, last: now}
		l.buckets[key] = b
	} else {
		b.tokens += now.Sub(b.last).Seconds() * refillPerSec
		if b.tokens > capacity {
			b.tokens = capacity
		}
		b.last = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
