package contact

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxClients bounds the limiter map. When it is full, buckets that have
// refilled completely are evicted; if none has, new clients share one
// overflow bucket until some do.
const maxClients = 10000

// ClientLimiter keeps one token bucket per client key.
type ClientLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	overflow *rate.Limiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewClientLimiter allows reqPerMin submissions per minute per client with
// the given burst. Non-positive values fall back to 5 per minute, burst 3.
func NewClientLimiter(reqPerMin, burst int) *ClientLimiter {
	if reqPerMin <= 0 {
		reqPerMin = 5
	}
	if burst <= 0 {
		burst = 3
	}
	limit := rate.Every(time.Minute / time.Duration(reqPerMin))
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		overflow: rate.NewLimiter(limit, burst),
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether the client may submit now.
func (l *ClientLimiter) Allow(key string) bool {
	now := l.now()
	return l.getLimiter(key, now).AllowN(now, 1)
}

func (l *ClientLimiter) getLimiter(key string, now time.Time) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()
	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double check to prevent race condition
	if limiter, exists = l.limiters[key]; exists {
		return limiter
	}

	if len(l.limiters) >= maxClients {
		l.evictIdle(now)
		if len(l.limiters) >= maxClients {
			return l.overflow
		}
	}
	limiter = rate.NewLimiter(l.limit, l.burst)
	l.limiters[key] = limiter
	return limiter
}

// evictIdle drops buckets that are full again. Forgetting them loses
// nothing since a new bucket starts full too. Callers hold the write lock.
func (l *ClientLimiter) evictIdle(now time.Time) {
	for key, limiter := range l.limiters {
		if limiter.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, key)
		}
	}
}

// Len is the number of tracked clients.
func (l *ClientLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.limiters)
}
