package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL tiempo sin peticiones tras el cual se descarta el bucket de una clave.
const idleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter token bucket en memoria por clave; se usa cuando no hay Redis.
type LocalLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	every     rate.Limit
	burst     int
	now       func() time.Time
	lastPurge time.Time
}

// NewLocalLimiter permite limit peticiones por window y clave, con ráfaga de limit.
func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &LocalLimiter{
		buckets: make(map[string]*bucket),
		every:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		now:     time.Now,
	}
}

// Allow consume un token del bucket de key.
func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.purge(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.every, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1), nil
}

// purge elimina buckets inactivos, como mucho una vez por idleTTL.
func (l *LocalLimiter) purge(now time.Time) {
	if now.Sub(l.lastPurge) < idleTTL {
		return
	}
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) > idleTTL {
			delete(l.buckets, k)
		}
	}
	l.lastPurge = now
}
