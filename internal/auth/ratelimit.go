package auth

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// cleanupThreshold is the map size at which idle keys start being pruned.
	cleanupThreshold = 500
	maxIdleAge       = 10 * time.Minute
)

type keyEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyRateLimiter throttles lookups per Hypixel API key, so one caller
// cannot burn through the upstream budget of a key.
type KeyRateLimiter struct {
	mu   sync.Mutex
	keys map[string]*keyEntry
	r    rate.Limit
	b    int
	now  func() time.Time
}

// NewKeyRateLimiter allows perMinute lookups per key with the given burst.
func NewKeyRateLimiter(perMinute, burst int) *KeyRateLimiter {
	return &KeyRateLimiter{
		keys: make(map[string]*keyEntry),
		r:    rate.Limit(float64(perMinute) / 60),
		b:    burst,
		now:  time.Now,
	}
}

func (l *KeyRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.keys) > cleanupThreshold {
		cutoff := now.Add(-maxIdleAge)
		for k, e := range l.keys {
			if e.lastSeen.Before(cutoff) {
				delete(l.keys, k)
			}
		}
	}

	e, ok := l.keys[key]
	if !ok {
		e = &keyEntry{limiter: rate.NewLimiter(l.r, l.b)}
		l.keys[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Limit must run after Guard; requests without a key in the context pass
// through untouched.
func (l *KeyRateLimiter) Limit(reject func(http.ResponseWriter, *http.Request)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key, ok := APIKeyFromContext(r.Context()); ok && !l.Allow(key) {
				reject(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
