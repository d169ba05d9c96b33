// Package ratelimit provides a per-user request limiter. It is a
// standalone utility: the server only installs it as an interceptor
// when a positive rate is configured.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// Limiter tracks a token bucket per user id.
type Limiter struct {
	mu    sync.Mutex
	users map[string]*rate.Limiter
	rate  rate.Limit
	burst int
}

// New creates a limiter allowing perSecond requests per user with the
// given burst.
func New(perSecond float64, burst int) *Limiter {
	return &Limiter{
		users: make(map[string]*rate.Limiter),
		rate:  rate.Limit(perSecond),
		burst: burst,
	}
}

// Allow reports whether userID may make a request now.
func (l *Limiter) Allow(userID string) bool {
	return l.limiterFor(userID).Allow()
}

func (l *Limiter) limiterFor(userID string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.users[userID]
	if !ok {
		lim = rate.NewLimiter(l.rate, l.burst)
		l.users[userID] = lim
	}
	return lim
}
