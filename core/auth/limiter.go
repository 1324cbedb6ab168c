package auth

import (
	"sync"
	"time"
)

// attemptWindow is one IP's failure record in the current window.
type attemptWindow struct {
	start time.Time
	count int
}

// LoginLimiter throttles login attempts per source IP using a fixed window:
// the window starts at the first failure and resets completely once it
// elapses. State is process-local and ephemeral; a restart clears all
// counters, which is acceptable for abuse mitigation.
//
// All methods take the internal mutex, so concurrent requests never lose
// updates.
type LoginLimiter struct {
	mu      sync.Mutex
	entries map[string]*attemptWindow
	window  time.Duration
	limit   int
	now     func() time.Time
}

// NewLoginLimiter creates a limiter allowing limit failures per window per IP.
func NewLoginLimiter(window time.Duration, limit int) *LoginLimiter {
	return &LoginLimiter{
		entries: make(map[string]*attemptWindow),
		window:  window,
		limit:   limit,
		now:     time.Now,
	}
}

// TooManyAttempts reports whether the IP has reached the failure limit in
// the current window. An elapsed window clears the record.
func (l *LoginLimiter) TooManyAttempts(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[ip]
	if !ok {
		return false
	}
	if l.now().Sub(e.start) >= l.window {
		delete(l.entries, ip)
		return false
	}
	return e.count >= l.limit
}

// RecordFailure counts a failed login for the IP, starting a fresh window
// when none is active. Stale records for other IPs are pruned on the way.
func (l *LoginLimiter) RecordFailure(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.entries {
		if now.Sub(e.start) >= l.window {
			delete(l.entries, key)
		}
	}

	e, ok := l.entries[ip]
	if !ok {
		l.entries[ip] = &attemptWindow{start: now, count: 1}
		return
	}
	e.count++
}

// Reset clears the IP's failure record immediately; called after a
// successful login.
func (l *LoginLimiter) Reset(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, ip)
}
