package auth

import "time"

// SetLimiterClock overrides the limiter's clock so window expiry is testable
// without sleeping.
func SetLimiterClock(l *LoginLimiter, now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
