package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/keel/core/auth"
)

func TestLoginLimiterTripsAtLimit(t *testing.T) {
	t.Parallel()

	l := auth.NewLoginLimiter(5*time.Minute, 3)

	assert.False(t, l.TooManyAttempts("1.2.3.4"))

	l.RecordFailure("1.2.3.4")
	l.RecordFailure("1.2.3.4")
	assert.False(t, l.TooManyAttempts("1.2.3.4"))

	l.RecordFailure("1.2.3.4")
	assert.True(t, l.TooManyAttempts("1.2.3.4"))

	// Other IPs are unaffected.
	assert.False(t, l.TooManyAttempts("5.6.7.8"))
}

func TestLoginLimiterWindowExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := auth.NewLoginLimiter(5*time.Minute, 2)
	auth.SetLimiterClock(l, func() time.Time { return now })

	l.RecordFailure("1.2.3.4")
	l.RecordFailure("1.2.3.4")
	assert.True(t, l.TooManyAttempts("1.2.3.4"))

	// Inside the window the block holds.
	now = now.Add(4 * time.Minute)
	assert.True(t, l.TooManyAttempts("1.2.3.4"))

	// Once the window elapses the counter starts over.
	now = now.Add(2 * time.Minute)
	assert.False(t, l.TooManyAttempts("1.2.3.4"))

	l.RecordFailure("1.2.3.4")
	assert.False(t, l.TooManyAttempts("1.2.3.4"))
}

func TestLoginLimiterReset(t *testing.T) {
	t.Parallel()

	l := auth.NewLoginLimiter(5*time.Minute, 1)

	l.RecordFailure("1.2.3.4")
	assert.True(t, l.TooManyAttempts("1.2.3.4"))

	l.Reset("1.2.3.4")
	assert.False(t, l.TooManyAttempts("1.2.3.4"))
}
