package keel

import (
	"time"

	"github.com/dmitrymomot/keel/core/auth"
	"github.com/dmitrymomot/keel/core/db"
	"github.com/dmitrymomot/keel/core/session"
)

// Config is the application configuration, loaded from the environment via
// config.Load. One secret signs both session cookies and any other signed
// cookies the application issues.
type Config struct {
	// Secret signs cookies and session blobs. Minimum 32 characters.
	Secret string `env:"KEEL_SECRET,required"`

	// Debug relaxes the Secure cookie flag and includes error details in
	// 500 responses. Never enable in production.
	Debug bool `env:"KEEL_DEBUG" envDefault:"false"`

	SessionCookie string        `env:"KEEL_SESSION_COOKIE" envDefault:"keel_session"`
	SessionTTL    time.Duration `env:"KEEL_SESSION_TTL" envDefault:"720h"`

	Database db.Config
	Auth     auth.Config
}

// DefaultConfig returns a configuration suitable for tests and local
// experiments: in-memory database, debug on. The secret must still be set
// by the caller.
func DefaultConfig(secret string) Config {
	return Config{
		Secret:        secret,
		Debug:         true,
		SessionCookie: session.DefaultCookieName,
		SessionTTL:    30 * 24 * time.Hour,
		Database: db.Config{
			Path:        ":memory:",
			BusyTimeout: 3 * time.Second,
			WAL:         false,
		},
		Auth: auth.Config{
			LoginPath:      "/login",
			AttemptWindow:  5 * time.Minute,
			AttemptLimit:   5,
			SessionVersion: 1,
		},
	}
}
