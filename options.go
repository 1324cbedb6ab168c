package keel

import (
	"log/slog"

	"github.com/dmitrymomot/keel/core/db"
)

// Option configures the App during construction.
type Option func(*App)

// WithLogger sets the structured logger used across the application.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithDatabase injects an already-open database instead of connecting from
// configuration. The caller keeps ownership of schema setup; Close still
// closes it.
func WithDatabase(database *db.DB) Option {
	return func(a *App) {
		a.db = database
	}
}
