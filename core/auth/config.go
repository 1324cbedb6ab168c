package auth

import "time"

// Config holds authentication guard settings.
type Config struct {
	// LoginPath is where unauthenticated requests to protected routes are
	// redirected.
	LoginPath string `env:"AUTH_LOGIN_PATH" envDefault:"/login"`

	// AttemptWindow and AttemptLimit bound failed logins per IP: once
	// AttemptLimit failures accumulate inside AttemptWindow, further
	// attempts are rejected until the window elapses.
	AttemptWindow time.Duration `env:"AUTH_ATTEMPT_WINDOW" envDefault:"5m"`
	AttemptLimit  int           `env:"AUTH_ATTEMPT_LIMIT" envDefault:"5"`

	// SessionVersion is stamped into sessions on login; bumping it logs out
	// every existing session at once.
	SessionVersion int `env:"AUTH_SESSION_VERSION" envDefault:"1"`
}

// GuardOptionsFromConfig translates configuration into guard options.
func GuardOptionsFromConfig(cfg Config) []GuardOption {
	return []GuardOption{
		WithLoginPath(cfg.LoginPath),
		WithLimiter(NewLoginLimiter(cfg.AttemptWindow, cfg.AttemptLimit)),
		WithSessionVersion(cfg.SessionVersion),
	}
}
