package session

import "time"

// Config provides environment-based configuration for the session subsystem.
type Config struct {
	Secret     string        `env:"SESSION_SECRET,required"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"keel_session"`
}

// NewCodecFromConfig builds a Codec from configuration.
func NewCodecFromConfig(cfg Config) (*Codec, error) {
	return NewCodec(cfg.Secret, WithTTL(cfg.TTL))
}
