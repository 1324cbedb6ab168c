package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/keel/core/handler"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip disables logging for matching requests (health checks, metrics).
	Skip func(ctx handler.Context) bool
	// Logger is the structured logger (default: slog.Default()).
	Logger *slog.Logger
	// Level for per-request entries (default: slog.LevelInfo).
	Level slog.Level
	// SlowThreshold logs a warning for requests slower than this; zero
	// disables the check.
	SlowThreshold time.Duration
}

// Logging logs one structured entry per request with method, path, duration,
// and the request ID when the RequestID middleware ran earlier.
func Logging[C handler.Context](logger *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: logger})
}

// LoggingWithConfig creates a request logging middleware with custom settings.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				err := resp(w, r)
				elapsed := time.Since(start)

				attrs := []any{
					"method", r.Method,
					"path", r.URL.Path,
					"duration", elapsed,
				}
				if id, ok := GetRequestID(ctx); ok {
					attrs = append(attrs, "request_id", id)
				}
				if err != nil {
					attrs = append(attrs, "error", err)
				}

				switch {
				case err != nil:
					cfg.Logger.Error("request failed", attrs...)
				case cfg.SlowThreshold > 0 && elapsed > cfg.SlowThreshold:
					cfg.Logger.Warn("slow request", attrs...)
				default:
					cfg.Logger.Log(ctx, cfg.Level, "request", attrs...)
				}

				return err
			}
		}
	}
}
