package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/keel/core/handler"
)

// Option configures a router at construction time.
type Option[C handler.Context] func(*mux[C])

// WithErrorHandler replaces the default error handler. The handler receives
// every routing error (not found, method not allowed), handler error, and
// recovered panic.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(m *mux[C]) {
		if h != nil {
			m.errHandler = h
		}
	}
}

// WithContextFactory sets the factory used to build the per-request context.
// Required for any context type other than *router.Context.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request, map[string]string) C) Option[C] {
	return func(m *mux[C]) {
		if f != nil {
			m.newContext = f
		}
	}
}

// WithLogger sets the logger used for panics that occur after the response
// has already been written. Defaults to a no-op logger.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(m *mux[C]) {
		if logger != nil {
			m.logger = logger
		}
	}
}
