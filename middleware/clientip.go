package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/dmitrymomot/keel/core/handler"
)

// clientIPContextKey keys the client IP in request-scoped state.
type clientIPContextKey struct{}

// ClientIP extracts the source IP from proxy headers (X-Forwarded-For,
// X-Real-IP) with RemoteAddr as fallback and stores it in request-scoped
// state. Run it before anything that throttles by IP.
func ClientIP[C handler.Context]() handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			ctx.SetValue(clientIPContextKey{}, extractIP(ctx.Request()))
			return next(ctx)
		}
	}
}

// GetClientIP returns the IP attached by ClientIP, falling back to the
// request's RemoteAddr when the middleware did not run.
func GetClientIP(ctx handler.Context) string {
	if ip, ok := ctx.Value(clientIPContextKey{}).(string); ok && ip != "" {
		return ip
	}
	return extractIP(ctx.Request())
}

func extractIP(r *http.Request) string {
	// First hop of X-Forwarded-For is the originating client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}

	if rip := r.Header.Get("X-Real-IP"); rip != "" {
		return strings.TrimSpace(rip)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
