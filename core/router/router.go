package router

import (
	"net/http"

	"github.com/dmitrymomot/keel/core/handler"
)

// Router maps (method, pattern) pairs to handlers and dispatches incoming
// requests through the registered middleware chain.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	// HTTP method registrars
	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])

	// Handle registers a handler for an explicit HTTP method.
	Handle(method, pattern string, h handler.HandlerFunc[C])

	// Use appends middleware; must be called before any route is registered.
	Use(middlewares ...handler.Middleware[C])
}

// Routes provides route introspection for debugging and tests.
type Routes interface {
	Routes() []Route
}

// Route describes a single registered route.
type Route struct {
	Method  string
	Pattern string
}

// New creates a router. The context type parameter determines what request
// context handlers receive; use *router.Context for the default implementation
// or provide a factory with WithContextFactory for custom contexts.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
