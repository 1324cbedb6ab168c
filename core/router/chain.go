package router

import "github.com/dmitrymomot/keel/core/handler"

// chain composes middleware around an endpoint. middlewares[0] becomes the
// outermost wrapper, so execution order equals registration order and each
// function runs at most once per request.
func chain[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
