package handler

import (
	"context"
	"net/http"
)

// Context is the contract every request context must satisfy. The router
// creates one context per request; middleware and handlers share it for the
// lifetime of that request and it is discarded when the response is written.
type Context interface {
	context.Context

	// Request returns the incoming HTTP request.
	Request() *http.Request

	// ResponseWriter returns the writer for the outgoing response.
	ResponseWriter() http.ResponseWriter

	// Param returns the raw value of a named path parameter, or "" when the
	// matched route has no such parameter.
	Param(key string) string

	// SetValue attaches request-scoped state visible to all subsequent
	// middleware and the handler of the same request.
	SetValue(key, val any)
}
