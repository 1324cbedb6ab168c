package keel

import (
	"github.com/dmitrymomot/keel/core/response"
	"github.com/dmitrymomot/keel/core/router"
	"github.com/dmitrymomot/keel/core/session"
)

// Ctx is the request context flowing through handlers. It embeds the router
// context (request, response writer, path params, request-scoped values) and
// carries the decoded session for the lifetime of the request.
//
// The session is loaded once by the session middleware and saved back to the
// cookie after the handler runs, but only when it was modified.
type Ctx struct {
	*router.Context

	sess session.Session
}

// Session returns the mutable per-request session. Changes made through it
// are persisted automatically at the end of the request.
func (c *Ctx) Session() *session.Session { return &c.sess }

// CSRF returns the session's CSRF token for embedding in forms, issuing one
// if the session has none yet.
func (c *Ctx) CSRF() string { return c.sess.EnsureCSRF() }

// Flash queues a one-time message shown on the next rendered page.
func (c *Ctx) Flash(kind, message string) { c.sess.AddFlash(kind, message) }

// HTMX reports the htmx request headers, zero-valued for plain requests.
func (c *Ctx) HTMX() response.HTMXRequest {
	return response.HTMXFromRequest(c.Request())
}

// RenderContext bundles the values templates conventionally need: the CSRF
// token for forms, the drained flash queue, and the htmx request state.
// Calling it drains flashes, so call it once per render.
func (c *Ctx) RenderContext() RenderContext {
	return RenderContext{
		CSRF:    c.sess.EnsureCSRF(),
		Flashes: c.sess.PullFlashes(),
		HTMX:    c.HTMX(),
	}
}

// RenderContext is the per-request data handed to page templates.
type RenderContext struct {
	CSRF    string
	Flashes []session.Flash
	HTMX    response.HTMXRequest
}
