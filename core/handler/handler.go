package handler

import "net/http"

// Response renders an HTTP response. It writes headers, status code, and body.
// Returning an error delegates to the application's error handler instead of
// writing a partial response.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe request handler parameterized over the request
// context type. It returns a deferred Response instead of writing directly,
// so middleware can still adjust headers (cookies, session state) before the
// body goes out.
type HandlerFunc[C Context] func(ctx C) Response

// Middleware wraps a handler to add cross-cutting behavior. Returning a
// response without calling next short-circuits the chain.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// ErrorHandler converts errors raised during request processing into responses.
type ErrorHandler[C Context] func(ctx C, err error)
