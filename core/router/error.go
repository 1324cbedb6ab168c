package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/keel/core/handler"
)

var (
	// ErrNotFound is reported when no registered pattern matches the path.
	ErrNotFound = errors.New("not found")
	// ErrMethodNotAllowed is reported when a pattern matches the path but
	// not the request method.
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrNilResponse is reported when a handler returns a nil Response.
	ErrNilResponse = errors.New("nil response")

	// Registration-time misuse; these panic inside Handle and friends.
	ErrInvalidPattern   = errors.New("invalid route pattern")
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrDuplicateParam   = errors.New("duplicate parameter name")
	ErrDuplicateRoute   = errors.New("duplicate route registration")
	ErrNilHandler       = errors.New("nil handler")
	ErrNoContextFactory = errors.New("no context factory provided for custom context type")
)

// MethodNotAllowedError carries the sorted set of methods registered for the
// matched path. The dispatcher turns it into a 405 with an Allow header.
type MethodNotAllowedError struct {
	Allowed []string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method not allowed (allow: %s)", strings.Join(e.Allowed, ", "))
}

// Unwrap makes errors.Is(err, ErrMethodNotAllowed) hold.
func (e *MethodNotAllowedError) Unwrap() error { return ErrMethodNotAllowed }

// StatusCode implements the statusCode interface used by error handlers.
func (e *MethodNotAllowedError) StatusCode() int { return http.StatusMethodNotAllowed }

// statusCode is an unexported interface errors may implement to carry a
// custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// PanicError gives external error handlers access to a recovered panic value
// and the stack captured at the panic point.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string { return fmt.Sprintf("panic: %v", e.value) }
func (e *panicError) Value() any    { return e.value }
func (e *panicError) Stack() []byte { return e.stack }

// Unwrap lets errors.Is/As see through panics that carried an error value.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// defaultErrorHandler maps routing errors to their status codes and
// everything else to 500. Applications normally install their own handler
// via WithErrorHandler.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	default:
		if sc, ok := err.(statusCode); ok {
			status = sc.StatusCode()
		}
	}

	http.Error(w, http.StatusText(status), status)
}
