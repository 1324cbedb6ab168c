package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/keel/core/handler"
	"github.com/dmitrymomot/keel/core/router"
)

// statusCode is implemented by errors that carry an HTTP status.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError maps any error onto the HTTPError taxonomy: routing
// errors to 404/405, statusCode carriers to their own code, everything else
// to 500.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, router.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, router.ErrMethodNotAllowed):
		return ErrMethodNotAllowed
	}

	if sc, ok := err.(statusCode); ok {
		switch sc.StatusCode() {
		case http.StatusBadRequest:
			return ErrBadRequest.WithError(err)
		case http.StatusForbidden:
			return ErrForbidden.WithError(err)
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusMethodNotAllowed:
			return ErrMethodNotAllowed
		case http.StatusTooManyRequests:
			return ErrTooManyRequests.WithError(err)
		}
	}

	return ErrInternalServerError.WithError(err)
}

// StatusOf reports the HTTP status an error will be rendered with. Useful
// for callers that log server errors differently from client errors.
func StatusOf(err error) int {
	return convertToHTTPError(err).Status
}

// ErrorHandler returns a plain-text error handler. In debug mode 500
// responses carry the underlying error and, for panics, the stack trace; in
// production they carry only the generic status text so internals never
// leak to clients.
func ErrorHandler[C handler.Context](debug bool) handler.ErrorHandler[C] {
	return func(ctx C, err error) {
		httpErr := convertToHTTPError(err)

		body := httpErr.Message
		if debug && httpErr.Status == http.StatusInternalServerError {
			body = fmt.Sprintf("%s\n\n%v", httpErr.Message, err)
			var perr router.PanicError
			if errors.As(err, &perr) {
				body = fmt.Sprintf("%s\n\n%s", body, perr.Stack())
			}
		}

		Render(ctx, StringWithStatus(body, httpErr.Status))
	}
}

// JSONErrorHandler renders errors as JSON with the same debug/production
// disclosure rules as ErrorHandler.
func JSONErrorHandler[C handler.Context](debug bool) handler.ErrorHandler[C] {
	return func(ctx C, err error) {
		httpErr := convertToHTTPError(err)

		if !debug && httpErr.Status == http.StatusInternalServerError {
			httpErr = ErrInternalServerError
		}

		Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
	}
}
