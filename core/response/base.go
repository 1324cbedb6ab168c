package response

import (
	"net/http"

	"github.com/dmitrymomot/keel/core/handler"
)

// Render executes a response against the context's writer, discarding any
// render error; it exists for error handlers that must write a response
// outside the normal return path.
func Render(ctx handler.Context, resp handler.Response) {
	_ = resp(ctx.ResponseWriter(), ctx.Request())
}

// String responds with plain text and status 200.
func String(content string) handler.Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus responds with plain text and a custom status code.
func StringWithStatus(content string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, err := w.Write([]byte(content))
		return err
	}
}

// HTML responds with an HTML body and status 200.
func HTML(content string) handler.Response {
	return HTMLWithStatus(content, http.StatusOK)
}

// HTMLWithStatus responds with an HTML body and a custom status code.
func HTMLWithStatus(content string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, err := w.Write([]byte(content))
		return err
	}
}

// NoContent responds with 204 and an empty body.
func NoContent() handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

// Status responds with the given status code and its standard text.
func Status(code int) handler.Response {
	return StringWithStatus(http.StatusText(code), code)
}
