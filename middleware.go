package keel

import (
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/keel/core/handler"
	"github.com/dmitrymomot/keel/core/response"
	"github.com/dmitrymomot/keel/core/session"
)

// sessionMiddleware loads the session before the handler and writes the
// cookie back after it, before the response body. Responses are deferred
// writes, so the Set-Cookie header always lands ahead of the status line.
// Unmodified sessions are never rewritten.
func (a *App) sessionMiddleware() handler.Middleware[*Ctx] {
	return func(next handler.HandlerFunc[*Ctx]) handler.HandlerFunc[*Ctx] {
		return func(c *Ctx) handler.Response {
			c.sess = a.sessions.Load(c.Request())

			resp := next(c)
			if resp == nil {
				return nil
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				if c.sess.Modified() {
					if err := a.sessions.Save(w, c.sess); err != nil {
						a.log.ErrorContext(r.Context(), "failed to save session",
							"error", err)
					}
				}
				return resp(w, r)
			}
		}
	}
}

// csrfMiddleware rejects state-changing requests whose form token does not
// match the session token. It is pinned as the innermost middleware so all
// other middleware has already run and the session is in its final
// pre-handler state.
func (a *App) csrfMiddleware() handler.Middleware[*Ctx] {
	return func(next handler.HandlerFunc[*Ctx]) handler.HandlerFunc[*Ctx] {
		return func(c *Ctx) handler.Response {
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
				if err := parseBodyForm(c.Request()); err != nil {
					return response.Error(response.ErrBadRequest.WithError(err))
				}
				token := c.Request().PostFormValue(session.FormField)
				if !c.sess.VerifyCSRF(token) {
					return response.Error(ErrCSRFMismatch)
				}
			}
			return next(c)
		}
	}
}

// maxFormBodySize caps how much of a request body the token lookup reads,
// matching the net/http form parsing limit.
const maxFormBodySize = 10 << 20

// parseBodyForm populates the request's form data from an urlencoded body.
// http.Request.ParseForm only reads the body for POST, PUT, and PATCH, so
// DELETE bodies carrying the token are parsed here explicitly.
func parseBodyForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	if r.Method != http.MethodDelete || len(r.PostForm) > 0 {
		return nil
	}

	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mt != "application/x-www-form-urlencoded" {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxFormBodySize))
	if err != nil {
		return err
	}
	vals, err := url.ParseQuery(string(body))
	if err != nil {
		return err
	}

	r.PostForm = vals
	if r.Form == nil {
		r.Form = url.Values{}
	}
	for k, vs := range vals {
		r.Form[k] = append(r.Form[k], vs...)
	}
	return nil
}

// errorHandler logs server-side failures and delegates rendering to the
// shared plain-text handler. Client errors (4xx) are routine and logged at
// debug level only.
func (a *App) errorHandler() handler.ErrorHandler[*Ctx] {
	render := response.ErrorHandler[*Ctx](a.cfg.Debug)

	return func(c *Ctx, err error) {
		r := c.Request()
		if response.StatusOf(err) >= http.StatusInternalServerError {
			a.log.ErrorContext(r.Context(), "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err)
		} else {
			a.log.DebugContext(r.Context(), "request rejected",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err)
		}
		render(c, err)
	}
}
