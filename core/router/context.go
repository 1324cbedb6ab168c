package router

import (
	"net/http"
	"strconv"
	"time"
)

// Context is the default request context. It carries the matched path
// parameters and a per-request key/value store that middleware and handlers
// share. A fresh instance is created for every request; nothing leaks
// across requests.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
	values map[any]any
}

func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{w: w, r: r, params: params}
}

// NewContext builds a default context; exported for context factories that
// embed *Context in an application-specific type.
func NewContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return newContext(w, r, params)
}

func (c *Context) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *Context) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *Context) Err() error                  { return c.r.Context().Err() }

// Value looks up request-scoped values set via SetValue first, then falls
// back to the underlying request context.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}

// Request returns the incoming HTTP request.
func (c *Context) Request() *http.Request { return c.r }

// ResponseWriter returns the writer for the outgoing response.
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns the raw string value of a named path parameter.
func (c *Context) Param(key string) string {
	if c.params == nil {
		return ""
	}
	return c.params[key]
}

// ParamInt returns an integer path parameter. For parameters declared as
// {name:int} the router has already constrained the segment to digits, so
// the conversion only fails when the parameter does not exist.
func (c *Context) ParamInt(key string) (int64, error) {
	raw := c.Param(key)
	if raw == "" {
		return 0, ErrNotFound
	}
	return strconv.ParseInt(raw, 10, 64)
}

// SetValue attaches request-scoped state. Values are visible to subsequent
// middleware and the handler of the same request only.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}
