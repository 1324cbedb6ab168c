package router

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrymomot/keel/core/handler"
)

// Supported HTTP methods. HEAD is implicitly served by GET handlers; the
// net/http server discards the body for HEAD responses.
var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
}

// route holds one compiled pattern with its per-method handlers. Methods
// registered on the same pattern are tracked independently so the Allow
// header can be computed exactly.
type route[C handler.Context] struct {
	pattern  pattern
	handlers map[string]handler.HandlerFunc[C]
}

// mux is the private Router implementation.
type mux[C handler.Context] struct {
	routes      []*route[C] // insertion order; matching does not depend on it
	byPattern   map[string]*route[C]
	middlewares []handler.Middleware[C]
	errHandler  handler.ErrorHandler[C]
	newContext  func(http.ResponseWriter, *http.Request, map[string]string) C
	logger      *slog.Logger
	sealed      bool // set once the first route is registered
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		byPattern:  make(map[string]*route[C]),
		errHandler: defaultErrorHandler[C],
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// Use appends middleware to the chain. Middleware must be registered before
// routes so every handler observes the same chain.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.sealed {
		panic("keel: all middlewares must be registered before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C])    { m.Handle(http.MethodGet, pattern, h) }
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C])   { m.Handle(http.MethodPost, pattern, h) }
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C])    { m.Handle(http.MethodPut, pattern, h) }
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C])  { m.Handle(http.MethodPatch, pattern, h) }
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) { m.Handle(http.MethodDelete, pattern, h) }
func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C])   { m.Handle(http.MethodHead, pattern, h) }

// Handle registers a handler for an explicit method and pattern. Invalid
// patterns, unsupported methods, and duplicate (method, pattern) pairs are
// configuration errors and panic at registration time.
func (m *mux[C]) Handle(method, pattern string, h handler.HandlerFunc[C]) {
	if h == nil {
		panic(fmt.Errorf("%w: %s %s", ErrNilHandler, method, pattern))
	}
	if !slices.Contains(allowedMethods, method) {
		panic(fmt.Errorf("%w: %q", ErrInvalidMethod, method))
	}

	rt, ok := m.byPattern[pattern]
	if !ok {
		compiled, err := compilePattern(pattern)
		if err != nil {
			panic(err)
		}
		rt = &route[C]{pattern: compiled, handlers: make(map[string]handler.HandlerFunc[C])}
		m.byPattern[pattern] = rt
		m.routes = append(m.routes, rt)
	}

	if _, dup := rt.handlers[method]; dup {
		panic(fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, pattern))
	}
	rt.handlers[method] = h
	m.sealed = true
}

// resolve finds the handler and path parameters for a request. The first
// pattern matching both path and method wins. When patterns match the path
// but none carries the method, the error reports the union of their methods
// sorted, with HEAD implied wherever GET is registered.
func (m *mux[C]) resolve(method, path string) (handler.HandlerFunc[C], map[string]string, error) {
	allowed := make(map[string]struct{})
	matched := false

	for _, rt := range m.routes {
		params, ok := rt.pattern.match(path)
		if !ok {
			continue
		}
		matched = true

		if h, ok := rt.handlers[method]; ok {
			return h, params, nil
		}
		// HEAD is a body-less GET unless registered explicitly.
		if method == http.MethodHead {
			if h, ok := rt.handlers[http.MethodGet]; ok {
				return h, params, nil
			}
		}

		for mt := range rt.handlers {
			allowed[mt] = struct{}{}
			if mt == http.MethodGet {
				allowed[http.MethodHead] = struct{}{}
			}
		}
	}

	if !matched {
		return nil, nil, ErrNotFound
	}

	set := make([]string, 0, len(allowed))
	for mt := range allowed {
		set = append(set, mt)
	}
	sort.Strings(set)
	return nil, nil, &MethodNotAllowedError{Allowed: set}
}

// ServeHTTP implements http.Handler: resolve, build context, run the
// middleware chain, render the response. Panics are recovered and passed
// to the error handler wrapped in a PanicError.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	var (
		ctx      C
		ctxReady bool
	)

	defer func() {
		if p := recover(); p != nil {
			perr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				m.logger.Error("panic after response written",
					"value", perr.value,
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
				)
				return
			}
			// A panicking context factory leaves no context to hand the
			// error handler; answer with a bare 500 instead.
			if !ctxReady {
				m.logger.Error("panic building request context",
					"value", perr.value,
					"method", r.Method,
					"path", r.URL.Path,
				)
				http.Error(ww, http.StatusText(http.StatusInternalServerError),
					http.StatusInternalServerError)
				return
			}
			m.errHandler(ctx, perr)
		}
	}()

	fn, params, err := m.resolve(r.Method, path)

	ctx = m.newContext(ww, r, params)
	ctxReady = true

	if err != nil {
		var mna *MethodNotAllowedError
		if errors.As(err, &mna) && !ww.Written() {
			ww.Header().Set("Allow", strings.Join(mna.Allowed, ", "))
		}
		m.errHandler(ctx, err)
		return
	}

	if len(m.middlewares) > 0 {
		fn = chain(m.middlewares, fn)
	}

	resp := fn(ctx)
	if resp == nil {
		m.errHandler(ctx, ErrNilResponse)
		return
	}

	if err := resp(ww, r); err != nil {
		m.errHandler(ctx, err)
	}
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	var out []Route
	for _, rt := range m.routes {
		methods := make([]string, 0, len(rt.handlers))
		for mt := range rt.handlers {
			methods = append(methods, mt)
		}
		sort.Strings(methods)
		for _, mt := range methods {
			out = append(out, Route{Method: mt, Pattern: rt.pattern.raw})
		}
	}
	return out
}
