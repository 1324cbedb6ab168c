package keel

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/keel/core/auth"
	"github.com/dmitrymomot/keel/core/cookie"
	"github.com/dmitrymomot/keel/core/db"
	"github.com/dmitrymomot/keel/core/handler"
	"github.com/dmitrymomot/keel/core/router"
	"github.com/dmitrymomot/keel/core/session"
)

// App is the composition root: it owns the router, session transport,
// authentication guard, and database, and threads them through the request
// lifecycle explicitly. Construct one per process (or per test); there is no
// package-level state.
//
// The dispatch spine for every request is:
//
//	router resolve -> session load -> app middleware -> CSRF check -> handler -> response
//
// Session loading always runs first so later middleware and the CSRF check
// see the decoded session; the CSRF check is pinned innermost so it runs
// immediately before the handler, after all registered middleware.
type App struct {
	cfg      Config
	log      *slog.Logger
	mux      router.Router[*Ctx]
	db       *db.DB
	guard    *auth.Guard
	sessions *session.Transport

	csrfArmed bool
}

// New builds an application from configuration. The signing secret feeds
// both the cookie manager and the session codec; debug mode controls the
// Secure cookie flag and error disclosure.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	a := &App{
		cfg: cfg,
		log: slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	cookies, err := cookie.New(cfg.Secret, cookie.WithSecure(!cfg.Debug))
	if err != nil {
		return nil, err
	}

	codec, err := session.NewCodec(cfg.Secret, session.WithTTL(cfg.SessionTTL))
	if err != nil {
		return nil, err
	}
	a.sessions = session.NewTransport(codec, cookies, cfg.SessionCookie)

	if a.db == nil {
		database, err := db.Connect(ctx, cfg.Database, db.WithLogger(a.log))
		if err != nil {
			return nil, err
		}
		a.db = database
	}

	guardOpts := append(auth.GuardOptionsFromConfig(cfg.Auth), auth.WithGuardLogger(a.log))
	a.guard = auth.NewGuard(a.db, guardOpts...)

	a.mux = router.New[*Ctx](
		router.WithContextFactory[*Ctx](a.newCtx),
		router.WithErrorHandler[*Ctx](a.errorHandler()),
		router.WithLogger[*Ctx](a.log),
	)
	a.mux.Use(a.sessionMiddleware())

	return a, nil
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Use appends middleware to the chain. Like the router, middleware must be
// registered before any route; it runs after session loading and before the
// CSRF check.
func (a *App) Use(middlewares ...handler.Middleware[*Ctx]) {
	a.mux.Use(middlewares...)
}

// Route registrars. The first registration pins the CSRF check at the end
// of the middleware chain, which is why middleware cannot be added later.

func (a *App) Get(pattern string, h handler.HandlerFunc[*Ctx])    { a.handle(http.MethodGet, pattern, h) }
func (a *App) Post(pattern string, h handler.HandlerFunc[*Ctx])   { a.handle(http.MethodPost, pattern, h) }
func (a *App) Put(pattern string, h handler.HandlerFunc[*Ctx])    { a.handle(http.MethodPut, pattern, h) }
func (a *App) Patch(pattern string, h handler.HandlerFunc[*Ctx])  { a.handle(http.MethodPatch, pattern, h) }
func (a *App) Delete(pattern string, h handler.HandlerFunc[*Ctx]) { a.handle(http.MethodDelete, pattern, h) }
func (a *App) Head(pattern string, h handler.HandlerFunc[*Ctx])   { a.handle(http.MethodHead, pattern, h) }

func (a *App) handle(method, pattern string, h handler.HandlerFunc[*Ctx]) {
	if !a.csrfArmed {
		a.mux.Use(a.csrfMiddleware())
		a.csrfArmed = true
	}
	a.mux.Handle(method, pattern, h)
}

// Protect wraps a handler with the guard's route protection: anonymous
// requests are redirected (303) to the login path and never reach h.
func (a *App) Protect(h handler.HandlerFunc[*Ctx]) handler.HandlerFunc[*Ctx] {
	return auth.RequireLogin[*Ctx](a.guard)(h)
}

// Routes exposes the registered routes.
func (a *App) Routes() []router.Route { return a.mux.Routes() }

// DB returns the SQL access layer.
func (a *App) DB() *db.DB { return a.db }

// Guard returns the authentication guard.
func (a *App) Guard() *auth.Guard { return a.guard }

// Sessions returns the session transport.
func (a *App) Sessions() *session.Transport { return a.sessions }

// Close releases held resources, the database connection in particular.
func (a *App) Close() error { return a.db.Close() }

func (a *App) newCtx(w http.ResponseWriter, r *http.Request, params map[string]string) *Ctx {
	return &Ctx{Context: router.NewContext(w, r, params)}
}
