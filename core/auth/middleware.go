package auth

import (
	"github.com/dmitrymomot/keel/core/handler"
	"github.com/dmitrymomot/keel/core/response"
	"github.com/dmitrymomot/keel/core/session"
)

// SessionContext is implemented by request contexts that expose the decoded
// session. The application context satisfies it; tests can provide their own.
type SessionContext interface {
	handler.Context
	Session() *session.Session
}

// userContextKey keys the resolved user in request-scoped state.
type userContextKey struct{}

// RequireLogin wraps handlers so only authenticated requests reach them.
// The current user is resolved before the handler runs; if absent, the
// request is answered with a 303 redirect to the guard's login path and the
// handler never executes. On success the user is exposed through
// request-scoped state, readable via UserFromContext.
func RequireLogin[C SessionContext](g *Guard) handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			user, err := g.CurrentUser(ctx, *ctx.Session())
			if err != nil {
				return response.Error(err)
			}
			if user == nil {
				return response.RedirectSeeOther(g.loginPath)
			}

			ctx.SetValue(userContextKey{}, user)
			return next(ctx)
		}
	}
}

// UserFromContext returns the user attached by RequireLogin.
func UserFromContext(ctx handler.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*User)
	return user, ok
}
