package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keel/core/auth"
	"github.com/dmitrymomot/keel/core/handler"
	"github.com/dmitrymomot/keel/core/router"
	"github.com/dmitrymomot/keel/core/session"
)

// sessionCtx is a minimal SessionContext for exercising RequireLogin outside
// the full application wiring.
type sessionCtx struct {
	*router.Context
	sess session.Session
}

func (c *sessionCtx) Session() *session.Session { return &c.sess }

func TestRequireLogin(t *testing.T) {
	t.Parallel()

	g := newTestGuard(t, auth.WithLoginPath("/signin"))
	user, err := g.CreateUser(context.Background(), "frank@example.com", "pw")
	require.NoError(t, err)

	protected := auth.RequireLogin[*sessionCtx](g)(func(ctx *sessionCtx) handler.Response {
		got, ok := auth.UserFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, user.ID, got.ID)
		return func(w http.ResponseWriter, _ *http.Request) error {
			w.WriteHeader(http.StatusOK)
			return nil
		}
	})

	t.Run("authenticated request passes", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/account", nil)
		ctx := &sessionCtx{Context: router.NewContext(rec, r, nil)}
		g.Login(&ctx.sess, user.ID)

		resp := protected(ctx)
		require.NotNil(t, resp)
		require.NoError(t, resp(rec, r))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("anonymous request redirects", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/account", nil)
		ctx := &sessionCtx{Context: router.NewContext(rec, r, nil)}

		resp := protected(ctx)
		require.NotNil(t, resp)
		require.NoError(t, resp(rec, r))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/signin", rec.Header().Get("Location"))
	})

	t.Run("stale user id redirects", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/account", nil)
		ctx := &sessionCtx{Context: router.NewContext(rec, r, nil)}
		g.Login(&ctx.sess, 9999)

		resp := protected(ctx)
		require.NotNil(t, resp)
		require.NoError(t, resp(rec, r))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}
