package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keel/core/response"
)

func execute(t *testing.T, resp func(http.ResponseWriter, *http.Request) error, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, resp(rec, r))
	return rec
}

func TestString(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := execute(t, response.String("hello"), r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestHTML(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := execute(t, response.HTMLWithStatus("<h1>hi</h1>", http.StatusCreated), r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "<h1>hi</h1>", rec.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := execute(t, response.JSON(map[string]any{"ok": true}), r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := execute(t, response.NoContent(), r)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRedirects(t *testing.T) {
	t.Parallel()

	t.Run("see other", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		rec := execute(t, response.RedirectSeeOther("/dashboard"), r)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})

	t.Run("htmx navigation", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.Header.Set(response.HeaderHXRequest, "true")
		rec := execute(t, response.RedirectSeeOther("/dashboard"), r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(response.HeaderHXLocation))
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := response.ErrForbidden.WithMessage("nope")
	assert.Equal(t, http.StatusForbidden, err.StatusCode())
	assert.Equal(t, "nope", err.Error())
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusForbidden, response.StatusOf(response.ErrForbidden))
	assert.Equal(t, http.StatusInternalServerError, response.StatusOf(assert.AnError))
}
