package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keel/core/cookie"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid secret", func(t *testing.T) {
		t.Parallel()

		m, err := cookie.New(testSecret)
		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("empty secret", func(t *testing.T) {
		t.Parallel()

		_, err := cookie.New("")
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Parallel()

		_, err := cookie.New("too-short")
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})
}

func TestSetGet(t *testing.T) {
	t.Parallel()

	m, err := cookie.New(testSecret)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, "theme", "dark"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "theme", cookies[0].Name)
	assert.Equal(t, "dark", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])

	got, err := m.Get(r, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	m, err := cookie.New(testSecret)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err = m.Get(r, "absent")
	assert.Error(t, err)
}

func TestSignedRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := cookie.New(testSecret)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(rec, "state", "value-to-protect"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	// Signed format is payload|signature, both base64.
	assert.Contains(t, cookies[0].Value, "|")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])

	got, err := m.GetSigned(r, "state")
	require.NoError(t, err)
	assert.Equal(t, "value-to-protect", got)
}

func TestSignedTamperDetection(t *testing.T) {
	t.Parallel()

	m, err := cookie.New(testSecret)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(rec, "state", "original"))

	c := rec.Result().Cookies()[0]
	parts := strings.SplitN(c.Value, "|", 2)
	require.Len(t, parts, 2)

	t.Run("altered payload", func(t *testing.T) {
		t.Parallel()

		forged := &http.Cookie{Name: "state", Value: "Zm9yZ2Vk|" + parts[1]}
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(forged)

		_, err := m.GetSigned(r, "state")
		assert.Error(t, err)
	})

	t.Run("altered signature", func(t *testing.T) {
		t.Parallel()

		forged := &http.Cookie{Name: "state", Value: parts[0] + "|AAAA"}
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(forged)

		_, err := m.GetSigned(r, "state")
		assert.Error(t, err)
	})

	t.Run("different secret", func(t *testing.T) {
		t.Parallel()

		other, err := cookie.New("another-secret-another-secret-xx")
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(c)

		_, err = other.GetSigned(r, "state")
		assert.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	t.Parallel()

	m, err := cookie.New(testSecret)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.Delete(rec, "session")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestCookieTooLarge(t *testing.T) {
	t.Parallel()

	m, err := cookie.New(testSecret)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = m.Set(rec, "big", strings.Repeat("x", cookie.MaxCookieSize+1))

	var tooLarge cookie.ErrCookieTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "big", tooLarge.Name)
}

func TestOptionOverrides(t *testing.T) {
	t.Parallel()

	m, err := cookie.New(testSecret, cookie.WithSecure(true))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, "a", "b", cookie.WithMaxAge(60)))

	c := rec.Result().Cookies()[0]
	assert.True(t, c.Secure)
	assert.Equal(t, 60, c.MaxAge)
}
