package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongosession/pkg/cookie"
)

const (
	secret1 = "first-secret-key-that-is-long-enough"
	secret2 = "second-secret-key-that-is-long-enough"
)

func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("no secrets", func(t *testing.T) {
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)

		_, err = cookie.New([]string{"", ""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("short secret", func(t *testing.T) {
		_, err := cookie.New([]string{"short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})

	t.Run("valid", func(t *testing.T) {
		m, err := cookie.New([]string{secret1})
		require.NoError(t, err)
		assert.NotNil(t, m)
	})
}

func TestManager_SetGet(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret1})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Set(w, "plain", "value")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "/", cookies[0].Path)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	got, err := m.Get(roundTrip(w), "plain")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "plain")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret1})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		w := httptest.NewRecorder()
		m.SetSigned(w, "sid", "abc123", cookie.WithMaxAge(60))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, 60, cookies[0].MaxAge)
		assert.NotEqual(t, "abc123", cookies[0].Value)

		got, err := m.GetSigned(roundTrip(w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "abc123", got)
	})

	t.Run("tampered signature", func(t *testing.T) {
		w := httptest.NewRecorder()
		m.SetSigned(w, "sid", "abc123")
		c := w.Result().Cookies()[0]
		c.Value = c.Value[:len(c.Value)-2] + "xx"

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(c)
		_, err := m.GetSigned(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("unsigned value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "bumblebeetuna"})
		_, err := m.GetSigned(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})
}

func TestManager_SecretRotation(t *testing.T) {
	t.Parallel()

	old, err := cookie.New([]string{secret1})
	require.NoError(t, err)
	rotated, err := cookie.New([]string{secret2, secret1})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	old.SetSigned(w, "sid", "abc")

	got, err := rotated.GetSigned(roundTrip(w), "sid")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	w = httptest.NewRecorder()
	rotated.SetSigned(w, "sid", "abc")
	_, err = old.GetSigned(roundTrip(w), "sid")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m, err := cookie.New([]string{secret1}, cookie.WithDomain("example.com"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Delete(w, "sid")

	header := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(header, "sid=;"))
	assert.Contains(t, header, "Max-Age=0")
	assert.Contains(t, header, "Domain=example.com")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.Config{
		Secrets:  " " + secret1 + " , ," + secret2,
		Path:     "/app",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	assert.Equal(t, []string{secret1, secret2}, cfg.SecretList())

	m, err := cookie.NewFromConfig(cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Set(w, "k", "v")
	c := w.Result().Cookies()[0]
	assert.Equal(t, "/app", c.Path)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	_, err = cookie.NewFromConfig(cookie.Config{})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}
