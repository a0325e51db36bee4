package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginSuccessSetsCookieAndRedirectHeader(t *testing.T) {
	router, _ := setupRouter(t)
	register(t, router, "a@example.com", "secret1", "alice")

	cookie := login(t, router, "a@example.com", "secret1")
	require.Equal(t, "session", cookie.Name)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
}

func TestLoginFailureRerendersFormWithGenericError(t *testing.T) {
	router, _ := setupRouter(t)
	register(t, router, "a@example.com", "secret1", "alice")

	for _, form := range []url.Values{
		{"email": {"nobody@example.com"}, "password": {"secret1"}},
		{"email": {"a@example.com"}, "password": {"wrong"}},
	} {
		rec := doForm(router, http.MethodPost, "/login", form)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid email or password")
		require.Empty(t, rec.Header().Get("HX-Redirect"))
		require.Empty(t, rec.Result().Cookies())
	}
}

func TestRegisterValidation(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doForm(router, http.MethodPost, "/register", url.Values{
		"email":     {"a@example.com"},
		"password":  {"12345"},
		"user_name": {"alice"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "at least 6 characters")

	register(t, router, "a@example.com", "123456", "alice")

	rec = doForm(router, http.MethodPost, "/register", url.Values{
		"email":     {"A@Example.com  "},
		"password":  {"another-pass"},
		"user_name": {"imposter"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "already registered")
}

func TestRegisterDoesNotAutoLogin(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doForm(router, http.MethodPost, "/register", url.Values{
		"email":     {"a@example.com"},
		"password":  {"secret1"},
		"user_name": {"alice"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
	// No session cookie: the home page will bounce back to /login.
	require.Empty(t, rec.Result().Cookies())

	home := doGet(router, "/")
	require.Equal(t, http.StatusSeeOther, home.Code)
	require.Equal(t, "/login", home.Header().Get("Location"))
}

func TestLogoutClearsSession(t *testing.T) {
	router, _ := setupRouter(t)
	register(t, router, "a@example.com", "secret1", "alice")
	cookie := login(t, router, "a@example.com", "secret1")

	rec := doForm(router, http.MethodPost, "/logout", nil, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Empty(t, cleared[0].Value)
	require.Negative(t, cleared[0].MaxAge)

	home := doGet(router, "/", cleared[0])
	require.Equal(t, http.StatusSeeOther, home.Code)
	require.Equal(t, "/login", home.Header().Get("Location"))
}

func TestLoginAndRegisterPagesRender(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doGet(router, "/login")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "hx-post=\"/login\"")

	rec = doGet(router, "/register")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "action=\"/register\"")
}
