package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"todoapp/internal/config"
	"todoapp/internal/handler"
	"todoapp/internal/repo"
	"todoapp/internal/service"
	"todoapp/internal/session"
	"todoapp/internal/testutil"
)

const testBcryptCost = 4

func setupRouter(t *testing.T) (http.Handler, *sqlx.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenTestDB(t)
	authService := service.NewAuthService(repo.NewUserRepo(db), testBcryptCost)
	todoService := service.NewTodoService(repo.NewTodoRepo(db))
	sessions := session.NewManager(config.SessionConfig{
		CookieName: "session",
		Secret:     "test-secret",
		TTLHours:   1,
		SameSite:   "lax",
	})

	router, err := handler.NewRouter(handler.RouterDeps{
		Auth:           handler.NewAuthHandler(authService, sessions),
		Todos:          handler.NewTodoHandler(todoService, authService),
		Sessions:       sessions,
		EnableRegister: true,
	})
	require.NoError(t, err)
	return router, db
}

func doForm(router http.Handler, method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doGet(router http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, router http.Handler, email, password, userName string) {
	t.Helper()
	rec := doForm(router, http.MethodPost, "/register", url.Values{
		"email":     {email},
		"password":  {password},
		"user_name": {userName},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
}

func login(t *testing.T, router http.Handler, email, password string) *http.Cookie {
	t.Helper()
	rec := doForm(router, http.MethodPost, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "/", rec.Header().Get("HX-Redirect"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}
