package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "todoapp/internal/pkg/errors"
	"todoapp/internal/service"
	"todoapp/internal/session"
)

type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
}

func NewAuthHandler(auth *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login verifies the submitted credentials. On success the session cookie
// is set and the client is told to navigate home via HX-Redirect; on
// failure the form fragment is re-rendered with a generic message that
// never distinguishes an unknown email from a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, appErr.ErrUnauthorized) {
			c.HTML(http.StatusOK, "login_form_fragment.html", gin.H{"Error": "Invalid email or password"})
			return
		}
		handleError(c, err)
		return
	}
	if err := h.sessions.Issue(c, user.ID); err != nil {
		handleError(c, err)
		return
	}
	c.Header("HX-Redirect", "/")
	c.Status(http.StatusOK)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register creates the account and redirects home. No session is issued
// here: the home page bounces a fresh registrant back to the login form.
func (h *AuthHandler) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	userName := c.PostForm("user_name")

	_, err := h.auth.Register(c.Request.Context(), email, password, userName)
	switch {
	case errors.Is(err, appErr.ErrInvalid):
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": "Password must be at least 6 characters"})
	case errors.Is(err, appErr.ErrConflict):
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": "This email is already registered"})
	case err != nil:
		handleError(c, err)
	default:
		c.Redirect(http.StatusSeeOther, "/")
	}
}
