// Package session maps an authenticated user id to an opaque browser
// cookie. The cookie value is a signed JWT so tampering is detectable
// with only a server-held secret and no server-side session table.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todoapp/internal/config"
	appErr "todoapp/internal/pkg/errors"
	"todoapp/internal/pkg/jwt"
)

type Manager struct {
	cookieName string
	secret     []byte
	ttl        time.Duration
	secure     bool
	sameSite   http.SameSite
}

func NewManager(cfg config.SessionConfig) *Manager {
	sameSite := http.SameSiteLaxMode
	switch cfg.SameSite {
	case "strict":
		sameSite = http.SameSiteStrictMode
	case "none":
		sameSite = http.SameSiteNoneMode
	}
	return &Manager{
		cookieName: cfg.CookieName,
		secret:     []byte(cfg.Secret),
		ttl:        time.Duration(cfg.TTLHours) * time.Hour,
		secure:     cfg.Secure,
		sameSite:   sameSite,
	}
}

// Issue signs a token for userID and sets it as an HttpOnly cookie.
func (m *Manager) Issue(c *gin.Context, userID int64) error {
	token, err := jwt.GenerateToken(userID, m.secret, m.ttl)
	if err != nil {
		return err
	}
	c.SetSameSite(m.sameSite)
	c.SetCookie(m.cookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

// Read returns the user id carried by the request's session cookie.
// Missing, expired and tampered tokens all come back as ErrUnauthorized.
func (m *Manager) Read(c *gin.Context) (int64, error) {
	value, err := c.Cookie(m.cookieName)
	if err != nil || value == "" {
		return 0, appErr.ErrUnauthorized
	}
	claims, err := jwt.ParseToken(value, m.secret)
	if err != nil {
		return 0, appErr.ErrUnauthorized
	}
	return claims.UserID, nil
}

// Clear expires the session cookie; subsequent Reads see no session.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(m.sameSite)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}
