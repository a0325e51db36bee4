package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapp/internal/session"
)

const ContextUserIDKey = "user_id"

// FailureMode controls how SessionAuth answers an unauthenticated request:
// page routes bounce to the login form, fragment routes get a plain 401.
type FailureMode int

const (
	ModeRedirect FailureMode = iota
	ModeReject
)

// SessionAuth resolves the authenticated user id from the session cookie
// and stores it in the request context. It runs before any handler or
// database access, so a rejected request never reaches the store.
func SessionAuth(sessions *session.Manager, mode FailureMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessions.Read(c)
		if err != nil {
			if mode == ModeRedirect {
				c.Redirect(http.StatusSeeOther, "/login")
			} else {
				c.String(http.StatusUnauthorized, "unauthorized")
			}
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// UserID returns the user id placed in the context by SessionAuth.
func UserID(c *gin.Context) int64 {
	value, _ := c.Get(ContextUserIDKey)
	userID, _ := value.(int64)
	return userID
}
