package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys set by the session middleware.
const (
	CtxEmail = "user_email"
	CtxRole  = "user_role"
)

// RequireSession resolves the session cookie and stores {email, role} in the
// Gin context. Requests without a valid session get 401.
func RequireSession(sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || id == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(CtxEmail, sess.Email)
		c.Set(CtxRole, sess.Role)
		c.Next()
	}
}

// RequireTeacher rejects non-teacher sessions. Must run after RequireSession.
func RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != RoleTeacher {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
