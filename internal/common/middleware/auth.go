package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/users/repository"
)

// AuthRequired middleware resolves the session token from the Authorization
// header (or session cookie) and puts the user ID into the gin context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			appErr := errors.Unauthorized("missing or invalid authentication")
			c.AbortWithStatusJSON(appErr.Status, appErr)
			return
		}

		session, err := repository.GetSessionByToken(token)
		if err != nil {
			appErr := errors.Unauthorized("invalid or expired session")
			c.AbortWithStatusJSON(appErr.Status, appErr)
			return
		}

		c.Set("user_id", session.UserID)
		c.Next()
	}
}

// OptionalAuth - doesn't fail if missing, but resolves the user if present
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if session, err := repository.GetSessionByToken(token); err == nil {
				c.Set("user_id", session.UserID)
			}
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie("session_token"); err == nil {
		return cookie
	}
	return ""
}

// CurrentUserID returns the authenticated user ID from the context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
