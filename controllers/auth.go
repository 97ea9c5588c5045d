package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The fronting auth collaborator verifies the session and injects the
// resolved user id; this service only scopes queries by it.
const (
	userIDHeader = "X-User-ID"
	userIDKey    = "userID"
)

// RequireUser rejects requests that carry no resolved user identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id placed by RequireUser.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
