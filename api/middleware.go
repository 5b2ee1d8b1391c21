package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// requireAuth validates the Supabase access token on protected routes.
// When no Supabase project is configured (local sqlite mode) there is
// nothing to verify against and requests pass through.
func (r *Router) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.auth == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		userID, err := r.auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
