package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"HRDeskGo/services"
)

// AuthMiddleware validates the bearer token and resolves the session,
// including the revocation check, before any handler runs. Handlers and
// services re-resolve via the same SessionSource at each use.
func AuthMiddleware(sessions services.SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
			return
		}

		// Stash the raw token so the session can be re-validated later
		// in the request, at the point of each write.
		c.Set(services.SessionTokenKey, tokenString)

		sess, err := sessions.Current(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		c.Set("uid", sess.UserID)
		c.Set("email", sess.Email)
		c.Next()
	}
}
