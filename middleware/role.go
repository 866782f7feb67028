package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates an endpoint on the caller's role. Unlike the
// ownership check inside the services (which answers 400), a failed
// role gate is a hard 403.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Next()
	}
}
