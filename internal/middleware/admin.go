package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware rejects callers whose role is not admin.
// It must run after SessionAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := CurrentUser(c) // Get user from context
		// Check if user exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		// Check if user role is admin
		if !user.IsAdmin() {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
