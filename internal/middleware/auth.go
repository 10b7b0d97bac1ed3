package middleware

import (
	"bookkeeping_system/internal/auth"   // Auth gate
	"bookkeeping_system/internal/domain" // Importing domain models
	"errors"                             // Error matching
	"net/http"                           // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// Context keys set by SessionAuthMiddleware
const (
	ContextUserKey   = "user"   // domain.User of the caller
	ContextUserIDKey = "userID" // uint id of the caller
)

// SessionAuthMiddleware resolves the session cookie to a user and stores it in the context
func SessionAuthMiddleware(gate *auth.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookieName) // Missing cookie leaves token empty
		user, err := gate.Resolve(c.Request.Context(), token)
		if errors.Is(err, domain.ErrUnauthenticated) {
			// No live session, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		} else if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  c.FullPath(), // Route being accessed
				"error": err.Error(),  // Error message
			}).Error("Session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.Set(ContextUserKey, user)      // Store user in context
		c.Set(ContextUserIDKey, user.ID) // Store userID in context
		c.Next()                         // Proceed to the next handler
	}
}

// CurrentUser returns the user stored by SessionAuthMiddleware
func CurrentUser(c *gin.Context) (domain.User, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := v.(domain.User)
	return user, ok
}
