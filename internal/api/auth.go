package api

import (
	"bookkeeping_system/internal/auth"       // Auth gate
	"bookkeeping_system/internal/domain"     // Importing domain models
	"bookkeeping_system/internal/middleware" // Current user lookup
	"errors"                                 // Error matching
	"net/http"                               // HTTP status codes
	"time"                                   // Timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// CookieSettings controls the session cookie
type CookieSettings struct {
	Name   string        // Cookie name
	TTL    time.Duration // Fixed max-age
	Secure bool          // Only send over HTTPS
}

func (s CookieSettings) set(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, value, maxAge, "/", "", s.Secure, true) // HttpOnly
}

// LoginHandler checks credentials and opens a cookie session
func LoginHandler(gate *auth.Service, cookie CookieSettings) gin.HandlerFunc {
	useJSONFieldNames()
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			errorJSON(c, http.StatusBadRequest, "Username and password are required")
			return
		}
		user, token, err := gate.Login(c.Request.Context(), req.Username, req.Password)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Same answer for unknown user and wrong password
			errorJSON(c, http.StatusUnauthorized, "Invalid username or password")
			return
		} else if err != nil {
			internalError(c, err, "Login failed", logrus.Fields{"username": req.Username})
			return
		}
		cookie.set(c, token, int(cookie.TTL.Seconds()))
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,                         // User ID
			"role":      user.Role,                       // User role
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("User logged in")
		c.JSON(http.StatusOK, user) // Password is never serialized
	}
}

// LogoutHandler destroys the caller's session and clears the cookie
func LogoutHandler(gate *auth.Service, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookie.Name) // Missing cookie leaves token empty
		if err := gate.Logout(c.Request.Context(), token); err != nil {
			internalError(c, err, "Failed to logout", logrus.Fields{})
			return
		}
		cookie.set(c, "", -1) // Expire the cookie
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// MeHandler returns the authenticated user
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := middleware.CurrentUser(c) // Get user from context
		if !exists {
			errorJSON(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
