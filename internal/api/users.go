package api

import (
	"bookkeeping_system/internal/domain"     // Importing domain models
	"bookkeeping_system/internal/middleware" // Current user lookup
	"context"                                // Store calls
	"errors"                                 // Error matching
	"net/http"                               // HTTP status codes
	"strconv"                                // String conversion
	"strings"                                // String manipulation
	"time"                                   // Timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// UserRepository is the user store as seen by the handlers
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
}

// CreateUserRequest is the body of POST /api/users
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=64"`         // Unique username
	Password string `json:"password" binding:"required"`                // Plaintext, hashed before storage
	Name     string `json:"name" binding:"required"`                    // Display name
	Role     string `json:"role" binding:"omitempty,oneof=admin staff"` // Defaults to staff
}

// CreateUserHandler lets an admin add a user
func CreateUserHandler(users UserRepository) gin.HandlerFunc {
	useJSONFieldNames()
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, validationMessage(err))
			return
		}
		username := strings.TrimSpace(req.Username)
		if username == "" {
			errorJSON(c, http.StatusBadRequest, "username is required")
			return
		}
		user, err := users.Create(c.Request.Context(), domain.User{
			Username: username,
			Password: req.Password,
			Name:     req.Name,
			Role:     req.Role,
		})
		if errors.Is(err, domain.ErrConflict) {
			// Duplicate username
			errorJSON(c, http.StatusBadRequest, "Username already exists")
			return
		} else if err != nil {
			internalError(c, err, "Failed to create user", logrus.Fields{"username": username})
			return
		}
		admin, _ := middleware.CurrentUser(c)
		logrus.WithFields(logrus.Fields{
			"user_id":    user.ID,                         // New user ID
			"role":       user.Role,                       // New user role
			"created_by": admin.ID,                        // Admin who created it
			"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("User created")
		c.JSON(http.StatusCreated, user)
	}
}

// ListUsersHandler returns users page by page
func ListUsersHandler(users UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		list, total, err := users.List(c.Request.Context(), offset, pageSize)
		if err != nil {
			internalError(c, err, "Failed to fetch users", logrus.Fields{"page": page})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"users":       list,                                   // List of users
			"page":        page,                                   // Current page
			"page_size":   pageSize,                               // Page size
			"total":       total,                                  // Total number of users
			"total_pages": (int(total) + pageSize - 1) / pageSize, // Total pages
		})
	}
}
