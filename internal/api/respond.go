package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// errorJSON writes the {"message": ...} body every failure carries
func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// internalError logs err with context and answers 500 without leaking detail
func internalError(c *gin.Context, err error, message string, fields logrus.Fields) {
	entry := logrus.WithFields(fields).WithFields(logrus.Fields{
		"method": c.Request.Method, // HTTP method
		"path":   c.FullPath(),     // Route template
		"error":  err.Error(),      // Error message
	})
	entry.Error(message)
	errorJSON(c, http.StatusInternalServerError, message)
}
