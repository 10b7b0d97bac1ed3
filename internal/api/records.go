package api

import (
	"bookkeeping_system/internal/domain"     // Importing domain models
	"bookkeeping_system/internal/middleware" // Current user lookup
	"context"                                // Store calls
	"errors"                                 // Error matching
	"io"                                     // Empty body detection
	"net/http"                               // HTTP status codes
	"strconv"                                // String conversion
	"time"                                   // Timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// RecordRepository is a record store (expenses or gains) as seen by the handlers
type RecordRepository interface {
	Kind() domain.Kind
	Create(ctx context.Context, rec domain.Record) (domain.Record, error)
	List(ctx context.Context) ([]domain.Record, error)
	GetByID(ctx context.Context, id uint) (domain.Record, error)
	Update(ctx context.Context, id uint, patch domain.RecordPatch) (domain.Record, error)
	Delete(ctx context.Context, id uint) (bool, error)
	NextSlNo(ctx context.Context) (string, error)
}

// CreateRecordRequest is the body of POST /api/expenses and POST /api/gains
type CreateRecordRequest struct {
	SlNo        string   `json:"slNo" binding:"max=32"`          // Optional, allocated when empty
	Date        string   `json:"date" binding:"required"`        // YYYY-MM-DD
	Time        string   `json:"time" binding:"required"`        // Time of day
	Name        string   `json:"name" binding:"required"`        // Label
	Type        string   `json:"type" binding:"required"`        // Category
	Detail      string   `json:"detail"`                         // Notes
	PaymentType string   `json:"paymentType" binding:"required"` // Payment method
	Amount      *float64 `json:"amount" binding:"required"`      // Pointer so zero is accepted
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		errorJSON(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// ListRecordsHandler returns every record, newest date first
func ListRecordsHandler(records RecordRepository) gin.HandlerFunc {
	kind := records.Kind()
	return func(c *gin.Context) {
		list, err := records.List(c.Request.Context())
		if err != nil {
			internalError(c, err, "Failed to fetch "+kind.Name+"s", logrus.Fields{"kind": kind.Name})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// NextSlNoHandler previews the next display code
func NextSlNoHandler(records RecordRepository) gin.HandlerFunc {
	kind := records.Kind()
	return func(c *gin.Context) {
		next, err := records.NextSlNo(c.Request.Context())
		if err != nil {
			internalError(c, err, "Failed to generate next slNo", logrus.Fields{"kind": kind.Name})
			return
		}
		c.JSON(http.StatusOK, gin.H{"slNo": next})
	}
}

// GetRecordHandler returns one record
func GetRecordHandler(records RecordRepository) gin.HandlerFunc {
	kind := records.Kind()
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		rec, err := records.GetByID(c.Request.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, kind.Label+" not found")
			return
		} else if err != nil {
			internalError(c, err, "Failed to fetch "+kind.Name, logrus.Fields{"kind": kind.Name, "id": id})
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// CreateRecordHandler stores a record created by the caller
func CreateRecordHandler(records RecordRepository) gin.HandlerFunc {
	useJSONFieldNames()
	kind := records.Kind()
	return func(c *gin.Context) {
		user, exists := middleware.CurrentUser(c) // Get user from context
		if !exists {
			errorJSON(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		var req CreateRecordRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, validationMessage(err))
			return
		}
		rec, err := records.Create(c.Request.Context(), domain.Record{
			SlNo:        req.SlNo,
			Date:        req.Date,
			Time:        req.Time,
			Name:        req.Name,
			Type:        req.Type,
			Detail:      req.Detail,
			PaymentType: req.PaymentType,
			Amount:      *req.Amount,
			CreatedBy:   user.ID, // Creator always comes from the session
		})
		if errors.Is(err, domain.ErrConflict) {
			errorJSON(c, http.StatusBadRequest, "slNo already exists")
			return
		} else if err != nil {
			internalError(c, err, "Failed to create "+kind.Name, logrus.Fields{"kind": kind.Name, "user_id": user.ID})
			return
		}
		logrus.WithFields(logrus.Fields{
			"kind":      kind.Name,                       // Record kind
			"id":        rec.ID,                          // Record ID
			"sl_no":     rec.SlNo,                        // Display code
			"amount":    rec.Amount,                      // Amount
			"user_id":   user.ID,                         // Creator
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Record created")
		c.JSON(http.StatusCreated, rec)
	}
}

// UpdateRecordHandler applies a partial update; fields are type-checked only
func UpdateRecordHandler(records RecordRepository) gin.HandlerFunc {
	kind := records.Kind()
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var patch domain.RecordPatch
		if err := c.ShouldBindJSON(&patch); err != nil && !errors.Is(err, io.EOF) {
			errorJSON(c, http.StatusBadRequest, validationMessage(err))
			return
		}
		rec, err := records.Update(c.Request.Context(), id, patch)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			errorJSON(c, http.StatusNotFound, kind.Label+" not found")
			return
		case errors.Is(err, domain.ErrConflict):
			errorJSON(c, http.StatusBadRequest, "slNo already exists")
			return
		case err != nil:
			internalError(c, err, "Failed to update "+kind.Name, logrus.Fields{"kind": kind.Name, "id": id})
			return
		}
		logrus.WithFields(logrus.Fields{
			"kind":      kind.Name,                              // Record kind
			"id":        rec.ID,                                 // Record ID
			"fields":    len(patch.Columns()),                   // Number of changed fields
			"user_id":   c.GetUint(middleware.ContextUserIDKey), // Admin
			"timestamp": time.Now().Format(time.RFC3339),        // Current timestamp
		}).Info("Record updated")
		c.JSON(http.StatusOK, rec)
	}
}

// DeleteRecordHandler removes a record
func DeleteRecordHandler(records RecordRepository) gin.HandlerFunc {
	kind := records.Kind()
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		removed, err := records.Delete(c.Request.Context(), id)
		if err != nil {
			internalError(c, err, "Failed to delete "+kind.Name, logrus.Fields{"kind": kind.Name, "id": id})
			return
		}
		if !removed {
			errorJSON(c, http.StatusNotFound, kind.Label+" not found")
			return
		}
		logrus.WithFields(logrus.Fields{
			"kind":      kind.Name,                              // Record kind
			"id":        id,                                     // Record ID
			"user_id":   c.GetUint(middleware.ContextUserIDKey), // Admin
			"timestamp": time.Now().Format(time.RFC3339),        // Current timestamp
		}).Info("Record deleted")
		c.JSON(http.StatusOK, gin.H{"message": kind.Label + " deleted successfully"})
	}
}
