package db

import (
	"bookkeeping_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate creates or updates the users, expenses and gains tables
func Migrate(conn *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := conn.AutoMigrate(&domain.User{}, &domain.Expense{}, &domain.Gain{}); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
