package db

import (
	"bookkeeping_system/internal/config" // Configuration
	"fmt"                                // Error wrapping

	"github.com/glebarez/sqlite" // Pure Go SQLite driver for GORM
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/driver/postgres"    // Postgres driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger levels
)

// Dialector picks the GORM dialector for the configured driver
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil // MySQL
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil // Postgres
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil // SQLite
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// Open connects to the configured database
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	return OpenDialector(dialector, cfg.IsProd)
}

// OpenDialector opens a connection with the settings every store relies on.
// TranslateError turns unique violations into gorm.ErrDuplicatedKey.
func OpenDialector(dialector gorm.Dialector, quiet bool) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	if quiet {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent) // Keep SQL out of production logs
	}
	conn, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return conn, nil
}
