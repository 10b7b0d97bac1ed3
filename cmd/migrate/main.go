package main

import (
	"bookkeeping_system/internal/config"  // Custom import path (Config)
	"bookkeeping_system/internal/db"      // Custom import path (Database)
	"bookkeeping_system/internal/logging" // Custom import path (Logging)
	"bookkeeping_system/internal/store"   // Custom import path (Stores)
	"context"                             // Seed context
	"flag"                                // Command line flags

	"github.com/sirupsen/logrus" // Structured logging
)

// Main entry point for migration
func main() {
	seed := flag.Bool("seed", true, "create the default admin and staff accounts when absent")
	flag.Parse()

	cfg := config.LoadConfig() // Load configuration
	logging.Setup(cfg.LogLevel, cfg.LogFile)

	conn, err := db.Open(cfg) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	if *seed {
		if err := store.NewUserStore(conn).EnsureDefaults(context.Background(), store.DefaultAccounts); err != nil {
			logrus.Fatalf("seeding failed: %v", err)
		}
	}
}
