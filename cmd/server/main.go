package main

import (
	"bookkeeping_system/internal/api"     // Custom package for API handlers
	"bookkeeping_system/internal/auth"    // Custom package for the auth gate
	"bookkeeping_system/internal/config"  // Custom package for configuration
	"bookkeeping_system/internal/db"      // Custom package for database access
	"bookkeeping_system/internal/domain"  // Custom package for domain models
	"bookkeeping_system/internal/logging" // Custom package for logger setup
	"bookkeeping_system/internal/session" // Custom package for session storage
	"bookkeeping_system/internal/store"   // Custom package for record stores
	"context"                             // context package is needed for Redis operations
	"time"                                // CORS max age

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logging.Setup(cfg.LogLevel, cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database
	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	sqlDB, err := conn.DB()
	if err != nil {
		logrus.Fatalf("failed to get DB handle: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Seed the default accounts
	users := store.NewUserStore(conn)
	if err := users.EnsureDefaults(context.Background(), store.DefaultAccounts); err != nil {
		logrus.Fatalf("failed to seed default accounts: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)
	api.RegisterRoutes(r, api.Deps{
		Gate: auth.NewService(users, sessions, cfg.SessionSecret, cfg.SessionTTL),
		Cookie: api.CookieSettings{
			Name:   cfg.SessionCookie, // Cookie name
			TTL:    cfg.SessionTTL,    // Fixed max-age
			Secure: cfg.SessionSecure, // Secure flag
		},
		Users:    users,
		Expenses: store.NewRecordStore(conn, domain.KindExpense),
		Gains:    store.NewRecordStore(conn, domain.KindGain),
		Health: map[string]api.Pinger{
			"database": sqlDB,
			"redis":    api.PingFunc(func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }),
		},
	})

	logrus.WithField("driver", cfg.DBDriver).Info("Server running on " + cfg.AppPort) // Log server start
	// Start the server on port cfg.AppPort
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

// corsConfig allows credentialed requests from the configured origins, or any origin when none are set
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Session cookies cross origins
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowOriginFunc = func(string) bool { return true } // Reflects the caller's origin
	} else {
		c.AllowOrigins = origins
	}
	return c
}
