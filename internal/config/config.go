package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing
	"time"    // For session lifetime

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort       string        // Application port
	DBDriver      string        // Database driver: mysql, postgres or sqlite
	DBUser        string        // Database user
	DBPassword    string        // Database password
	DBHost        string        // Database host
	DBPort        string        // Database port
	DBName        string        // Database name
	DBSSLMode     string        // Postgres sslmode
	SQLitePath    string        // SQLite file path
	RedisAddr     string        // Redis server address
	RedisPass     string        // Redis password
	RedisDB       int           // Redis database number
	SessionSecret string        // Key used to sign session cookies
	SessionCookie string        // Session cookie name
	SessionTTL    time.Duration // Fixed session lifetime
	SessionSecure bool          // Set the Secure flag on the session cookie
	CORSOrigins   []string      // Allowed CORS origins, empty allows all
	LogLevel      string        // Logrus level name
	LogFile       string        // Optional rotating log file
	IsProd        bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttlHours, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24 // Sessions last one day unless configured
	}
	return &Config{
		AppPort:       getEnv("APP_PORT", "5000"),                       // Application port
		DBDriver:      getEnv("DB_DRIVER", DriverMySQL),                 // Database driver
		DBUser:        os.Getenv("DB_USER"),                             // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                         // Database password
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),                   // Database host
		DBPort:        os.Getenv("DB_PORT"),                             // Database port
		DBName:        os.Getenv("DB_NAME"),                             // Database name
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),                  // Postgres sslmode
		SQLitePath:    getEnv("SQLITE_PATH", "bookkeeping.db"),          // SQLite file path
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),           // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                          // Redis password
		RedisDB:       redisDB,                                          // Redis database number
		SessionSecret: os.Getenv("SESSION_SECRET"),                      // Session signing key
		SessionCookie: getEnv("SESSION_COOKIE_NAME", "bookkeeping.sid"), // Session cookie name
		SessionTTL:    time.Duration(ttlHours) * time.Hour,              // Session lifetime
		SessionSecure: os.Getenv("SESSION_SECURE") == "true",            // Secure cookie flag
		CORSOrigins:   splitList(os.Getenv("CORS_ORIGINS")),             // Allowed origins
		LogLevel:      getEnv("LOG_LEVEL", "info"),                      // Log level
		LogFile:       os.Getenv("LOG_FILE"),                            // Log file
		IsProd:        os.Getenv("IS_PROD") == "true",                   // Is production environment
	}
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, port, c.DBSSLMode)
	case DriverSQLite:
		return c.SQLitePath
	default:
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true"
	}
}

// Validate reports configuration that would make the server unusable
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set")
	}
	return nil
}

// getEnv returns the variable or a fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma separated list, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
