package api

import (
	"context"  // Ping deadlines
	"net/http" // HTTP status codes
	"time"     // Timeouts

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// Pinger is anything whose liveness can be probed
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

// PingContext calls f
func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

// HealthHandler reports whether every dependency answers a ping
func HealthHandler(deps map[string]Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		checks := gin.H{}
		healthy := true
		for name, p := range deps {
			if err := p.PingContext(ctx); err != nil {
				logrus.WithFields(logrus.Fields{"dependency": name, "error": err.Error()}).Warn("Health check failed")
				checks[name] = "down"
				healthy = false
				continue
			}
			checks[name] = "up"
		}
		if !healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": checks})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": checks})
	}
}
