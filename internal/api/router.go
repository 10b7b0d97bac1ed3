package api

import (
	"bookkeeping_system/internal/auth"       // Auth gate
	"bookkeeping_system/internal/middleware" // Auth middleware

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps is everything the HTTP surface needs
type Deps struct {
	Gate     *auth.Service     // Session authentication
	Cookie   CookieSettings    // Session cookie settings
	Users    UserRepository    // Users table
	Expenses RecordRepository  // Expenses table
	Gains    RecordRepository  // Gains table
	Health   map[string]Pinger // Dependencies probed by /healthz
}

// RegisterRoutes mounts the /api surface and /healthz on r
func RegisterRoutes(r gin.IRouter, deps Deps) {
	r.GET("/healthz", HealthHandler(deps.Health)) // Liveness probe

	api := r.Group("/api")
	api.POST("/login", LoginHandler(deps.Gate, deps.Cookie))   // Login endpoint
	api.POST("/logout", LogoutHandler(deps.Gate, deps.Cookie)) // Logout endpoint

	// Everything below requires a live session
	authed := api.Group("")
	authed.Use(middleware.SessionAuthMiddleware(deps.Gate, deps.Cookie.Name))
	authed.GET("/users/me", MeHandler()) // Current user endpoint

	// Admin only user management
	admin := authed.Group("")
	admin.Use(middleware.AdminOnlyMiddleware())
	admin.POST("/users", CreateUserHandler(deps.Users)) // Create user endpoint
	admin.GET("/users", ListUsersHandler(deps.Users))   // List users endpoint

	registerRecordRoutes(authed, "/expenses", deps.Expenses)
	registerRecordRoutes(authed, "/gains", deps.Gains)
}

// registerRecordRoutes mounts the CRUD routes of one record kind
func registerRecordRoutes(authed *gin.RouterGroup, path string, records RecordRepository) {
	adminOnly := middleware.AdminOnlyMiddleware()
	g := authed.Group(path)
	g.GET("", ListRecordsHandler(records))                    // List endpoint
	g.GET("/next-slno", NextSlNoHandler(records))             // Next display code endpoint
	g.GET("/:id", GetRecordHandler(records))                  // Single record endpoint
	g.POST("", CreateRecordHandler(records))                  // Create endpoint
	g.PUT("/:id", adminOnly, UpdateRecordHandler(records))    // Update endpoint, admin only
	g.DELETE("/:id", adminOnly, DeleteRecordHandler(records)) // Delete endpoint, admin only
}
