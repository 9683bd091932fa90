package main

import (
	"github.com/hello-globe/backend/internal/logger"
	"github.com/hello-globe/backend/internal/router"
	"github.com/hello-globe/backend/pkg/config"
	"github.com/hello-globe/backend/pkg/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logging
	logger.Init(&logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.Format(cfg.LogFormat),
		Component: "server",
	})

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return
	}
	defer db.CloseDB() // Ensure the database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, cfg); err != nil {
		logger.Error("Failed to set up routes", "error", err)
		return
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
