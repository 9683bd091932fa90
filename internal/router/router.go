package router

import (
	"time"

	"github.com/hello-globe/backend/internal/geocoder"
	"github.com/hello-globe/backend/internal/handlers"
	"github.com/hello-globe/backend/internal/logger"
	"github.com/hello-globe/backend/internal/media"
	"github.com/hello-globe/backend/internal/middleware"
	"github.com/hello-globe/backend/internal/models"
	"github.com/hello-globe/backend/internal/repositories"
	"github.com/hello-globe/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logger.Info("Global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) error {
	// AutoMigrate models
	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Pin{},
		&models.Photo{},
		&models.Reaction{},
		&models.Friendship{},
	)
	if err != nil {
		return err
	}
	logger.Info("Auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Shared infrastructure ---
	geocodeClient := geocoder.NewClient(geocoder.Config{
		APIKey:  cfg.OpenCageAPIKey,
		BaseURL: cfg.GeocodeBaseURL,
		Timeout: 5 * time.Second,
	})
	mediaStore := media.NewLocalStore(cfg.MediaRoot, cfg.MediaBaseURL)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	pinRepo := repositories.NewPostgresPinRepository(db)
	photoRepo := repositories.NewPostgresPhotoRepository(db)
	reactionRepo := repositories.NewPostgresReactionRepository(db)
	friendshipRepo := repositories.NewPostgresFriendshipRepository(db)
	dashboardRepo := repositories.NewPostgresDashboardRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	logger.Info("Auth routes configured")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	// Pin, photo, and search routes
	pinHandler := handlers.NewPinHandler(pinRepo, photoRepo, reactionRepo, userRepo, geocodeClient, mediaStore)
	pinHandler.RegisterPinRoutes(api)
	logger.Info("Pin routes configured")

	// Reaction routes
	reactionHandler := handlers.NewReactionHandler(reactionRepo, pinRepo)
	reactionHandler.RegisterReactionRoutes(api)
	logger.Info("Reaction routes configured")

	// Friendship routes
	friendshipHandler := handlers.NewFriendshipHandler(friendshipRepo, userRepo)
	friendshipHandler.RegisterFriendshipRoutes(api)
	logger.Info("Friendship routes configured")

	// Profile routes
	userHandler := handlers.NewUserHandler(userRepo, mediaStore)
	userHandler.RegisterProfileRoutes(api)
	logger.Info("Profile routes configured")

	// Admin dashboard routes
	dashboardHandler := handlers.NewDashboardHandler(dashboardRepo, userRepo)
	dashboardHandler.RegisterDashboardRoutes(api)
	logger.Info("Dashboard routes configured")

	logger.Info("All routes configured")
	return nil
}
