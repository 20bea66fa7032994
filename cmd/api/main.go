package main

import (
	"context"
	"log"

	"github.com/clubdesk/clubdesk-api/internal/application/service"
	"github.com/clubdesk/clubdesk-api/internal/config"
	"github.com/clubdesk/clubdesk-api/internal/infrastructure/cache"
	"github.com/clubdesk/clubdesk-api/internal/infrastructure/database"
	"github.com/clubdesk/clubdesk-api/internal/infrastructure/repository"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/handler"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/routes"
	"github.com/clubdesk/clubdesk-api/pkg/oauth"
	"github.com/clubdesk/clubdesk-api/pkg/token"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := token.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize report cache; fall back to a no-op cache when redis is not
	// configured or unreachable
	var reportCache cache.ReportCache = cache.NewNoop()
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(context.Background(), &cfg.Redis)
		if err != nil {
			log.Printf("Warning: redis unavailable, report caching disabled: %v", err)
		} else {
			reportCache = redisCache
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	castRepo := repository.NewCastRepository(db)
	castPerfRepo := repository.NewCastPerformanceRepository(db)
	storePerfRepo := repository.NewStorePerformanceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleService := oauth.NewGoogleService(oauth.GoogleConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
		FrontendURL:  cfg.OAuth.FrontendURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleService)
	castService := service.NewCastService(castRepo)
	storeService := service.NewStoreService(storeRepo)
	dailyReportService := service.NewDailyReportService(castRepo, castPerfRepo, reportCache)
	storeReportService := service.NewStoreReportService(castPerfRepo, storePerfRepo, reportCache, cfg.Redis.ReportTTL)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Cast:        handler.NewCastHandler(castService),
		DailyReport: handler.NewDailyReportHandler(dailyReportService),
		StoreReport: handler.NewStoreReportHandler(storeReportService),
		Store:       handler.NewStoreHandler(storeService),
		User:        handler.NewUserHandler(authService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
