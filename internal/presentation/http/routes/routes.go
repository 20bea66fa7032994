package routes

import (
	"time"

	"github.com/clubdesk/clubdesk-api/internal/config"
	domainRepo "github.com/clubdesk/clubdesk-api/internal/domain/repository"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/handler"
	"github.com/clubdesk/clubdesk-api/internal/presentation/http/middleware"
	"github.com/clubdesk/clubdesk-api/pkg/token"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Cast        *handler.CastHandler
	DailyReport *handler.DailyReportHandler
	StoreReport *handler.StoreReportHandler
	Store       *handler.StoreHandler
	User        *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *token.Manager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())
		protected.Use(middleware.StoreScope())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotency := middleware.IdempotencyRequired(deps.IdempotencyRepo)

	// Auth/Profile
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Stores and users
	protected.GET("/stores/:id", h.Store.Get)
	protected.PUT("/stores/:id", h.Store.Update)
	protected.GET("/users/:id", h.User.Get)

	// Cast registry
	casts := protected.Group("/casts")
	{
		casts.POST("", h.Cast.Create)
		casts.GET("", h.Cast.List)
		casts.GET("/:id", h.Cast.Get)
		casts.PUT("/:id", h.Cast.Update)
		casts.DELETE("/:id", h.Cast.Delete)
	}

	// Daily report (per-cast attendance and commissions)
	protected.GET("/daily-report", h.DailyReport.Get)
	protected.POST("/daily-report", idempotency, h.DailyReport.Save)
	protected.DELETE("/daily-report", h.DailyReport.RemoveCast)

	// Store report (daily cash flow and monthly roll-up)
	protected.GET("/store-report/daily", h.StoreReport.GetDaily)
	protected.POST("/store-report/daily", idempotency, h.StoreReport.SaveDaily)
	protected.GET("/store-report/monthly", h.StoreReport.GetMonthly)
}
