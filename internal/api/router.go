package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/claranceatgalvanize/embridge/docs"
	"github.com/claranceatgalvanize/embridge/internal/api/handler"
	"github.com/claranceatgalvanize/embridge/internal/api/middleware"
	"github.com/claranceatgalvanize/embridge/internal/auth/token"
	"github.com/claranceatgalvanize/embridge/internal/core/service"
	"github.com/claranceatgalvanize/embridge/internal/infrastructure/config"
	mongodb "github.com/claranceatgalvanize/embridge/internal/infrastructure/db/mongo"
	redisdb "github.com/claranceatgalvanize/embridge/internal/infrastructure/db/redis"
	"github.com/claranceatgalvanize/embridge/internal/infrastructure/jobs"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("embridge"))

	// --- Dependencies ---
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, issuer)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(issuer)

	jobSource := jobs.NewClient(cfg.Jobs.BaseURL, cfg.Jobs.Timeout)
	jobCache := redisdb.NewJobCache(rdb, cfg.Jobs.CacheTTL)
	jobService := service.NewJobService(jobSource, jobCache, log)
	jobHandler := handler.NewJobHandler(jobService)

	// --- Auth routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/profile", authHandler.Profile, authMiddleware)

	// --- Job board routes (read-only, public) ---
	e.GET("/api/jobs", jobHandler.List)
	e.GET("/api/jobs/:id", jobHandler.Get)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
