package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nimbusid/identity-api/docs"
	"github.com/nimbusid/identity-api/internal/api/handler"
	"github.com/nimbusid/identity-api/internal/api/middleware"
	"github.com/nimbusid/identity-api/internal/core/domain"
	"github.com/nimbusid/identity-api/internal/core/service"
	"github.com/nimbusid/identity-api/internal/infrastructure/config"
	mongodb "github.com/nimbusid/identity-api/internal/infrastructure/db/mongo"
	redisdb "github.com/nimbusid/identity-api/internal/infrastructure/db/redis"
	"github.com/nimbusid/identity-api/internal/infrastructure/http/handlers"
	"github.com/nimbusid/identity-api/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. The audit dispatcher is returned so the caller can start
// its workers with a process-lifetime context.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	revoked := redisdb.NewRevocationSet(rdb)

	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)

	authService := service.NewAuthService(userRepo, hasher, tokens, dispatcher, log)
	userService := service.NewUserService(userRepo, hasher, revoked, dispatcher, tokens.TTL(), log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, auditService)

	gate := middleware.Auth(tokens, authService, revoked)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/revalidate", authHandler.Revalidate, gate)

	// --- User administration ---
	users := e.Group("/users", gate)
	users.PUT("/me", userHandler.UpdateMe)
	users.GET("", userHandler.List, adminOnly)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.POST("/:id/block", userHandler.Block, adminOnly)
	users.POST("/:id/unblock", userHandler.Unblock, adminOnly)
	users.GET("/:id/audit", userHandler.AuditTrail, adminOnly)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
