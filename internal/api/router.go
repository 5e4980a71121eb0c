package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/api/handler"
	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/service"
	pgstore "github.com/taskboard/taskboard-api/internal/infrastructure/db/postgres"
	redisstore "github.com/taskboard/taskboard-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the settings the route wiring needs.
type RouterConfig struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	// --- Dependencies ---
	identityRepo := pgstore.NewIdentityRepository(db)
	profileRepo := pgstore.NewProfileRepository(db)
	roleRepo := pgstore.NewRoleRepository(db)
	taskRepo := pgstore.NewTaskRepository(db)
	sessions := redisstore.NewSessionStore(rdb)

	roleResolver := service.NewRoleResolver(roleRepo)
	authService := service.NewAuthService(
		identityRepo, profileRepo, roleResolver, sessions,
		cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log,
	)
	taskService := service.NewTaskService(taskRepo, log)
	adminService := service.NewAdminService(profileRepo, roleRepo, roleResolver, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	adminHandler := handler.NewAdminHandler(adminService)

	requireAuth := middleware.Auth(cfg.JWTSecret, sessions)
	optionalAuth := middleware.AuthOptional(cfg.JWTSecret, sessions)
	requireAdmin := middleware.RBAC(roleResolver, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/signout", authHandler.Signout, requireAuth)
	e.GET("/auth/session", authHandler.Session, optionalAuth)

	// --- Task routes (owner-scoped by the data layer) ---
	tasks := e.Group("/tasks", requireAuth)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Admin routes (role resolved from the database, not the token) ---
	e.GET("/profiles", adminHandler.ListProfiles, requireAuth, requireAdmin)
	e.GET("/user_roles", adminHandler.ListRoles, requireAuth, requireAdmin)
	e.PUT("/user_roles/:id", adminHandler.UpdateRole, requireAuth, requireAdmin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
