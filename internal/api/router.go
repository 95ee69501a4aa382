package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bizlink/portal-api/internal/api/handler"
	"github.com/bizlink/portal-api/internal/api/middleware"
	"github.com/bizlink/portal-api/internal/core/domain"
	"github.com/bizlink/portal-api/internal/core/ports"
)

// Deps carries the wired collaborators the router needs. Mongo and Redis
// are nil when the in-memory backends are configured.
type Deps struct {
	Identity ports.IdentityService
	Sessions ports.SessionStore
	Mongo    *mongo.Database
	Redis    *redis.Client
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// Request metrics get a per-router registry so building a second
	// router (tests) does not trip duplicate registration; domain
	// metrics live in the default registry and are gathered alongside.
	promRegistry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "portal",
		Registerer: promRegistry,
	}))

	// --- Identity provider ---
	authHandler := handler.NewAuthHandler(deps.Identity)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/simulate", authHandler.Simulate)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/users", authHandler.ListUsers)
	e.GET("/auth/session", authHandler.CurrentSession)

	// --- Shell navigation and public landing ---
	e.GET("/navigation", handler.NewNavigationHandler().Resolve)
	e.GET(middleware.LoginPath, handler.Login)

	// --- Guarded role screens ---
	// Each group admits exactly its own role; everything else is
	// redirected by the guard before any handler runs.
	for _, role := range []domain.Role{domain.RoleCompany, domain.RoleBusiness, domain.RoleProfessional} {
		g := e.Group("/"+string(role), middleware.Guard(deps.Sessions, role))
		g.GET("/:page", handler.NewPageHandler(role).Render)
	}

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{promRegistry, prometheus.DefaultGatherer},
	}))
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Mongo, deps.Redis).Readiness)

	return e
}
