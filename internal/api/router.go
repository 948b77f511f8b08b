package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/user-registry/docs"
	"github.com/99minutos/user-registry/internal/api/handler"
	"github.com/99minutos/user-registry/internal/api/middleware"
	"github.com/99minutos/user-registry/internal/core/domain"
	"github.com/99minutos/user-registry/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Users ports.UserService
	// Checks are run by the readiness probe, keyed by dependency name.
	Checks map[string]func(context.Context) error
	// JWTSecret enables bearer-token auth on /v1 when non-empty.
	JWTSecret string
	Logger    zerolog.Logger
	// Registerer receives the HTTP request metrics. Defaults to the
	// Prometheus default registerer.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: registerer,
	}))

	// --- Health probes and tooling (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Checks).Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- User routes ---
	users := handler.NewUserHandler(deps.Users)
	v1 := e.Group("/v1")

	var member, admin []echo.MiddlewareFunc
	if deps.JWTSecret != "" {
		v1.Use(middleware.Auth(deps.JWTSecret))
		member = append(member, middleware.RBAC(domain.RoleAdmin, domain.RoleClient))
		admin = append(admin, middleware.RBAC(domain.RoleAdmin))
	} else {
		deps.Logger.Warn().Msg("JWT_SECRET not set, /v1 routes are unauthenticated")
	}

	v1.POST("/users", users.Create, member...)
	v1.GET("/users/count", users.Count, member...)
	v1.GET("/users/:id", users.Get, member...)
	v1.DELETE("/users/:id", users.Delete, admin...)

	return e
}
