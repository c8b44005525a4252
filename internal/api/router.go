package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/userhub/user-management/internal/api/cookie"
	"github.com/userhub/user-management/internal/api/handler"
	"github.com/userhub/user-management/internal/api/middleware"
	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
	"github.com/userhub/user-management/internal/core/validation"

	_ "github.com/userhub/user-management/docs"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Users     ports.DirectoryService
	Sessions  ports.SessionService
	Validator *validation.Validator
	Health    map[string]handler.DependencyCheck
	Log       zerolog.Logger

	Cookies      cookie.Options
	ClientOrigin string
	// AdminRefresh enables the refresh-cookie fallback on admin routes.
	AdminRefresh bool

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// Session scopes.
var (
	UserScope  = ports.SessionScope{Name: "user", Role: domain.RoleUser, AllowRefresh: true}
	AdminScope = ports.SessionScope{Name: "admin", Role: domain.RoleAdmin}
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator(deps.Validator)
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware, in order ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{deps.ClientOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "usermgmt",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Users, deps.Sessions, deps.Cookies)
	userHandler := handler.NewUserHandler(deps.Users)
	adminHandler := handler.NewAdminHandler(deps.Users)
	healthHandler := handler.NewHealthHandler(deps.Health)

	adminScope := AdminScope
	adminScope.AllowRefresh = deps.AdminRefresh

	userSession := middleware.Session(deps.Sessions, middleware.SessionConfig{
		Scope: UserScope, Names: cookie.User, Cookies: deps.Cookies,
	}, deps.Log)
	adminSession := middleware.Session(deps.Sessions, middleware.SessionConfig{
		Scope: adminScope, Names: cookie.Admin, Cookies: deps.Cookies,
	}, deps.Log)

	// --- User routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/home", userHandler.Profile, userSession)
	e.PUT("/update-profile", userHandler.UpdateProfile, userSession)
	e.POST("/logout", authHandler.Logout, userSession)

	// --- Admin routes ---
	e.POST("/admin/login", authHandler.AdminLogin)

	admin := e.Group("/admin", adminSession)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.POST("/create", adminHandler.Create)
	admin.PATCH("/edit", adminHandler.Edit)
	admin.DELETE("/delete", adminHandler.Delete)
	admin.POST("/logout", authHandler.AdminLogout)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
