package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/companyhub/directory-api/internal/api/handler"
	"github.com/companyhub/directory-api/internal/api/middleware"
	"github.com/companyhub/directory-api/internal/core/ports"
)

const bodyLimit = "1M"

// Deps holds everything the router wires into handlers.
type Deps struct {
	Auth      ports.AuthService
	Gate      ports.Authenticator
	Users     ports.UserService
	Companies ports.CompanyService
	Catalog   ports.CatalogService
	DB        handler.Pinger
	Logger    zerolog.Logger

	// RequestTimeout bounds each request's context. Zero disables it.
	RequestTimeout time.Duration

	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// Prometheus default registry, which also holds the domain counters.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig(deps.Registry)))
	if deps.RequestTimeout > 0 {
		e.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
			Timeout: deps.RequestTimeout,
		}))
	}

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	companyHandler := handler.NewCompanyHandler(deps.Companies)
	serviceHandler := handler.NewServiceHandler(deps.Catalog)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Logger)

	authenticated := middleware.Auth(deps.Gate)
	adminOnly := middleware.AdminOnly(deps.Gate)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/signout", authHandler.SignOut)
	auth.GET("/profile", authHandler.Profile, authenticated)

	// --- Users (admin only) ---
	users := e.Group("/users", adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Companies ---
	companies := e.Group("/companies")
	companies.GET("", companyHandler.List)
	companies.POST("", companyHandler.Create, adminOnly)
	companies.GET("/:id", companyHandler.Get)
	companies.PATCH("/:id", companyHandler.Update, adminOnly)
	companies.DELETE("/:id", companyHandler.Delete, adminOnly)
	companies.GET("/:id/services", companyHandler.Services)

	// --- Services ---
	services := e.Group("/services")
	services.GET("", serviceHandler.List)
	services.POST("", serviceHandler.Create, adminOnly)
	services.GET("/:id", serviceHandler.Get)
	services.PATCH("/:id", serviceHandler.Update, adminOnly)
	services.DELETE("/:id", serviceHandler.Delete, adminOnly)
	services.GET("/:id/company", serviceHandler.Company)

	// --- Operational ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – is postgres reachable?
	e.GET("/metrics", metricsHandler(deps.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= http.StatusInternalServerError {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func metricsConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: "directory"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
