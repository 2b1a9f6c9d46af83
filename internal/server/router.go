package server

import (
	"fmt"
	"net/http"

	"cryptofolio/internal/config"
	"cryptofolio/internal/handlers"
	"cryptofolio/internal/middleware"
	"cryptofolio/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// multipart framing allowance on top of the largest accepted upload
const bodyLimitSlackKB = 64

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Config         *config.Config
	DB             *gorm.DB
	Identity       services.IdentityServiceInterface
	Connections    services.ConnectionServiceInterface
	Reconciliation services.ReconciliationServiceInterface
	Portfolio      services.PortfolioServiceInterface
	Export         services.ExportServiceInterface
	RateLimiter    *middleware.RateLimiter
	MetricsHandler http.Handler
}

// NewRouter builds the echo instance with middleware and every route registered.
func NewRouter(deps *Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	cfg := deps.Config

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders:    []string{middleware.TraceIDHeader, echo.HeaderContentDisposition},
		AllowCredentials: !containsWildcard(cfg.Server.CORSAllowOrigins),
	}))
	e.Use(echomw.BodyLimit(fmt.Sprintf("%dK", cfg.Security.MaxUploadBytes/1024+bodyLimitSlackKB)))

	healthHandler := handlers.NewHealthCheckHandler(deps.DB)
	e.GET("/health", healthHandler.HealthCheck)

	metricsHandler := deps.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	e.GET("/metrics", echo.WrapHandler(metricsHandler))

	api := e.Group("/api/v1")
	api.Use(middleware.RequireAuth(deps.Identity))
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}

	connectionHandler := handlers.NewConnectionHandler(deps.Connections, cfg.Security.MaxUploadBytes, cfg.IsProduction())
	connections := api.Group("/connections")
	connections.GET("", connectionHandler.GetStatus)
	connections.GET("/coinbase/authorize", connectionHandler.AuthorizeCoinbase)
	connections.GET("/coinbase/callback", connectionHandler.CoinbaseCallback)
	connections.POST("/gemini", connectionHandler.ConnectGemini)
	connections.POST("/ledger", connectionHandler.UploadLedger)
	connections.DELETE("/:provider", connectionHandler.Unlink)

	syncHandler := handlers.NewSyncHandler(deps.Reconciliation)
	api.POST("/sync", syncHandler.SyncAll)
	api.POST("/sync/:provider", syncHandler.SyncProvider)

	portfolioHandler := handlers.NewPortfolioHandler(deps.Portfolio, deps.Export, deps.Connections)
	api.GET("/balances", portfolioHandler.GetBalances)
	api.GET("/portfolio", portfolioHandler.GetPortfolio)
	api.POST("/prices", portfolioHandler.GetPrices)
	api.GET("/export", portfolioHandler.Export)
	api.DELETE("/account", portfolioHandler.DeleteAccount)

	return e
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
