package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/bankcore/bank-client-api/docs"
	"github.com/bankcore/bank-client-api/internal/api/handler"
	"github.com/bankcore/bank-client-api/internal/core/service"
	"github.com/bankcore/bank-client-api/internal/infrastructure/config"
	gormdb "github.com/bankcore/bank-client-api/internal/infrastructure/db/gorm"
	"github.com/bankcore/bank-client-api/internal/infrastructure/upstream"
	"github.com/bankcore/bank-client-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		// The Angular dev frontend.
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("bankclient"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Dependencies ---
	log := logger.Get()

	clientRepo := gormdb.NewClientRepository(db)
	clientService := service.NewClientService(clientRepo, log)
	clientHandler := handler.NewClientHandler(clientService)

	directory := upstream.NewClient(cfg.External.BaseURL)
	externalService := service.NewExternalUserService(directory, log)
	externalHandler := handler.NewExternalUserHandler(externalService)

	// --- Client directory routes ---
	clients := e.Group("/api/clients")
	clients.GET("", clientHandler.List)
	clients.GET("/search", clientHandler.Search)
	clients.GET("/:id", clientHandler.Get)
	clients.POST("", clientHandler.Create)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	// --- External directory proxy routes ---
	external := e.Group("/api/external-users")
	external.GET("", externalHandler.List)
	external.GET("/:id", externalHandler.Get)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	if cfg.IsDevelopment() {
		e.GET("/swagger/*", echoswagger.WrapHandler)
	}

	return e
}
