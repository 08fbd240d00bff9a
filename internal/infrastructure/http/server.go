package http

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/seampay/checkout-demo/internal/adapter/handler/http"
	"github.com/seampay/checkout-demo/internal/config"
	"github.com/seampay/checkout-demo/internal/domain/provider"
	"github.com/seampay/checkout-demo/internal/middleware/csp"
)

type Server struct {
	config  *config.Config
	logger  *zap.Logger
	echo    *echo.Echo
	gateway provider.OrderGateway
}

func NewServer(cfg *config.Config, logger *zap.Logger, gateway provider.OrderGateway) (*Server, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewTemplateRenderer(filepath.Join(cfg.Service.WebRoot, "templates", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	e.Renderer = renderer

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(csp.Middleware())

	return &Server{
		config:  cfg,
		logger:  logger,
		echo:    e,
		gateway: gateway,
	}, nil
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(s.logger, s.gateway)
	pageHandler := handlers.NewPageHandler(s.logger, s.config.Service.PayPal.ClientID, s.config.Service.WebRoot)

	// Pages
	s.echo.GET("/", pageHandler.Root)
	s.echo.GET("/checkout", pageHandler.Checkout)
	s.echo.GET("/.well-known/apple-developer-merchantid-domain-association", pageHandler.DomainAssociation)
	s.echo.Static("/static", filepath.Join(s.config.Service.WebRoot, "static"))

	// Order lifecycle API
	api := s.echo.Group("/api")
	api.POST("/checkout-orders", orderHandler.CreateCheckoutOrder)
	api.POST("/orders/:orderID/capture", orderHandler.CapturePayment)
	api.POST("/orders/:orderID/authorize", orderHandler.AuthorizePayment)
}
