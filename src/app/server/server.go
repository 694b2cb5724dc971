// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant/src/app/http/handler"
	"restaurant/src/app/middleware"
	"restaurant/src/core/ports"
	"restaurant/src/core/usecase"
	"restaurant/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler      *handler.HealthHandler
	menuHandler        *handler.MenuHandler
	staffHandler       *handler.StaffHandler
	tableHandler       *handler.TableHandler
	orderHandler       *handler.OrderHandler
	reservationHandler *handler.ReservationHandler
	waiterCallHandler  *handler.WaiterCallHandler
	authHandler        *handler.AuthHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.RestaurantRepository) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(repo, log)
	menuService := usecase.NewMenuService(repo, log)
	staffService := usecase.NewStaffService(repo, log)
	tableService := usecase.NewTableService(repo, log)
	orderService := usecase.NewOrderService(repo, log)
	reservationService := usecase.NewReservationService(repo, log)
	waiterCallService := usecase.NewWaiterCallService(repo, log)
	authService := usecase.NewAuthService(repo, log, cfg.Admin.Username, cfg.Admin.Password)

	s := &Server{
		cfg:                cfg,
		log:                log,
		router:             router,
		healthHandler:      handler.NewHealthHandler(healthService),
		menuHandler:        handler.NewMenuHandler(menuService, log),
		staffHandler:       handler.NewStaffHandler(staffService, log),
		tableHandler:       handler.NewTableHandler(tableService, log),
		orderHandler:       handler.NewOrderHandler(orderService, log),
		reservationHandler: handler.NewReservationHandler(reservationService, log),
		waiterCallHandler:  handler.NewWaiterCallHandler(waiterCallService, log),
		authHandler:        handler.NewAuthHandler(authService, log),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	api := s.router.Group("/api")
	{
		api.GET("/menu", s.menuHandler.List)
		api.POST("/menu", s.menuHandler.Create)

		api.GET("/staff", s.staffHandler.List)
		api.POST("/staff", s.staffHandler.Create)

		api.GET("/tables", s.tableHandler.List)
		api.POST("/tables", s.tableHandler.Create)

		api.GET("/orders", s.orderHandler.List)
		api.POST("/orders", s.orderHandler.Create)
		api.PATCH("/orders/:id/status", s.orderHandler.UpdateStatus)

		api.GET("/reservations", s.reservationHandler.List)
		api.POST("/reservations", s.reservationHandler.Create)
		api.PATCH("/reservations/:id/status", s.reservationHandler.UpdateStatus)

		api.GET("/waiter-calls", s.waiterCallHandler.List)
		api.POST("/waiter-calls", s.waiterCallHandler.Create)
		api.PATCH("/waiter-calls/:id/status", s.waiterCallHandler.UpdateStatus)

		api.POST("/auth/login", s.authHandler.Login)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}

