package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/chunk-bench/internal/apperr"
	pkgmiddleware "github.com/DjordjeVuckovic/chunk-bench/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/chunk-bench/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/net/http2"
)

const healthCheckTimeout = 3 * time.Second

// Server wraps an echo instance with a lifecycle bound to SIGINT/SIGTERM.
// The Setup* methods return the server so they can be chained.
type Server struct {
	Echo       *echo.Echo
	cfg        *Config
	health     pkgserver.HealthChecker
	healthPath string
	ctx        context.Context
	cancel     context.CancelFunc
	stopped    chan struct{}
}

func New(cfg *Config, health pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo:    e,
		cfg:     cfg,
		health:  health,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(pkgmiddleware.Logger(pkgmiddleware.WithSkipper(func(c echo.Context) bool {
		return c.Path() == s.healthPath
	})))
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.healthPath = path
	s.Echo.GET(path, func(c echo.Context) error {
		if s.health == nil || !pkgserver.WithTimeout(s.health, healthCheckTimeout).Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// Context is cancelled once a shutdown signal arrives.
func (s *Server) Context() context.Context {
	return s.ctx
}

func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

// Stopped is closed after Start has finished draining connections.
func (s *Server) Stopped() <-chan struct{} {
	return s.stopped
}

// Start serves until the server context is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) Start() error {
	defer close(s.stopped)
	defer s.cancel()

	addr := ":" + s.cfg.Port
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr, "http2", s.cfg.UseHttp2)
		var err error
		if s.cfg.UseHttp2 {
			err = s.Echo.StartH2CServer(addr, &http2.Server{})
		} else {
			err = s.Echo.Start(addr)
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-s.ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	slog.Info("Shutting down server", "timeout", s.cfg.ShutdownTimeout)
	if err := s.Echo.Shutdown(ctx); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}

// Stop triggers the same shutdown path as a signal.
func (s *Server) Stop() {
	s.cancel()
}
