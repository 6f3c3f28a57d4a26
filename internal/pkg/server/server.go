package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rekberid/rekber/internal/pkg/logger"
)

// defaultShutdownTimeout bounds how long in-flight settlement requests may
// run after a stop signal before the listener is forced closed.
const defaultShutdownTimeout = 30 * time.Second

// GracefulServer runs the Echo listener and drains it on SIGINT/SIGTERM so
// conditional writes in flight are not cut mid-transition.
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a server with graceful shutdown handling
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		port:            port,
		shutdownTimeout: defaultShutdownTimeout,
	}
}

// Start serves until a stop signal arrives, then drains the listener.
// SIGTERM is what the orchestrator sends, SIGINT covers a local run.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown stops accepting new requests and waits for in-flight ones, up to
// the shutdown timeout
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Draining HTTP server", logger.Duration("timeout", s.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager closes the service's backing components in a fixed order:
// consumers and tickers first, then caches, then the database, so nothing
// writes into a connection that is already gone.
type ShutdownManager struct {
	logger    *logger.ZapLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates an empty shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{
		logger:    zapLogger,
		functions: make([]func(context.Context) error, 0),
	}
}

// Register appends a cleanup function; registration order is execution order
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown runs every registered cleanup function. A failing component is
// logged and skipped; the remaining components still get their turn.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Closing components", logger.Int("components", len(sm.functions)))

	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			sm.logger.Error("Component close failed",
				logger.Int("component", i),
				logger.Err(err))
		}
	}

	sm.logger.Info("All components closed")
	return nil
}
