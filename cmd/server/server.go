package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lwaller/taskapi/internal/config"
)

const shutdownTimeout = 10 * time.Second

// runServer starts the HTTP server and blocks until a shutdown signal or a
// fatal server error, then drains in-flight requests.
func runServer(ctx context.Context, cfg *config.Config, handler http.Handler, logg *slog.Logger) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler,
	}

	serverCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logg.Info("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Error("server failed", "error", err)
			cancel()
		}
	}()

	select {
	case <-shutdownCh:
		logg.Info("shutdown signal received")
	case <-serverCtx.Done():
		logg.Info("server context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logg.Info("server shutdown completed")
	return nil
}
