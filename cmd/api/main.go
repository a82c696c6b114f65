// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	app "rentpay/internal"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create and initialize the application
	application := app.NewApplication()
	if err := application.Initialize(ctx); err != nil {
		application.Logger.Error("Failed to initialize application", "error", err)
		_ = application.Shutdown(context.Background())
		return err
	}
	logStartup(application)

	server := &http.Server{
		Addr:         ":" + application.Config.ServerPort,
		Handler:      application.HTTPHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		application.Logger.Info("Starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			application.Logger.Error("HTTP server failed", "error", err)
			_ = application.Shutdown(context.Background())
			return err
		}
	case <-ctx.Done():
		application.Logger.Info("Shutdown signal received, draining HTTP server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error("HTTP server shutdown failed", "error", err)
	}
	// Close the pool even when draining timed out.
	if err := application.Shutdown(shutdownCtx); err != nil {
		return err
	}

	application.Logger.Info("rentpay stopped.")
	return nil
}

// logStartup records the effective settings and the mounted routes. The JWT secret and the
// database credentials are never logged.
func logStartup(application *app.Application) {
	cfg := application.Config
	application.Logger.Info("rentpay configured",
		slog.String("port", cfg.ServerPort),
		slog.String("log_level", cfg.LogLevel),
		slog.Bool("auto_migrate", cfg.AutoMigrate),
		slog.Bool("database_url", cfg.DB.URL != ""),
		slog.Duration("token_ttl", cfg.Auth.TokenTTL),
		slog.Int("bcrypt_cost", cfg.Auth.BcryptCost),
	)

	routes, ok := application.HTTPHandler.(chi.Routes)
	if !ok {
		return
	}
	err := chi.Walk(routes, func(method, route string, _ http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		application.Logger.Debug("Route mounted", "method", method, "route", route, "middlewares", len(middlewares))
		return nil
	})
	if err != nil {
		application.Logger.Warn("Failed to list routes", "error", err)
	}
}
