package main

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

	"github.com/joho/godotenv"
	"github.com/mediatrack/mediatrack-go/internal/config"
	"github.com/mediatrack/mediatrack-go/internal/logging"
	"github.com/mediatrack/mediatrack-go/internal/repository"
	"github.com/mediatrack/mediatrack-go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(log)

	if envErr != nil {
		log.Warn("no .env file found, using environment variables")
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := repository.NewDB(startCtx, cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		cancelStart()
		return fmt.Errorf("database unavailable: %w", err)
	}
	defer db.Close()

	err = repository.EnsureSchema(startCtx, db, cfg.DBDriver)
	cancelStart()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(cfg, db, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DBDriver)
	if err := serve(ctx, srv, log); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully. A
// listener failure is returned to the caller.
func serve(ctx context.Context, srv *http.Server, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}
	return nil
}
