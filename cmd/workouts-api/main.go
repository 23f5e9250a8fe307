package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/api"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/bootstrap"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/infrastructure/sentry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := bootstrap.LoadConfig()

	svc, err := bootstrap.NewService(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()
	defer sentry.Flush(2 * time.Second)

	router := api.NewRouter(&api.Handler{
		Auth:     svc.Auth,
		Workouts: svc.Workouts,
		Logger:   svc.Logger.With("component", "http"),
	}, api.Options{CORSAllowedOrigins: cfg.CORSAllowedOrigins})

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		svc.Logger.Info("Server running", "port", cfg.Port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	svc.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
