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

	"github.com/spf13/cobra"

	"github.com/terra-clan/paradigm-advisor/internal/api"
	"github.com/terra-clan/paradigm-advisor/internal/cleanup"
	"github.com/terra-clan/paradigm-advisor/internal/config"
	"github.com/terra-clan/paradigm-advisor/internal/session"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the advisor page and API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if catalogDirFlag != "" {
				cfg.Catalog.Dir = catalogDirFlag
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	}))
	slog.SetDefault(logger)

	slog.Info("starting paradigm-advisor",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"session_backend", cfg.Session.Backend,
	)

	catalogue, err := loadCatalogue(cfg.Catalog.Dir)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	slog.Info("catalogue loaded",
		"dir", cfg.Catalog.Dir,
		"scenarios", len(catalogue.ListScenarios()),
		"criteria", len(catalogue.ListCriteria()),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store, err := openSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("session store close error", "error", err)
		}
	}()

	// Redis expires keys itself; the in-memory store needs a sweeper
	if mem, ok := store.(*session.MemoryStore); ok {
		cleaner := cleanup.NewCleaner(mem, cfg.Cleanup.Interval)
		cleaner.Start(ctx)
		defer func() {
			cancel()
			<-cleaner.Done()
		}()
	}

	server := api.NewServer(cfg.Server, cfg.Session, catalogue, store)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           server.Router(),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("paradigm-advisor stopped")
	return nil
}

func openSessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		store, err := session.NewRedisStore(initCtx, session.RedisConfig{
			Address:   cfg.Redis.Address,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
			TTL:       cfg.Session.TTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		slog.Info("redis session store connected", "address", cfg.Redis.Address)
		return store, nil
	default:
		return session.NewMemoryStore(cfg.Session.TTL), nil
	}
}
