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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"

	"github.com/lutefd/skyblock-facade/internal/auth"
	"github.com/lutefd/skyblock-facade/internal/config"
	"github.com/lutefd/skyblock-facade/internal/events"
	httpserver "github.com/lutefd/skyblock-facade/internal/http"
	"github.com/lutefd/skyblock-facade/internal/hypixel"
	"github.com/lutefd/skyblock-facade/internal/lookup"
	"github.com/lutefd/skyblock-facade/internal/metrics"
	"github.com/lutefd/skyblock-facade/internal/projections"
	"github.com/lutefd/skyblock-facade/internal/storage/postgres"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With("environment", cfg.Environment)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("api stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry, time.Now())

	bus := events.NewBus()
	deps := httpserver.Dependencies{
		Metrics: recorder,
		Logger:  logger,
	}
	if cfg.Server.LookupsPerMinute > 0 {
		deps.Limiter = auth.NewKeyRateLimiter(cfg.Server.LookupsPerMinute, max(cfg.Server.LookupBurst, 1))
	}

	if cfg.Postgres.DSN != "" {
		store, err := postgres.NewStore(ctx, cfg.Postgres.DSN)
		if err != nil {
			return err
		}
		defer store.Close()

		projection := projections.NewService(store, logger)
		projection.Register(bus)
		deps.Leaderboard = projection
		logger.Info("leaderboard enabled")
	} else {
		logger.Info("no database configured, leaderboard disabled")
	}

	client := hypixel.NewClient(cfg.Hypixel.BaseURL, cfg.Hypixel.UserAgent, cfg.Hypixel.Timeout)
	deps.Lookup = lookup.NewService(client, bus, logger, otel.Tracer("skyblock-facade"))

	srv := httpserver.NewServer(deps)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
