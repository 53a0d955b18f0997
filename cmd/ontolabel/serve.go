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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	labelapi "github.com/c360studio/ontolabel/processor/label-api"
	"github.com/c360studio/ontolabel/override"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

func serveCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the label resolution API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath, *logLevel)
		},
	}
}

func runServe(configPath, logLevel string) error {
	logger := setupLogging(logLevel)

	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Catalog snapshot
	catalog := labelapi.NewCatalog()
	if cfg.Catalog.TriplesPath != "" {
		if err := catalog.LoadTriplesFile(cfg.Catalog.TriplesPath); err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		logger.Info("Catalog loaded",
			slog.String("path", cfg.Catalog.TriplesPath),
			slog.Int("entities", catalog.Len()))
	} else {
		logger.Warn("No triples path configured, starting with an empty catalog")
	}

	// Label overrides with hot reload
	var overrides *override.Store
	if cfg.Labels.OverridesPath != "" {
		overrides, err = override.NewStore(cfg.Labels.OverridesPath, logger)
		if err != nil {
			return fmt.Errorf("load overrides: %w", err)
		}
		go func() {
			if err := overrides.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("Override watcher stopped", slog.String("error", err.Error()))
			}
		}()
	}

	// Metrics registry with process/runtime collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	component, err := labelapi.NewComponent(labelapi.Config{
		DefaultLanguage: cfg.Labels.DefaultLanguage,
		NATSURL:         cfg.NATS.URL,
		NATSSubject:     cfg.NATS.Subject,
	}, catalog, overrides, registry, logger)
	if err != nil {
		return err
	}

	if err := component.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := component.Stop(); err != nil {
			logger.Warn("Component stop failed", slog.String("error", err.Error()))
		}
	}()

	mux := http.NewServeMux()
	component.RegisterHTTPHandlers(cfg.Server.APIPrefix, mux)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening",
			slog.String("addr", cfg.Server.Addr),
			slog.String("prefix", cfg.Server.APIPrefix))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
