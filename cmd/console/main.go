package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rouletteup/admin-console/internal/api"
	"github.com/rouletteup/admin-console/internal/config"
	"github.com/rouletteup/admin-console/internal/console"
	"github.com/rouletteup/admin-console/internal/nav"
	"github.com/rouletteup/admin-console/internal/session"
	"github.com/rouletteup/admin-console/internal/storage/sqlite"
	"github.com/rouletteup/admin-console/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Durable local state (the persisted session) lives in SQLite.
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	client := api.New(cfg.APIBaseURL,
		api.WithMetrics(api.NewMetrics(registry)),
	)

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			slog.Info("Metrics listening", "address", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	ctx := context.Background()

	sessions := session.NewManager(store, slog.Default())
	if err := sessions.Restore(ctx); err != nil {
		slog.Error("Failed to restore session", "error", err)
		os.Exit(1)
	}

	machine := nav.NewMachine(sessions, slog.Default())
	app := console.New(client, sessions, machine, os.Stdin, os.Stdout, slog.Default())

	if err := app.Run(ctx); err != nil {
		slog.Error("Console exited with error", "error", err)
		os.Exit(1)
	}
}
