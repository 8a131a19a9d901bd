// Command api is the Future Hoops API server.
//
// Usage:
//
//	futurehoops-api
//	API_PORT=8080 DATA_SOURCE=postgres futurehoops-api

// @title Future Hoops API
// @version 1.0.0
// @description Basketball player game logs, recent averages, jittered current-game projections and short-horizon forecasts.
// @host localhost:8050
// @BasePath /api/v1
// @schemes http https
// @contact.name Future Hoops
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/futurehoops/internal/api"
	"github.com/albapepper/futurehoops/internal/cache"
	"github.com/albapepper/futurehoops/internal/config"
	"github.com/albapepper/futurehoops/internal/projection"
	"github.com/albapepper/futurehoops/internal/source"

	_ "github.com/albapepper/futurehoops/docs" // swagger docs
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	level.Set(cfg.LogLevel())

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Build the immutable game log store once; every request reads it.
	store, err := source.Load(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to load game logs", "source", cfg.DataSource, "error", err)
		os.Exit(1)
	}

	engine := projection.New(store, projection.NewRand(cfg.ProjectionSeed), cfg.Projection)
	pc := engine.Config()
	logger.Info("Projection engine ready",
		"window", pc.Window,
		"horizon", pc.Horizon,
		"trend_window", pc.TrendWindow,
		"seeded", cfg.ProjectionSeed != 0)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Create router
	router := api.NewRouter(store, engine, appCache, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Future Hoops API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
