// Package source opens the game log Source selected by DATA_SOURCE. Shared by
// cmd/api and cmd/ingest.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/albapepper/futurehoops/internal/config"
	"github.com/albapepper/futurehoops/internal/db"
	"github.com/albapepper/futurehoops/internal/gamelog"
	"github.com/albapepper/futurehoops/internal/redisstore"
)

// Open returns the configured Source and a func releasing any connection it
// holds. The release func is never nil.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (gamelog.Source, func(), error) {
	noop := func() {}

	switch cfg.DataSource {
	case config.SourceSample:
		src := gamelog.SampleSource{}
		if cfg.ProjectionSeed != 0 {
			src.Rand = rand.New(rand.NewPCG(cfg.ProjectionSeed, cfg.ProjectionSeed))
		}
		logger.Info("Using generated sample game logs", "players", len(gamelog.SamplePlayers), "games", gamelog.SampleGames)
		return src, noop, nil

	case config.SourceSnapshot:
		logger.Info("Loading game log snapshot", "file", cfg.SnapshotFile)
		return gamelog.FileSource{Path: cfg.SnapshotFile}, noop, nil

	case config.SourcePostgres:
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
		return pool, pool.Close, nil

	case config.SourceRedis:
		logger.Info("Connecting to Redis...")
		client, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		store := redisstore.New(client, cfg.RedisSnapshotKey, cfg.RedisSnapshotTTL)
		return store, func() { client.Close() }, nil
	}
	return nil, noop, fmt.Errorf("unknown data source %q", cfg.DataSource)
}

// Load opens the configured Source and builds a Store from it.
func Load(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*gamelog.Store, error) {
	src, release, err := Open(ctx, cfg, logger)
	defer release()
	if err != nil {
		return nil, err
	}
	store, err := gamelog.New(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load game logs from %s: %w", cfg.DataSource, err)
	}
	logger.Info("Game logs loaded",
		"source", cfg.DataSource,
		"players", len(store.Players()),
		"game_logs", store.Len())
	return store, nil
}
