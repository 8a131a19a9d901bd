// Command ingest is the Future Hoops data ingestion CLI.
//
// Usage:
//
//	futurehoops-ingest seed sample
//	futurehoops-ingest seed nba --season 2025 --players 237,115
//	futurehoops-ingest sync --cron "0 6 * * *" --season 2025 --players 237,115 --publish
//	futurehoops-ingest snapshot publish
//	futurehoops-ingest snapshot export --out gamelogs.json
//	futurehoops-ingest project --player 1 --window 5
//	futurehoops-ingest forecast --player 1 --horizon 3
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/albapepper/futurehoops/internal/config"
	"github.com/albapepper/futurehoops/internal/db"
	"github.com/albapepper/futurehoops/internal/gamelog"
	"github.com/albapepper/futurehoops/internal/projection"
	"github.com/albapepper/futurehoops/internal/provider/bdl"
	"github.com/albapepper/futurehoops/internal/redisstore"
	"github.com/albapepper/futurehoops/internal/seed"
	"github.com/albapepper/futurehoops/internal/source"
)

var (
	logLevel = new(slog.LevelVar)
	logger   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "futurehoops-ingest",
		Short:        "Future Hoops data ingestion CLI",
		SilenceUsage: true,
	}

	root.AddCommand(seedCmd())
	root.AddCommand(syncCmd())
	root.AddCommand(snapshotCmd())
	root.AddCommand(projectCmd())
	root.AddCommand(forecastCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed players and game logs into Postgres",
	}
	cmd.AddCommand(seedSampleCmd())
	cmd.AddCommand(seedNBACmd())
	return cmd
}

func seedSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Seed generated sample game logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(func(ctx context.Context, cfg *config.Config, pool *db.Pool, log *slog.Logger) error {
				sample := *cfg
				sample.DataSource = config.SourceSample
				src, release, err := source.Open(ctx, &sample, log)
				if err != nil {
					return err
				}
				defer release()

				start := time.Now()
				result := seed.SeedSource(ctx, seed.PoolWriter{Pool: pool.Pool}, src, log)
				logSeedResult(log, "Sample seed finished", start, result)
				return nil
			})
		},
	}
}

func seedNBACmd() *cobra.Command {
	var (
		season    int
		playerIDs []int
	)
	cmd := &cobra.Command{
		Use:   "nba",
		Short: "Seed NBA game logs from BallDontLie",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(func(ctx context.Context, cfg *config.Config, pool *db.Pool, log *slog.Logger) error {
				if cfg.BDLAPIKey == "" {
					return fmt.Errorf("BALLDONTLIE_API_KEY is required")
				}
				handler := bdl.NewNBAHandler(cfg.BDLAPIKey, log)
				start := time.Now()
				result := seed.SeedNBA(ctx, seed.PoolWriter{Pool: pool.Pool}, handler, season, playerIDs, log)
				logSeedResult(log, "NBA seed finished", start, result)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", config.NBACurrentSeason, "Season year")
	cmd.Flags().IntSliceVar(&playerIDs, "players", nil, "BallDontLie player IDs (empty = every player in the season)")
	return cmd
}

// --------------------------------------------------------------------------
// sync command
// --------------------------------------------------------------------------

func syncCmd() *cobra.Command {
	var (
		schedule  string
		season    int
		playerIDs []int
		publish   bool
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Re-seed NBA game logs on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(func(ctx context.Context, cfg *config.Config, pool *db.Pool, log *slog.Logger) error {
				if cfg.BDLAPIKey == "" {
					return fmt.Errorf("BALLDONTLIE_API_KEY is required")
				}
				handler := bdl.NewNBAHandler(cfg.BDLAPIKey, log)

				job := func() {
					runLog := logger.With("run_id", uuid.NewString())
					start := time.Now()
					result := seed.SeedNBA(ctx, seed.PoolWriter{Pool: pool.Pool}, handler, season, playerIDs, runLog)
					logSeedResult(runLog, "Scheduled NBA sync finished", start, result)
					if publish {
						if err := publishSnapshot(ctx, cfg, pool, runLog); err != nil {
							runLog.Error("Snapshot publish failed", "error", err)
						}
					}
				}

				cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
				c := cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.SkipIfStillRunning(cronLogger)))
				if _, err := c.AddFunc(schedule, job); err != nil {
					return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
				}
				c.Start()
				log.Info("Sync scheduler started", "schedule", schedule, "season", season, "publish", publish)

				<-ctx.Done()
				log.Info("Stopping sync scheduler...")
				<-c.Stop().Done()
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&schedule, "cron", "0 6 * * *", "Cron schedule (minute hour dom month dow)")
	cmd.Flags().IntVar(&season, "season", config.NBACurrentSeason, "Season year")
	cmd.Flags().IntSliceVar(&playerIDs, "players", nil, "BallDontLie player IDs (empty = every player in the season)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish a Redis snapshot after each run")
	return cmd
}

// publishSnapshot rebuilds the store from Postgres and writes it to Redis.
func publishSnapshot(ctx context.Context, cfg *config.Config, pool *db.Pool, log *slog.Logger) error {
	store, err := gamelog.New(ctx, pool)
	if err != nil {
		return err
	}
	client, err := redisstore.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer client.Close()

	n, err := redisstore.New(client, cfg.RedisSnapshotKey, cfg.RedisSnapshotTTL).Publish(ctx, store)
	if err != nil {
		return err
	}
	log.Info("Snapshot published", "key", cfg.RedisSnapshotKey, "bytes", n, "game_logs", store.Len())
	return nil
}

// --------------------------------------------------------------------------
// snapshot command
// --------------------------------------------------------------------------

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Serialize the configured game log source",
	}
	cmd.AddCommand(snapshotPublishCmd())
	cmd.AddCommand(snapshotExportCmd())
	return cmd
}

func snapshotPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Publish a snapshot of DATA_SOURCE to Redis",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(func(ctx context.Context, cfg *config.Config, store *gamelog.Store, log *slog.Logger) error {
				if cfg.DataSource == config.SourceRedis {
					return fmt.Errorf("DATA_SOURCE=redis would republish the same snapshot")
				}
				client, err := redisstore.Connect(ctx, cfg.RedisURL)
				if err != nil {
					return err
				}
				defer client.Close()

				n, err := redisstore.New(client, cfg.RedisSnapshotKey, cfg.RedisSnapshotTTL).Publish(ctx, store)
				if err != nil {
					return err
				}
				log.Info("Snapshot published",
					"key", cfg.RedisSnapshotKey,
					"ttl", cfg.RedisSnapshotTTL,
					"bytes", n,
					"players", len(store.Players()),
					"game_logs", store.Len())
				return nil
			})
		},
	}
}

func snapshotExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of DATA_SOURCE to a file (or stdout)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(func(ctx context.Context, cfg *config.Config, store *gamelog.Store, log *slog.Logger) error {
				if out == "" || out == "-" {
					return store.Encode(cmd.OutOrStdout())
				}
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				if err := store.Encode(f); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				log.Info("Snapshot exported", "file", out, "game_logs", store.Len())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	return cmd
}

// --------------------------------------------------------------------------
// project / forecast commands
// --------------------------------------------------------------------------

func projectCmd() *cobra.Command {
	var playerID, window int
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print a current-game projection for one player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(func(ctx context.Context, cfg *config.Config, store *gamelog.Store, log *slog.Logger) error {
				engine := projection.New(store, projection.NewRand(cfg.ProjectionSeed), cfg.Projection)
				p, err := engine.Project(playerID, window)
				if err != nil {
					return err
				}
				return printJSON(cmd, p)
			})
		},
	}
	cmd.Flags().IntVar(&playerID, "player", 0, "Player ID")
	cmd.Flags().IntVar(&window, "window", 0, "Trailing games (0 = PROJECTION_WINDOW)")
	cmd.MarkFlagRequired("player")
	return cmd
}

func forecastCmd() *cobra.Command {
	var playerID, horizon int
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Print historical and projected series for one player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(func(ctx context.Context, cfg *config.Config, store *gamelog.Store, log *slog.Logger) error {
				engine := projection.New(store, projection.NewRand(cfg.ProjectionSeed), cfg.Projection)
				fc, err := engine.Forecast(playerID, horizon)
				if err != nil {
					return err
				}
				return printJSON(cmd, fc)
			})
		},
	}
	cmd.Flags().IntVar(&playerID, "player", 0, "Player ID")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "Future games (0 = FORECAST_HORIZON)")
	cmd.MarkFlagRequired("player")
	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runSeed handles config loading, DB connection, schema bootstrap and
// context cancellation. Each run logs under its own run_id.
func runSeed(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool, log *slog.Logger) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logLevel.Set(cfg.LogLevel())
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.ApplySchema(ctx); err != nil {
		return err
	}

	return fn(ctx, cfg, pool, logger.With("run_id", uuid.NewString()))
}

// runStore loads the configured source into a Store.
func runStore(fn func(ctx context.Context, cfg *config.Config, store *gamelog.Store, log *slog.Logger) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logLevel.Set(cfg.LogLevel())

	log := logger.With("run_id", uuid.NewString())
	store, err := source.Load(ctx, cfg, log)
	if err != nil {
		return err
	}
	return fn(ctx, cfg, store, log)
}

func logSeedResult(log *slog.Logger, msg string, start time.Time, result seed.SeedResult) {
	log.Info(msg, "duration", time.Since(start).Round(time.Second), "summary", result.Summary())
	for _, e := range result.Errors {
		log.Error("seed error", "error", e)
	}
}
