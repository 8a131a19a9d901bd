// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/futurehoops/internal/projection"
)

// --------------------------------------------------------------------------
// Data sources
// --------------------------------------------------------------------------

// Supported values for DATA_SOURCE.
const (
	SourceSample   = "sample"
	SourceSnapshot = "snapshot"
	SourcePostgres = "postgres"
	SourceRedis    = "redis"
)

// NBACurrentSeason is the default season for BallDontLie ingestion.
const NBACurrentSeason = 2025

// --------------------------------------------------------------------------
// Table names (must match schema.sql)
// --------------------------------------------------------------------------

const (
	PlayersTable  = "players"
	GameLogsTable = "player_game_logs"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Game log source
	DataSource   string // sample, snapshot, postgres, redis
	SnapshotFile string

	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Redis
	RedisURL         string
	RedisSnapshotKey string
	RedisSnapshotTTL time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// External API keys
	BDLAPIKey string

	// Cache
	CacheEnabled bool

	// Projection
	Projection     projection.Config
	ProjectionSeed uint64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DataSource:   strings.ToLower(envOr("DATA_SOURCE", SourceSample)),
		SnapshotFile: envOr("SNAPSHOT_FILE", ""),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		RedisURL:         envOr("REDIS_URL", "redis://localhost:6379"),
		RedisSnapshotKey: envOr("REDIS_SNAPSHOT_KEY", "futurehoops:gamelogs:snapshot"),
		RedisSnapshotTTL: time.Duration(envInt("REDIS_SNAPSHOT_TTL_HOURS", 24)) * time.Hour,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8050)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8050",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		BDLAPIKey: envOr("BALLDONTLIE_API_KEY", ""),

		CacheEnabled: envBool("CACHE_ENABLED", true),

		ProjectionSeed: uint64(envInt("PROJECTION_SEED", 0)),
	}

	def := projection.DefaultConfig()
	cfg.Projection = projection.Config{
		Window:      envInt("PROJECTION_WINDOW", def.Window),
		Horizon:     envInt("FORECAST_HORIZON", def.Horizon),
		TrendWindow: envInt("FORECAST_TREND_WINDOW", def.TrendWindow),
		Bands: projection.Bands{
			Major:      envBand("JITTER_MAJOR", def.Bands.Major),
			Minor:      envBand("JITTER_MINOR", def.Bands.Minor),
			Forecast:   envBand("JITTER_FORECAST", def.Bands.Forecast),
			Confidence: envBand("CONFIDENCE", def.Bands.Confidence),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DataSource {
	case SourceSample:
	case SourceSnapshot:
		if c.SnapshotFile == "" {
			return fmt.Errorf("SNAPSHOT_FILE must be set when DATA_SOURCE=snapshot")
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set when DATA_SOURCE=postgres")
		}
	case SourceRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL must be set when DATA_SOURCE=redis")
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}

	b := c.Projection.Bands
	jitter := []struct {
		name string
		band projection.Band
	}{
		{"JITTER_MAJOR", b.Major},
		{"JITTER_MINOR", b.Minor},
		{"JITTER_FORECAST", b.Forecast},
	}
	for _, j := range jitter {
		if !finite(j.band) || j.band.Lo <= 0 || j.band.Hi < j.band.Lo {
			return fmt.Errorf("%s must satisfy 0 < LO <= HI, got [%g, %g]", j.name, j.band.Lo, j.band.Hi)
		}
	}
	if !finite(b.Confidence) || b.Confidence.Lo < 0 || b.Confidence.Hi > 100 || b.Confidence.Hi < b.Confidence.Lo {
		return fmt.Errorf("CONFIDENCE must lie within [0, 100], got [%g, %g]", b.Confidence.Lo, b.Confidence.Hi)
	}
	return nil
}

// finite rejects NaN and infinite bounds, which every ordered comparison
// above would let through.
func finite(b projection.Band) bool {
	for _, v := range []float64{b.Lo, b.Hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// LogLevel is Debug when DEBUG is set, Info otherwise.
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

// envBand reads PREFIX_LO and PREFIX_HI.
func envBand(prefix string, fallback projection.Band) projection.Band {
	return projection.Band{
		Lo: envFloat(prefix+"_LO", fallback.Lo),
		Hi: envFloat(prefix+"_HI", fallback.Hi),
	}
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
