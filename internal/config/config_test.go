package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/futurehoops/internal/projection"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("API_PORT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceSample, cfg.DataSource)
	assert.Equal(t, 8050, cfg.APIPort)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, projection.DefaultConfig(), cfg.Projection)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_SOURCE", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/hoops")
	t.Setenv("PROJECTION_WINDOW", "10")
	t.Setenv("JITTER_MINOR_LO", "0.5")
	t.Setenv("CONFIDENCE_HI", "99")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourcePostgres, cfg.DataSource)
	assert.Equal(t, 10, cfg.Projection.Window)
	assert.Equal(t, projection.Band{Lo: 0.5, Hi: 1.2}, cfg.Projection.Bands.Minor)
	assert.Equal(t, projection.Band{Lo: 70, Hi: 99}, cfg.Projection.Bands.Confidence)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown source", map[string]string{"DATA_SOURCE": "csv"}, "unknown DATA_SOURCE"},
		{"snapshot without file", map[string]string{"DATA_SOURCE": "snapshot", "SNAPSHOT_FILE": ""}, "SNAPSHOT_FILE"},
		{"postgres without url", map[string]string{"DATA_SOURCE": "postgres", "DATABASE_URL": ""}, "DATABASE_URL"},
		{"inverted band", map[string]string{"JITTER_MAJOR_LO": "1.2", "JITTER_MAJOR_HI": "0.8"}, "JITTER_MAJOR"},
		{"confidence above 100", map[string]string{"CONFIDENCE_HI": "120"}, "CONFIDENCE"},
		{"nan band", map[string]string{"JITTER_MAJOR_LO": "NaN"}, "JITTER_MAJOR"},
		{"infinite band", map[string]string{"JITTER_FORECAST_HI": "+Inf"}, "JITTER_FORECAST"},
		{"nan confidence", map[string]string{"CONFIDENCE_LO": "nan"}, "CONFIDENCE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("DEBUG", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())

	cfg.Debug = false
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}
