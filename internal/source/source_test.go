package source

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/futurehoops/internal/config"
	"github.com/albapepper/futurehoops/internal/gamelog"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLoadSample(t *testing.T) {
	cfg := &config.Config{DataSource: config.SourceSample, ProjectionSeed: 7}

	store, err := Load(context.Background(), cfg, testLogger)
	require.NoError(t, err)
	assert.Len(t, store.Players(), len(gamelog.SamplePlayers))
	assert.Equal(t, len(gamelog.SamplePlayers)*gamelog.SampleGames, store.Len())
}

func TestLoadSnapshotFile(t *testing.T) {
	src, err := gamelog.New(context.Background(), gamelog.SampleSource{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, src.Encode(f))
	require.NoError(t, f.Close())

	cfg := &config.Config{DataSource: config.SourceSnapshot, SnapshotFile: path}
	store, err := Load(context.Background(), cfg, testLogger)
	require.NoError(t, err)
	assert.Equal(t, src.Len(), store.Len())
	assert.Equal(t, src.EntriesFor(3), store.EntriesFor(3))
}

func TestLoadMissingSnapshotFile(t *testing.T) {
	cfg := &config.Config{DataSource: config.SourceSnapshot, SnapshotFile: filepath.Join(t.TempDir(), "nope.json")}
	_, err := Load(context.Background(), cfg, testLogger)
	assert.Error(t, err)
}

func TestOpenUnknownSource(t *testing.T) {
	_, release, err := Open(context.Background(), &config.Config{DataSource: "csv"}, testLogger)
	assert.Error(t, err)
	assert.NotNil(t, release)
}
