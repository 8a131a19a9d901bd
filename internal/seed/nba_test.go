package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/futurehoops/internal/gamelog"
	"github.com/albapepper/futurehoops/internal/provider"
)

func TestGameLogFromLine(t *testing.T) {
	line := provider.GameLine{
		PlayerID: 237,
		Date:     "2025-01-14T00:00:00.000Z",
		Minutes:  "35:41",
		Stats: map[string]interface{}{
			"pts":       float64(31),
			"reb":       "8",
			"ast":       float64(9),
			"stl":       float64(1),
			"fg_pct":    0.55,
			"three_pct": float64(40), // percent form
		},
	}

	e, ok := GameLogFromLine(line)
	require.True(t, ok)
	assert.Equal(t, gamelog.Entry{
		PlayerID: 237,
		Date:     time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
		Minutes:  35,
		Points:   31,
		Rebounds: 8,
		Assists:  9,
		Steals:   1,
		Blocks:   0,
		FGPct:    0.55,
		ThreePct: 0.4,
	}, e)
}

func TestGameLogFromLineSkipsDNP(t *testing.T) {
	for _, min := range []string{"", "0", "00", "00:00", "garbage"} {
		_, ok := GameLogFromLine(provider.GameLine{PlayerID: 1, Date: "2025-01-14", Minutes: min})
		assert.False(t, ok, "minutes %q", min)
	}

	_, ok := GameLogFromLine(provider.GameLine{PlayerID: 1, Date: "14/01/2025", Minutes: "30"})
	assert.False(t, ok, "bad date")
}

func TestNormalizePosition(t *testing.T) {
	tests := map[string]gamelog.Position{
		"G":      gamelog.Guard,
		"F-C":    gamelog.Forward,
		"c":      gamelog.Center,
		" PG ":   gamelog.PointGuard,
		"Center": gamelog.Center,
		"":       "",
		"XX":     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePosition(in), in)
	}
}

func TestPlayerFromProvider(t *testing.T) {
	p := PlayerFromProvider(provider.Player{ID: 246, Name: "Nikola Jokic", Position: "C", TeamCode: "DEN"})
	assert.Equal(t, gamelog.Player{ID: 246, Name: "Nikola Jokic", Team: "DEN", Position: gamelog.Center}, p)
}

func TestSeedResult(t *testing.T) {
	var r SeedResult
	r.PlayersUpserted = 2
	r.Add(SeedResult{GameLogsUpserted: 30, GameLogsSkipped: 1, Errors: []string{"x"}})
	r.AddErrorf("player %d: %s", 3, "boom")

	assert.Equal(t, "players=2 game_logs=30 skipped=1 errors=2", r.Summary())
	assert.Equal(t, []string{"x", "player 3: boom"}, r.Errors)
}
