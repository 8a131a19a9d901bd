package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/futurehoops/internal/gamelog"
	"github.com/albapepper/futurehoops/internal/provider"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// memWriter records writes and, like the players foreign key, rejects game
// logs for players it has not seen.
type memWriter struct {
	players []gamelog.Player
	entries []gamelog.Entry
	failFor map[int]bool
}

func (m *memWriter) UpsertPlayer(_ context.Context, p gamelog.Player) error {
	if m.failFor[p.ID] {
		return errors.New("constraint violation")
	}
	m.players = append(m.players, p)
	return nil
}

func (m *memWriter) UpsertGameLogs(_ context.Context, entries []gamelog.Entry) (int, error) {
	for i, e := range entries {
		if !m.hasPlayer(e.PlayerID) {
			return i, errors.New("foreign key violation")
		}
		m.entries = append(m.entries, e)
	}
	return len(entries), nil
}

func (m *memWriter) hasPlayer(id int) bool {
	for _, p := range m.players {
		if p.ID == id {
			return true
		}
	}
	return false
}

type fakeNBA struct {
	lines    []provider.GameLine
	profiles map[int]provider.Player
	lookups  []int
}

func (f *fakeNBA) GetGameLines(_ context.Context, _ int, _ []int, fn func(provider.GameLine) error) error {
	for _, l := range f.lines {
		if err := fn(l); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeNBA) GetPlayer(_ context.Context, id int) (provider.Player, error) {
	f.lookups = append(f.lookups, id)
	p, ok := f.profiles[id]
	if !ok {
		return provider.Player{}, errors.New("returned 404")
	}
	return p, nil
}

func line(playerID int, date, minutes string, profile *provider.Player) provider.GameLine {
	return provider.GameLine{
		PlayerID: playerID,
		Date:     date,
		Minutes:  minutes,
		Player:   profile,
		Stats:    map[string]interface{}{"pts": float64(20), "reb": float64(5)},
	}
}

func TestSeedNBAResolvesMissingProfiles(t *testing.T) {
	lebron := &provider.Player{ID: 237, Name: "LeBron James", Position: "F", TeamCode: "LAL"}
	src := &fakeNBA{
		lines: []provider.GameLine{
			line(237, "2025-01-14", "36", lebron),
			line(246, "2025-01-14", "34", nil),
			line(246, "2025-01-16", "31", nil),
			line(237, "2025-01-16", "0", lebron),
		},
		profiles: map[int]provider.Player{246: {ID: 246, Name: "Nikola Jokic", Position: "C", TeamCode: "DEN"}},
	}
	w := &memWriter{}

	result := SeedNBA(context.Background(), w, src, 2025, nil, quiet)

	assert.Empty(t, result.Errors)
	assert.Equal(t, []int{246}, src.lookups)
	assert.Equal(t, 2, result.PlayersUpserted)
	assert.Equal(t, 3, result.GameLogsUpserted)
	assert.Equal(t, 1, result.GameLogsSkipped)
	require.Len(t, w.players, 2)
	assert.Equal(t, gamelog.Center, w.players[1].Position)
	assert.Len(t, w.entries, 3)
}

func TestSeedNBASkipsLinesForUnresolvablePlayers(t *testing.T) {
	src := &fakeNBA{
		lines: []provider.GameLine{
			line(1, "2025-01-14", "30", &provider.Player{ID: 1, Name: "A"}),
			line(404, "2025-01-14", "30", nil),
			line(404, "2025-01-15", "30", nil),
			line(1, "2025-01-15", "30", &provider.Player{ID: 1, Name: "A"}),
		},
	}
	w := &memWriter{}

	result := SeedNBA(context.Background(), w, src, 2025, nil, quiet)

	// one lookup, then the failure is remembered
	assert.Equal(t, []int{404}, src.lookups)
	assert.Equal(t, 2, result.GameLogsUpserted)
	assert.Equal(t, 2, result.GameLogsSkipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "resolve player 404")
	for _, e := range w.entries {
		assert.Equal(t, 1, e.PlayerID)
	}
}

func TestSeedNBASkipsLinesWhenPlayerWriteFails(t *testing.T) {
	src := &fakeNBA{
		lines: []provider.GameLine{
			line(7, "2025-01-14", "30", &provider.Player{ID: 7, Name: "B"}),
			line(8, "2025-01-14", "30", &provider.Player{ID: 8, Name: "C"}),
		},
	}
	w := &memWriter{failFor: map[int]bool{7: true}}

	result := SeedNBA(context.Background(), w, src, 2025, nil, quiet)

	assert.Equal(t, 1, result.PlayersUpserted)
	assert.Equal(t, 1, result.GameLogsUpserted)
	assert.Equal(t, 1, result.GameLogsSkipped)
	assert.Len(t, result.Errors, 1)
}

func TestSeedSource(t *testing.T) {
	w := &memWriter{}
	result := SeedSource(context.Background(), w, gamelog.SampleSource{}, quiet)

	assert.Empty(t, result.Errors)
	assert.Equal(t, len(gamelog.SamplePlayers), result.PlayersUpserted)
	assert.Equal(t, len(gamelog.SamplePlayers)*gamelog.SampleGames, result.GameLogsUpserted)
	assert.Len(t, w.entries, result.GameLogsUpserted)
}

func TestSeedSourceReportsInvalidInput(t *testing.T) {
	bad := gamelog.SourceFunc(func(context.Context) ([]gamelog.Player, []gamelog.Entry, error) {
		return []gamelog.Player{{ID: 1, Name: "A", Position: "ZZ"}}, nil, nil
	})
	w := &memWriter{}
	result := SeedSource(context.Background(), w, bad, quiet)

	assert.Len(t, result.Errors, 1)
	assert.Empty(t, w.players)
}
