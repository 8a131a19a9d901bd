package gamelog

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// Source supplies the rows a Store is built from.
type Source interface {
	Load(ctx context.Context) ([]Player, []Entry, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]Player, []Entry, error)

// Load calls f(ctx).
func (f SourceFunc) Load(ctx context.Context) ([]Player, []Entry, error) {
	return f(ctx)
}

// Store is an immutable table of game logs keyed by player.
type Store struct {
	players map[int]Player
	ids     []int
	entries map[int][]Entry
}

// New loads rows from src and returns a validated, owned Store.
func New(ctx context.Context, src Source) (*Store, error) {
	players, entries, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load game logs: %w", err)
	}
	return NewFromData(players, entries)
}

// NewFromData validates the given rows and builds a Store from them.
// Entries may arrive in any order; each player's series is sorted by date.
func NewFromData(players []Player, entries []Entry) (*Store, error) {
	s := &Store{
		players: make(map[int]Player, len(players)),
		ids:     make([]int, 0, len(players)),
		entries: make(map[int][]Entry, len(players)),
	}

	for _, p := range players {
		if _, dup := s.players[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate player %d", ErrInvalidPlayer, p.ID)
		}
		if p.Position != Unlisted && !p.Position.Valid() {
			return nil, fmt.Errorf("%w: player %d has position %q", ErrInvalidPlayer, p.ID, p.Position)
		}
		s.players[p.ID] = p
		s.ids = append(s.ids, p.ID)
	}
	sort.Ints(s.ids)

	for _, e := range entries {
		if _, ok := s.players[e.PlayerID]; !ok {
			return nil, fmt.Errorf("%w: player %d: %w", ErrInvalidEntry, e.PlayerID, ErrUnknownPlayer)
		}
		if err := validate(e); err != nil {
			return nil, err
		}
		e.Date = Day(e.Date)
		s.entries[e.PlayerID] = append(s.entries[e.PlayerID], e)
	}

	for id, series := range s.entries {
		sort.SliceStable(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
		for i := 1; i < len(series); i++ {
			if series[i].Date.Equal(series[i-1].Date) {
				return nil, fmt.Errorf("%w: player %d has two games on %s",
					ErrInvalidEntry, id, series[i].Date.Format(DateLayout))
			}
		}
	}

	return s, nil
}

type field struct {
	name string
	v    float64
}

func validate(e Entry) error {
	if e.Date.IsZero() {
		return fmt.Errorf("%w: player %d: missing date", ErrInvalidEntry, e.PlayerID)
	}
	day := e.Date.Format(DateLayout)

	counting := []field{
		{"min", float64(e.Minutes)},
		{"pts", e.Points}, {"reb", e.Rebounds}, {"ast", e.Assists},
		{"stl", e.Steals}, {"blk", e.Blocks},
	}
	for _, f := range counting {
		if !finite(f.v) {
			return fmt.Errorf("%w: player %d on %s: %s is %g", ErrInvalidEntry, e.PlayerID, day, f.name, f.v)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: player %d on %s: %s is negative", ErrInvalidEntry, e.PlayerID, day, f.name)
		}
	}
	for _, f := range []field{{"fg_pct", e.FGPct}, {"three_pct", e.ThreePct}} {
		if !finite(f.v) || f.v < 0 || f.v > 1 {
			return fmt.Errorf("%w: player %d on %s: %s %.3f outside [0,1]", ErrInvalidEntry, e.PlayerID, day, f.name, f.v)
		}
	}
	return nil
}

// finite is false for NaN and ±Inf; NaN slips past the ordered checks above.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Player returns the profile for id.
func (s *Store) Player(id int) (Player, error) {
	p, ok := s.players[id]
	if !ok {
		return Player{}, fmt.Errorf("player %d: %w", id, ErrUnknownPlayer)
	}
	return p, nil
}

// Players returns every player ordered by ID.
func (s *Store) Players() []Player {
	out := make([]Player, len(s.ids))
	for i, id := range s.ids {
		out[i] = s.players[id]
	}
	return out
}

// EntriesFor returns the player's games in ascending date order. A player
// without logs (known or not) yields an empty slice.
func (s *Store) EntriesFor(playerID int) []Entry {
	series := s.entries[playerID]
	out := make([]Entry, len(series))
	copy(out, series)
	return out
}

// Trailing returns the last k games in date order, or all of them when the
// player has fewer than k.
func (s *Store) Trailing(playerID, k int) []Entry {
	if k <= 0 {
		return []Entry{}
	}
	series := s.entries[playerID]
	if k > len(series) {
		k = len(series)
	}
	out := make([]Entry, k)
	copy(out, series[len(series)-k:])
	return out
}

// Len returns the total number of entries across all players.
func (s *Store) Len() int {
	n := 0
	for _, series := range s.entries {
		n += len(series)
	}
	return n
}
