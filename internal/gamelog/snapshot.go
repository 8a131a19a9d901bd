package gamelog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Column orders for the two snapshot tables.
var (
	playerColumns = []string{"id", "name", "team", "position"}
	entryColumns  = []string{
		"player_id", "date", "min", "pts", "reb", "ast",
		"stl", "blk", "fg_pct", "three_pct",
	}
)

// Table is a tabular payload in "split" orientation: column names, a row
// index, and row-major data.
type Table struct {
	Columns []string            `json:"columns"`
	Index   []int               `json:"index"`
	Data    [][]json.RawMessage `json:"data"`
}

// Snapshot is the serialized form of a Store, suitable for caching or
// transporting the log table between requests.
type Snapshot struct {
	Players  Table `json:"players"`
	GameLogs Table `json:"game_logs"`
}

// Snapshot serializes the store.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Players:  Table{Columns: playerColumns},
		GameLogs: Table{Columns: entryColumns},
	}
	for i, p := range s.Players() {
		snap.Players.Index = append(snap.Players.Index, i)
		snap.Players.Data = append(snap.Players.Data, row(p.ID, p.Name, p.Team, string(p.Position)))
	}
	i := 0
	for _, id := range s.ids {
		for _, e := range s.entries[id] {
			snap.GameLogs.Index = append(snap.GameLogs.Index, i)
			snap.GameLogs.Data = append(snap.GameLogs.Data, row(
				e.PlayerID, e.Date.Format(DateLayout), e.Minutes,
				e.Points, e.Rebounds, e.Assists, e.Steals, e.Blocks,
				e.FGPct, e.ThreePct,
			))
			i++
		}
	}
	return snap
}

// Encode writes the store's snapshot as JSON.
func (s *Store) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(s.Snapshot())
}

// DecodeSnapshot reads a JSON snapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Rows converts the snapshot back into players and entries.
func (snap Snapshot) Rows() ([]Player, []Entry, error) {
	pcol, err := columnIndex(snap.Players.Columns, playerColumns)
	if err != nil {
		return nil, nil, fmt.Errorf("players table: %w", err)
	}
	ecol, err := columnIndex(snap.GameLogs.Columns, entryColumns)
	if err != nil {
		return nil, nil, fmt.Errorf("game_logs table: %w", err)
	}

	players := make([]Player, 0, len(snap.Players.Data))
	for n, r := range snap.Players.Data {
		var p Player
		var pos string
		if err := scan(r, pcol, map[string]any{
			"id": &p.ID, "name": &p.Name, "team": &p.Team, "position": &pos,
		}); err != nil {
			return nil, nil, fmt.Errorf("players row %d: %w", n, err)
		}
		p.Position = Position(pos)
		players = append(players, p)
	}

	entries := make([]Entry, 0, len(snap.GameLogs.Data))
	for n, r := range snap.GameLogs.Data {
		var e Entry
		var date string
		if err := scan(r, ecol, map[string]any{
			"player_id": &e.PlayerID, "date": &date, "min": &e.Minutes,
			"pts": &e.Points, "reb": &e.Rebounds, "ast": &e.Assists,
			"stl": &e.Steals, "blk": &e.Blocks,
			"fg_pct": &e.FGPct, "three_pct": &e.ThreePct,
		}); err != nil {
			return nil, nil, fmt.Errorf("game_logs row %d: %w", n, err)
		}
		if e.Date, err = ParseDay(date); err != nil {
			return nil, nil, fmt.Errorf("game_logs row %d: date: %w", n, err)
		}
		entries = append(entries, e)
	}
	return players, entries, nil
}

// Load implements Source.
func (snap Snapshot) Load(context.Context) ([]Player, []Entry, error) {
	return snap.Rows()
}

// FileSource loads a snapshot from a JSON file on disk.
type FileSource struct {
	Path string
}

// Load implements Source.
func (f FileSource) Load(ctx context.Context) ([]Player, []Entry, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer fh.Close()

	snap, err := DecodeSnapshot(fh)
	if err != nil {
		return nil, nil, err
	}
	return snap.Load(ctx)
}

func row(vals ...any) []json.RawMessage {
	out := make([]json.RawMessage, len(vals))
	for i, v := range vals {
		b, _ := json.Marshal(v)
		out[i] = b
	}
	return out
}

// columnIndex maps each required column name to its position in got.
func columnIndex(got, want []string) (map[string]int, error) {
	idx := make(map[string]int, len(got))
	for i, c := range got {
		idx[c] = i
	}
	for _, c := range want {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}
	return idx, nil
}

func scan(r []json.RawMessage, col map[string]int, dst map[string]any) error {
	for name, ptr := range dst {
		i := col[name]
		if i >= len(r) {
			return fmt.Errorf("column %q: short row", name)
		}
		if err := json.Unmarshal(r[i], ptr); err != nil {
			return fmt.Errorf("column %q: %w", name, err)
		}
	}
	return nil
}
