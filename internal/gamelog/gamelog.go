// Package gamelog holds the immutable per-game player log table that every
// projection and forecast reads from.
//
// A Store is built once from a Source (sample generator, snapshot payload,
// Postgres, Redis) and is read-only afterwards, so it can be shared across
// goroutines without locking.
package gamelog

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date format used in snapshots and JSON output.
const DateLayout = "2006-01-02"

var (
	// ErrUnknownPlayer is returned when a player ID is not in the player set.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrInvalidEntry is returned by New when a row violates a store invariant.
	ErrInvalidEntry = errors.New("invalid game log entry")
	// ErrInvalidPlayer is returned by New for a duplicate or malformed player.
	ErrInvalidPlayer = errors.New("invalid player")
)

// Position is a player's listed court position. Unlisted is allowed for
// players whose provider reports no position.
type Position string

const (
	Unlisted      Position = ""
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
	Guard         Position = "G"
	Forward       Position = "F"
)

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	switch p {
	case PointGuard, ShootingGuard, SmallForward, PowerForward, Center, Guard, Forward:
		return true
	}
	return false
}

// Frontcourt reports whether p is a big (C or PF).
func (p Position) Frontcourt() bool {
	return p == Center || p == PowerForward
}

// Player is the immutable profile of a rostered player.
type Player struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Team     string   `json:"team"`
	Position Position `json:"position"`
}

// Entry is one observed game for one player.
type Entry struct {
	PlayerID int       `json:"player_id"`
	Date     time.Time `json:"date"`
	Minutes  int       `json:"min"`
	Points   float64   `json:"pts"`
	Rebounds float64   `json:"reb"`
	Assists  float64   `json:"ast"`
	Steals   float64   `json:"stl"`
	Blocks   float64   `json:"blk"`
	FGPct    float64   `json:"fg_pct"`
	ThreePct float64   `json:"three_pct"`
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string (a full RFC 3339 timestamp is also
// accepted and truncated) into a UTC calendar date.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}
