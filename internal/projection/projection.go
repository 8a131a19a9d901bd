// Package projection turns a player's game log into a current-game stat
// projection, a short forward forecast, and recent averages.
//
// The jitter bands and the confidence range are display heuristics carried
// over from the dashboard; they are configurable but not calibrated.
package projection

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/albapepper/futurehoops/internal/gamelog"
)

// ErrInsufficientData is returned when a known player has no games to
// project from.
var ErrInsufficientData = errors.New("insufficient data")

// Store is the read side of the game log table the engine needs.
type Store interface {
	Player(id int) (gamelog.Player, error)
	EntriesFor(playerID int) []gamelog.Entry
	Trailing(playerID, k int) []gamelog.Entry
}

// Band is a closed multiplier or score range [Lo, Hi].
type Band struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Bands groups the random ranges used by the engine.
type Bands struct {
	Major      Band // points, rebounds, assists
	Minor      Band // steals, blocks
	Forecast   Band
	Confidence Band
}

// DefaultBands returns the dashboard's original ranges.
func DefaultBands() Bands {
	return Bands{
		Major:      Band{Lo: 0.9, Hi: 1.1},
		Minor:      Band{Lo: 0.8, Hi: 1.2},
		Forecast:   Band{Lo: 0.9, Hi: 1.1},
		Confidence: Band{Lo: 70, Hi: 95},
	}
}

// Config controls window sizes and bands.
type Config struct {
	Window      int // trailing games for Project and Averages
	Horizon     int // future dates for Forecast
	TrendWindow int // trailing games behind each forecast point
	Bands       Bands
}

// DefaultConfig returns a 5-game window, a 3-game horizon and default bands.
func DefaultConfig() Config {
	return Config{
		Window:      5,
		Horizon:     3,
		TrendWindow: 3,
		Bands:       DefaultBands(),
	}
}

// Engine computes projections, forecasts and averages on demand. Nothing is
// cached; every call reads the store again.
type Engine struct {
	store Store
	rng   Rand
	cfg   Config
}

// New creates an Engine. Zero-valued config fields fall back to defaults.
func New(store Store, rng Rand, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.Horizon <= 0 {
		cfg.Horizon = def.Horizon
	}
	if cfg.TrendWindow <= 0 {
		cfg.TrendWindow = def.TrendWindow
	}
	if cfg.Bands == (Bands{}) {
		cfg.Bands = def.Bands
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return &Engine{store: store, rng: rng, cfg: cfg}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Projection is a single current-game estimate.
type Projection struct {
	PlayerID   int     `json:"player_id"`
	Games      int     `json:"games"`
	Points     float64 `json:"projected_pts"`
	Rebounds   float64 `json:"projected_reb"`
	Assists    float64 `json:"projected_ast"`
	Steals     float64 `json:"projected_stl"`
	Blocks     float64 `json:"projected_blk"`
	Confidence int     `json:"confidence"`
}

// Project jitters the trailing-window means of each counting stat. A window
// of zero or less uses the configured default. Fewer games than the window
// are accepted; none at all is ErrInsufficientData.
func (e *Engine) Project(playerID, window int) (Projection, error) {
	if window <= 0 {
		window = e.cfg.Window
	}
	games, err := e.trailing(playerID, window)
	if err != nil {
		return Projection{}, err
	}

	b := e.cfg.Bands
	return Projection{
		PlayerID:   playerID,
		Games:      len(games),
		Points:     math.Round(mean(games, points) * e.jitter(b.Major)),
		Rebounds:   math.Round(mean(games, rebounds) * e.jitter(b.Major)),
		Assists:    math.Round(mean(games, assists) * e.jitter(b.Major)),
		Steals:     round1(mean(games, steals) * e.jitter(b.Minor)),
		Blocks:     round1(mean(games, blocks) * e.jitter(b.Minor)),
		Confidence: int(math.Round(e.jitter(b.Confidence))),
	}, nil
}

// Averages is the plain trailing-window mean of each stat.
type Averages struct {
	PlayerID int     `json:"player_id"`
	Games    int     `json:"games"`
	Points   float64 `json:"pts"`
	Rebounds float64 `json:"reb"`
	Assists  float64 `json:"ast"`
	Steals   float64 `json:"stl"`
	Blocks   float64 `json:"blk"`
	FGPct    float64 `json:"fg_pct"`
}

// Averages returns unperturbed means over the trailing window.
func (e *Engine) Averages(playerID, window int) (Averages, error) {
	if window <= 0 {
		window = e.cfg.Window
	}
	games, err := e.trailing(playerID, window)
	if err != nil {
		return Averages{}, err
	}
	return Averages{
		PlayerID: playerID,
		Games:    len(games),
		Points:   mean(games, points),
		Rebounds: mean(games, rebounds),
		Assists:  mean(games, assists),
		Steals:   mean(games, steals),
		Blocks:   mean(games, blocks),
		FGPct:    mean(games, func(g gamelog.Entry) float64 { return g.FGPct }),
	}, nil
}

func (e *Engine) trailing(playerID, window int) ([]gamelog.Entry, error) {
	if _, err := e.store.Player(playerID); err != nil {
		return nil, err
	}
	games := e.store.Trailing(playerID, window)
	if len(games) == 0 {
		return nil, fmt.Errorf("player %d: %w", playerID, ErrInsufficientData)
	}
	return games, nil
}

func (e *Engine) jitter(b Band) float64 {
	return e.rng.Uniform(b.Lo, b.Hi)
}

type field func(gamelog.Entry) float64

func points(g gamelog.Entry) float64   { return g.Points }
func rebounds(g gamelog.Entry) float64 { return g.Rebounds }
func assists(g gamelog.Entry) float64  { return g.Assists }
func steals(g gamelog.Entry) float64   { return g.Steals }
func blocks(g gamelog.Entry) float64   { return g.Blocks }

func mean(games []gamelog.Entry, f field) float64 {
	if len(games) == 0 {
		return 0
	}
	xs := make([]float64, len(games))
	for i, g := range games {
		xs[i] = f(g)
	}
	return stat.Mean(xs, nil)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
