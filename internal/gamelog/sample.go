package gamelog

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

// SampleGames is the number of games generated per sample player.
const SampleGames = 15

// SamplePlayers is the default roster used by SampleSource.
var SamplePlayers = []Player{
	{ID: 1, Name: "LeBron James", Team: "LAL", Position: SmallForward},
	{ID: 2, Name: "Stephen Curry", Team: "GSW", Position: PointGuard},
	{ID: 3, Name: "Nikola Jokic", Team: "DEN", Position: Center},
	{ID: 4, Name: "Luka Doncic", Team: "DAL", Position: PointGuard},
	{ID: 5, Name: "Giannis Antetokounmpo", Team: "MIL", Position: PowerForward},
}

// SampleSource generates a plausible stand-in log table: SampleGames
// consecutive daily games per player, the last one on Now.
type SampleSource struct {
	Now     time.Time
	Rand    *rand.Rand
	Players []Player
}

// Load implements Source.
func (s SampleSource) Load(context.Context) ([]Player, []Entry, error) {
	now := s.Now
	if now.IsZero() {
		now = time.Now()
	}
	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	players := s.Players
	if players == nil {
		players = SamplePlayers
	}

	today := Day(now)
	entries := make([]Entry, 0, len(players)*SampleGames)
	for _, p := range players {
		for i := 1; i <= SampleGames; i++ {
			entries = append(entries, sampleGame(rng, p, today.AddDate(0, 0, i-SampleGames)))
		}
	}
	return players, entries, nil
}

func sampleGame(rng *rand.Rand, p Player, date time.Time) Entry {
	// Jokic gets a narrower scoring band.
	pts := between(rng, 15, 40)
	if p.Name == "Nikola Jokic" {
		pts = between(rng, 20, 35)
	}
	reb := between(rng, 3, 10)
	if p.Position.Frontcourt() {
		reb = between(rng, 5, 15)
	}
	ast := between(rng, 3, 8)
	if p.Position == PointGuard || p.Position == SmallForward {
		ast = between(rng, 5, 12)
	}

	return Entry{
		PlayerID: p.ID,
		Date:     date,
		Minutes:  between(rng, 32, 40),
		Points:   float64(pts),
		Rebounds: float64(reb),
		Assists:  float64(ast),
		Steals:   float64(between(rng, 0, 4)),
		Blocks:   float64(between(rng, 0, 3)),
		FGPct:    round2(0.4 + rng.Float64()*0.2),
		ThreePct: round2(0.3 + rng.Float64()*0.15),
	}
}

// between returns an integer in [lo, hi).
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
