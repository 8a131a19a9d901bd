package projection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/futurehoops/internal/gamelog"
	"github.com/albapepper/futurehoops/internal/projection"
)

// fixedRand returns a fixed fraction of every requested range.
type fixedRand float64

func (f fixedRand) Uniform(lo, hi float64) float64 { return lo + float64(f)*(hi-lo) }

// seqRand hands out fractions in order, cycling.
type seqRand struct {
	fracs []float64
	i     int
}

func (s *seqRand) Uniform(lo, hi float64) float64 {
	f := s.fracs[s.i%len(s.fracs)]
	s.i++
	return lo + f*(hi-lo)
}

var start = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

// fivePointGames builds the example log: points [20,22,18,25,19].
func fivePointGames(playerID int) []gamelog.Entry {
	pts := []float64{20, 22, 18, 25, 19}
	out := make([]gamelog.Entry, len(pts))
	for i, p := range pts {
		out[i] = gamelog.Entry{
			PlayerID: playerID,
			Date:     start.AddDate(0, 0, i),
			Points:   p,
			Rebounds: float64(5 + i),
			Assists:  float64(10 - i),
			Steals:   float64(i % 3),
			Blocks:   1,
			FGPct:    0.5,
		}
	}
	return out
}

func newStore(t *testing.T) *gamelog.Store {
	t.Helper()
	players := []gamelog.Player{
		{ID: 1, Name: "Five Games", Team: "LAL", Position: gamelog.SmallForward},
		{ID: 2, Name: "No Games", Team: "GSW", Position: gamelog.PointGuard},
		{ID: 3, Name: "One Game", Team: "DEN", Position: gamelog.Center},
	}
	entries := append(fivePointGames(1), gamelog.Entry{
		PlayerID: 3, Date: start, Points: 30, Rebounds: 12, Assists: 9, Steals: 1, Blocks: 2,
	})
	s, err := gamelog.NewFromData(players, entries)
	require.NoError(t, err)
	return s
}

func TestProjectMidpointIsTheMean(t *testing.T) {
	e := projection.New(newStore(t), fixedRand(0.5), projection.DefaultConfig())

	p, err := e.Project(1, 0)
	require.NoError(t, err)
	assert.Equal(t, projection.Projection{
		PlayerID:   1,
		Games:      5,
		Points:     21,  // 104/5 = 20.8
		Rebounds:   7,   // 35/5
		Assists:    8,   // 40/5
		Steals:     0.8, // (0+1+2+0+1)/5
		Blocks:     1,
		Confidence: 83, // 82.5 rounds half away from zero
	}, p)
}

func TestProjectBandEdges(t *testing.T) {
	low := projection.New(newStore(t), fixedRand(0), projection.DefaultConfig())
	p, err := low.Project(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 19.0, p.Points) // 20.8 * 0.9 = 18.72
	assert.Equal(t, 0.6, p.Steals)  // 0.8 * 0.8 = 0.64
	assert.Equal(t, 70, p.Confidence)

	high := projection.New(newStore(t), fixedRand(1), projection.DefaultConfig())
	p, err = high.Project(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 23.0, p.Points) // 20.8 * 1.1 = 22.88
	assert.Equal(t, 1.0, p.Steals)  // 0.8 * 1.2 = 0.96
	assert.Equal(t, 95, p.Confidence)
}

func TestProjectBoundsWithRealRand(t *testing.T) {
	e := projection.New(newStore(t), projection.NewRand(42), projection.DefaultConfig())

	for i := 0; i < 200; i++ {
		for _, id := range []int{1, 3} {
			p, err := e.Project(id, 5)
			require.NoError(t, err)
			for _, v := range []float64{p.Points, p.Rebounds, p.Assists, p.Steals, p.Blocks} {
				assert.GreaterOrEqual(t, v, 0.0)
			}
			assert.GreaterOrEqual(t, p.Confidence, 70)
			assert.LessOrEqual(t, p.Confidence, 95)
		}
	}
}

func TestProjectShortWindowDegrades(t *testing.T) {
	e := projection.New(newStore(t), fixedRand(0.5), projection.DefaultConfig())

	p, err := e.Project(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Games)
	assert.Equal(t, 30.0, p.Points)
	assert.Equal(t, 2.0, p.Blocks)
}

func TestProjectWindow(t *testing.T) {
	e := projection.New(newStore(t), fixedRand(0.5), projection.DefaultConfig())

	p, err := e.Project(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Games)
	assert.Equal(t, 22.0, p.Points) // (25+19)/2
}

func TestProjectErrors(t *testing.T) {
	e := projection.New(newStore(t), fixedRand(0.5), projection.DefaultConfig())

	_, err := e.Project(2, 5)
	assert.ErrorIs(t, err, projection.ErrInsufficientData)
	assert.NotErrorIs(t, err, gamelog.ErrUnknownPlayer)

	_, err = e.Project(404, 5)
	assert.ErrorIs(t, err, gamelog.ErrUnknownPlayer)
	assert.NotErrorIs(t, err, projection.ErrInsufficientData)
}

func TestProjectCustomBands(t *testing.T) {
	cfg := projection.DefaultConfig()
	cfg.Bands.Major = projection.Band{Lo: 2, Hi: 2}
	cfg.Bands.Confidence = projection.Band{Lo: 50, Hi: 50}
	e := projection.New(newStore(t), fixedRand(0.3), cfg)

	p, err := e.Project(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 42.0, p.Points) // 41.6
	assert.Equal(t, 50, p.Confidence)
}

func TestAverages(t *testing.T) {
	e := projection.New(newStore(t), fixedRand(0), projection.DefaultConfig())

	a, err := e.Averages(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Games)
	assert.InDelta(t, 62.0/3, a.Points, 1e-9)
	assert.InDelta(t, 8.0, a.Rebounds, 1e-9)
	assert.InDelta(t, 0.5, a.FGPct, 1e-9)

	_, err = e.Averages(2, 5)
	assert.ErrorIs(t, err, projection.ErrInsufficientData)
}

func TestNewFillsDefaults(t *testing.T) {
	e := projection.New(newStore(t), nil, projection.Config{})
	assert.Equal(t, projection.DefaultConfig(), e.Config())
}
