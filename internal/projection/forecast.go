package projection

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/albapepper/futurehoops/internal/gamelog"
)

// Point is one dated value in a series.
type Point struct {
	Date  time.Time
	Value float64
}

// MarshalJSON renders the date as YYYY-MM-DD.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date  string  `json:"date"`
		Value float64 `json:"value"`
	}{p.Date.Format(gamelog.DateLayout), p.Value})
}

// Series holds points, rebounds and assists over the same dates.
type Series struct {
	Points   []Point `json:"pts"`
	Rebounds []Point `json:"reb"`
	Assists  []Point `json:"ast"`
}

// Forecast pairs a player's observed series with projected future games.
type Forecast struct {
	PlayerID   int    `json:"player_id"`
	Historical Series `json:"historical"`
	Projected  Series `json:"projected"`
}

// Forecast extends the player's history by horizon daily steps. Every future
// point is the mean of the last TrendWindow observed values times its own
// independent draw from the forecast band, so consecutive points need not
// be monotonic. A horizon of zero or less uses the configured default.
func (e *Engine) Forecast(playerID, horizon int) (Forecast, error) {
	if horizon <= 0 {
		horizon = e.cfg.Horizon
	}
	if _, err := e.store.Player(playerID); err != nil {
		return Forecast{}, err
	}
	games := e.store.EntriesFor(playerID)
	if len(games) == 0 {
		return Forecast{}, fmt.Errorf("player %d: %w", playerID, ErrInsufficientData)
	}

	fc := Forecast{PlayerID: playerID}
	for _, g := range games {
		fc.Historical.Points = append(fc.Historical.Points, Point{g.Date, g.Points})
		fc.Historical.Rebounds = append(fc.Historical.Rebounds, Point{g.Date, g.Rebounds})
		fc.Historical.Assists = append(fc.Historical.Assists, Point{g.Date, g.Assists})
	}

	recent := games
	if len(recent) > e.cfg.TrendWindow {
		recent = recent[len(recent)-e.cfg.TrendWindow:]
	}
	last := games[len(games)-1].Date
	fc.Projected = Series{
		Points:   e.extend(last, horizon, mean(recent, points)),
		Rebounds: e.extend(last, horizon, mean(recent, rebounds)),
		Assists:  e.extend(last, horizon, mean(recent, assists)),
	}
	return fc, nil
}

func (e *Engine) extend(last time.Time, horizon int, base float64) []Point {
	out := make([]Point, horizon)
	for i := range out {
		out[i] = Point{
			Date:  last.AddDate(0, 0, i+1),
			Value: base * e.jitter(e.cfg.Bands.Forecast),
		}
	}
	return out
}
