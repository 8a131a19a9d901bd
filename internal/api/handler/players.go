package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/albapepper/futurehoops/internal/api/respond"
	"github.com/albapepper/futurehoops/internal/cache"
	"github.com/albapepper/futurehoops/internal/gamelog"
)

// gameLogView is the JSON shape of one game log row.
type gameLogView struct {
	Date     string  `json:"date"`
	Minutes  int     `json:"min"`
	Points   float64 `json:"pts"`
	Rebounds float64 `json:"reb"`
	Assists  float64 `json:"ast"`
	Steals   float64 `json:"stl"`
	Blocks   float64 `json:"blk"`
	FGPct    float64 `json:"fg_pct"`
	ThreePct float64 `json:"three_pct"`
}

// ListPlayers returns every player in the store.
// @Summary List players
// @Description Returns the full roster ordered by player ID.
// @Tags players
// @Produce json
// @Success 200 {array} gamelog.Player
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "players", cache.TTLRoster, func() (interface{}, error) {
		return h.store.Players(), nil
	})
}

// GetPlayer returns a single player profile.
// @Summary Get player
// @Description Returns a player's name, team and position.
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} gamelog.Player
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	p, err := h.store.Player(id)
	if err != nil {
		writeEngineError(w, id, err)
		return
	}
	h.serveCached(w, r, fmt.Sprintf("player:%d", id), cache.TTLRoster, func() (interface{}, error) {
		return p, nil
	})
}

// GetGameLogs returns a player's games in date order. A known player with no
// games gets an empty list.
// @Summary Get player game logs
// @Description Returns the player's game log rows ordered by date ascending.
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID}/gamelogs [get]
func (h *Handler) GetGameLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	if _, err := h.store.Player(id); err != nil {
		writeEngineError(w, id, err)
		return
	}
	h.serveCached(w, r, fmt.Sprintf("gamelogs:%d", id), cache.TTLGameLogs, func() (interface{}, error) {
		games := h.store.EntriesFor(id)
		rows := make([]gameLogView, len(games))
		for i, g := range games {
			rows[i] = gameLogView{
				Date:     g.Date.Format(gamelog.DateLayout),
				Minutes:  g.Minutes,
				Points:   g.Points,
				Rebounds: g.Rebounds,
				Assists:  g.Assists,
				Steals:   g.Steals,
				Blocks:   g.Blocks,
				FGPct:    g.FGPct,
				ThreePct: g.ThreePct,
			}
		}
		return map[string]interface{}{
			"player_id": id,
			"games":     rows,
		}, nil
	})
}

// GetSnapshot returns the whole store as a split-oriented tabular payload.
// @Summary Get game log snapshot
// @Description Returns players and game logs as column/index/data tables, suitable for caching between requests.
// @Tags gamelogs
// @Produce json
// @Success 200 {object} gamelog.Snapshot
// @Router /gamelogs/snapshot [get]
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "snapshot", cache.TTLSnapshot, func() (interface{}, error) {
		return h.store.Snapshot(), nil
	})
}

// serveCached serves key from the cache, honoring If-None-Match, or builds,
// marshals and caches the value.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, build func() (interface{}, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.NotModified(w, etag)
			return
		}
		respond.Cached(w, data, etag, ttl, true)
		return
	}

	v, err := build()
	if err != nil {
		respond.ErrorDetail(w, http.StatusInternalServerError, "INTERNAL", "Failed to build response", err.Error())
		return
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		respond.ErrorDetail(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode response", err.Error())
		return
	}

	etag := h.cache.Set(key, buf.Bytes(), ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.NotModified(w, etag)
		return
	}
	respond.Cached(w, buf.Bytes(), etag, ttl, false)
}
