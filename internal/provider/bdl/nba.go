package bdl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/albapepper/futurehoops/internal/provider"
)

const nbaBaseURL = "https://api.balldontlie.io/v1"

// NBAHandler fetches and normalizes NBA players and box score lines from
// BallDontLie.
type NBAHandler struct {
	client *Client
	logger *slog.Logger
}

// NewNBAHandler creates an NBA handler with the given API key.
func NewNBAHandler(apiKey string, logger *slog.Logger) *NBAHandler {
	return NewNBAHandlerWithBaseURL(nbaBaseURL, apiKey, logger)
}

// NewNBAHandlerWithBaseURL points the handler at a different host (tests,
// proxies).
func NewNBAHandlerWithBaseURL(baseURL, apiKey string, logger *slog.Logger) *NBAHandler {
	return &NBAHandler{
		client: NewClient(baseURL, apiKey, 600, logger),
		logger: logger,
	}
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

type bdlTeamRaw struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
}

type bdlPlayerRaw struct {
	ID        int         `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Position  string      `json:"position"`
	Team      *bdlTeamRaw `json:"team"`
}

// GetPlayer fetches a single player profile.
func (h *NBAHandler) GetPlayer(ctx context.Context, id int) (provider.Player, error) {
	resp, err := h.client.get(ctx, "/players/"+strconv.Itoa(id), nil)
	if err != nil {
		return provider.Player{}, fmt.Errorf("fetch NBA player %d: %w", id, err)
	}

	var raw bdlPlayerRaw
	if err := json.Unmarshal(resp.Data, &raw); err != nil {
		return provider.Player{}, fmt.Errorf("decode NBA player %d: %w", id, err)
	}
	return normalizeNBAPlayer(raw), nil
}

func normalizeNBAPlayer(raw bdlPlayerRaw) provider.Player {
	name := strings.TrimSpace(raw.FirstName + " " + raw.LastName)
	if name == "" {
		name = fmt.Sprintf("Player %d", raw.ID)
	}

	var team string
	if raw.Team != nil {
		team = raw.Team.Abbreviation
	}

	return provider.Player{
		ID:       raw.ID,
		Name:     name,
		Position: raw.Position,
		TeamCode: team,
	}
}

// --------------------------------------------------------------------------
// Game lines (cursor-paginated /stats)
// --------------------------------------------------------------------------

type bdlGameLineRaw struct {
	ID     int          `json:"id"`
	Min    string       `json:"min"`
	Pts    interface{}  `json:"pts"`
	Reb    interface{}  `json:"reb"`
	Ast    interface{}  `json:"ast"`
	Stl    interface{}  `json:"stl"`
	Blk    interface{}  `json:"blk"`
	FGPct  interface{}  `json:"fg_pct"`
	FG3Pct interface{}  `json:"fg3_pct"`
	Player bdlPlayerRaw `json:"player"`
	Team   *bdlTeamRaw  `json:"team"`
	Game   struct {
		ID   int    `json:"id"`
		Date string `json:"date"`
	} `json:"game"`
}

// GetGameLines iterates every box score line for the given players and
// season, calling fn for each.
func (h *NBAHandler) GetGameLines(ctx context.Context, season int, playerIDs []int, fn func(provider.GameLine) error) error {
	params := url.Values{
		"seasons[]": {strconv.Itoa(season)},
		"per_page":  {"100"},
	}
	for _, id := range playerIDs {
		params.Add("player_ids[]", strconv.Itoa(id))
	}

	for {
		resp, err := h.client.get(ctx, "/stats", params)
		if err != nil {
			return fmt.Errorf("fetch NBA game lines: %w", err)
		}

		var raw []bdlGameLineRaw
		if err := json.Unmarshal(resp.Data, &raw); err != nil {
			return fmt.Errorf("decode NBA game lines: %w", err)
		}

		for _, r := range raw {
			if err := fn(normalizeNBAGameLine(r)); err != nil {
				return err
			}
		}

		if resp.Meta.NextCursor == nil {
			break
		}
		params.Set("cursor", strconv.Itoa(*resp.Meta.NextCursor))
	}
	return nil
}

func normalizeNBAGameLine(raw bdlGameLineRaw) provider.GameLine {
	stats := make(map[string]interface{}, 7)
	for k, v := range map[string]interface{}{
		"pts": raw.Pts, "reb": raw.Reb, "ast": raw.Ast,
		"stl": raw.Stl, "blk": raw.Blk,
		"fg_pct": raw.FGPct, "three_pct": raw.FG3Pct,
	} {
		if v != nil {
			stats[k] = v
		}
	}

	date := raw.Game.Date
	if len(date) > 10 {
		date = date[:10]
	}

	line := provider.GameLine{
		PlayerID: raw.Player.ID,
		Date:     date,
		Minutes:  raw.Min,
		Stats:    stats,
	}
	// Some /stats rows embed only the player id.
	if raw.Player.FirstName != "" || raw.Player.LastName != "" {
		player := normalizeNBAPlayer(raw.Player)
		if player.TeamCode == "" && raw.Team != nil {
			player.TeamCode = raw.Team.Abbreviation
		}
		line.Player = &player
	}
	return line
}
