package seed

import (
	"context"
	"log/slog"
	"strings"

	"github.com/albapepper/futurehoops/internal/gamelog"
	"github.com/albapepper/futurehoops/internal/provider"
)

// NBASource is the subset of the BallDontLie NBA handler the seeder uses.
type NBASource interface {
	GetGameLines(ctx context.Context, season int, playerIDs []int, fn func(provider.GameLine) error) error
	GetPlayer(ctx context.Context, id int) (provider.Player, error)
}

// flushSize is the number of game logs written per batch.
const flushSize = 100

// SeedNBA fetches a season of box score lines for the given players from
// BallDontLie and writes players and game logs.
// Each player row is written before any of that player's games. Lines without
// an embedded profile are resolved with GetPlayer; when a player cannot be
// written, that player's lines are skipped.
func SeedNBA(ctx context.Context, w Writer, src NBASource, season int, playerIDs []int, logger *slog.Logger) SeedResult {
	var result SeedResult

	logger.Info("Seeding NBA game logs...", "season", season, "players", len(playerIDs))
	written := make(map[int]bool)
	var pending []gamelog.Entry
	count := 0

	err := src.GetGameLines(ctx, season, playerIDs, func(line provider.GameLine) error {
		count++
		ok, seen := written[line.PlayerID]
		if !seen {
			ok = writePlayer(ctx, w, src, line, &result)
			written[line.PlayerID] = ok
		}
		if !ok {
			result.GameLogsSkipped++
			return nil
		}

		entry, ok := GameLogFromLine(line)
		if !ok {
			result.GameLogsSkipped++
			return nil
		}
		pending = append(pending, entry)
		if len(pending) >= flushSize {
			flush(ctx, w, &pending, &result)
			logger.Info("NBA game log progress", "processed", count)
		}
		return nil
	})
	flush(ctx, w, &pending, &result)
	if err != nil {
		result.AddErrorf("fetch NBA game logs: %v", err)
	}

	logger.Info("NBA seed complete", "summary", result.Summary())
	return result
}

func writePlayer(ctx context.Context, w Writer, src NBASource, line provider.GameLine, result *SeedResult) bool {
	profile := line.Player
	if profile == nil {
		p, err := src.GetPlayer(ctx, line.PlayerID)
		if err != nil {
			result.AddErrorf("resolve player %d: %v", line.PlayerID, err)
			return false
		}
		profile = &p
	}
	if err := w.UpsertPlayer(ctx, PlayerFromProvider(*profile)); err != nil {
		result.AddErrorf("upsert player %d: %v", line.PlayerID, err)
		return false
	}
	result.PlayersUpserted++
	return true
}

func flush(ctx context.Context, w Writer, pending *[]gamelog.Entry, result *SeedResult) {
	n, err := w.UpsertGameLogs(ctx, *pending)
	result.GameLogsUpserted += n
	if err != nil {
		result.AddError(err.Error())
	}
	*pending = (*pending)[:0]
}

// PlayerFromProvider maps a canonical provider player to a store player.
func PlayerFromProvider(p provider.Player) gamelog.Player {
	return gamelog.Player{
		ID:       p.ID,
		Name:     p.Name,
		Team:     p.TeamCode,
		Position: NormalizePosition(p.Position),
	}
}

// NormalizePosition maps provider position strings ("G-F", "Center",
// "pg") onto the store's enum, using the first listed position.
func NormalizePosition(s string) gamelog.Position {
	s = strings.ToUpper(strings.TrimSpace(s))
	if first, _, found := strings.Cut(s, "-"); found {
		s = first
	}
	switch s {
	case "GUARD":
		return gamelog.Guard
	case "FORWARD":
		return gamelog.Forward
	case "CENTER":
		return gamelog.Center
	}
	if p := gamelog.Position(s); p.Valid() {
		return p
	}
	return ""
}

// GameLogFromLine converts a box score line to a game log entry. Lines with
// no minutes played (DNP) or an unreadable date are skipped (ok=false).
func GameLogFromLine(line provider.GameLine) (gamelog.Entry, bool) {
	minutes, ok := provider.ParseMinutes(line.Minutes)
	if !ok || minutes == 0 {
		return gamelog.Entry{}, false
	}
	date, err := gamelog.ParseDay(line.Date)
	if err != nil {
		return gamelog.Entry{}, false
	}

	stat := func(key string) float64 {
		v, _ := provider.ExtractValue(line.Stats[key])
		if v < 0 {
			return 0
		}
		return v
	}

	return gamelog.Entry{
		PlayerID: line.PlayerID,
		Date:     date,
		Minutes:  minutes,
		Points:   stat("pts"),
		Rebounds: stat("reb"),
		Assists:  stat("ast"),
		Steals:   stat("stl"),
		Blocks:   stat("blk"),
		FGPct:    provider.Fraction(stat("fg_pct")),
		ThreePct: provider.Fraction(stat("three_pct")),
	}, true
}
