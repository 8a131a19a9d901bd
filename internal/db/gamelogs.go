package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/futurehoops/internal/config"
	"github.com/albapepper/futurehoops/internal/gamelog"
)

var (
	listPlayersSQL = "SELECT id, name, team, position FROM " + config.PlayersTable + " ORDER BY id"

	listGameLogsSQL = `SELECT player_id, game_date, minutes, pts, reb, ast, stl, blk, fg_pct, three_pct
		FROM ` + config.GameLogsTable + ` ORDER BY player_id, game_date`
)

// Load implements gamelog.Source by reading every player and game log row.
func (p *Pool) Load(ctx context.Context) ([]gamelog.Player, []gamelog.Entry, error) {
	rows, err := p.Query(ctx, listPlayersSQL)
	if err != nil {
		return nil, nil, fmt.Errorf("query players: %w", err)
	}
	players, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (gamelog.Player, error) {
		var pl gamelog.Player
		var pos string
		err := row.Scan(&pl.ID, &pl.Name, &pl.Team, &pos)
		pl.Position = gamelog.Position(pos)
		return pl, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan players: %w", err)
	}

	rows, err = p.Query(ctx, listGameLogsSQL)
	if err != nil {
		return nil, nil, fmt.Errorf("query game logs: %w", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (gamelog.Entry, error) {
		var e gamelog.Entry
		var date time.Time
		err := row.Scan(&e.PlayerID, &date, &e.Minutes,
			&e.Points, &e.Rebounds, &e.Assists, &e.Steals, &e.Blocks,
			&e.FGPct, &e.ThreePct)
		e.Date = gamelog.Day(date)
		return e, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan game logs: %w", err)
	}

	return players, entries, nil
}
