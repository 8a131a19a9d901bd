package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/futurehoops/internal/config"
	"github.com/albapepper/futurehoops/internal/gamelog"
)

// Writer persists seeded rows.
type Writer interface {
	UpsertPlayer(ctx context.Context, player gamelog.Player) error
	UpsertGameLogs(ctx context.Context, entries []gamelog.Entry) (int, error)
}

// PoolWriter is the Postgres Writer.
type PoolWriter struct {
	Pool *pgxpool.Pool
}

// UpsertPlayer writes a player profile to the players table.
func (w PoolWriter) UpsertPlayer(ctx context.Context, player gamelog.Player) error {
	_, err := w.Pool.Exec(ctx, `
		INSERT INTO `+config.PlayersTable+` (id, name, team, position)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			team = COALESCE(NULLIF(EXCLUDED.team, ''), `+config.PlayersTable+`.team),
			position = COALESCE(NULLIF(EXCLUDED.position, ''), `+config.PlayersTable+`.position),
			updated_at = NOW()`,
		player.ID, player.Name, player.Team, string(player.Position),
	)
	return err
}

const upsertGameLogSQL = `
	INSERT INTO ` + config.GameLogsTable + ` (
		player_id, game_date, minutes, pts, reb, ast, stl, blk, fg_pct, three_pct
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	ON CONFLICT (player_id, game_date) DO UPDATE SET
		minutes = EXCLUDED.minutes,
		pts = EXCLUDED.pts,
		reb = EXCLUDED.reb,
		ast = EXCLUDED.ast,
		stl = EXCLUDED.stl,
		blk = EXCLUDED.blk,
		fg_pct = EXCLUDED.fg_pct,
		three_pct = EXCLUDED.three_pct,
		updated_at = NOW()`

// UpsertGameLogs writes entries in a single batch. Returns the number of
// rows written before the first failure.
func (w PoolWriter) UpsertGameLogs(ctx context.Context, entries []gamelog.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(upsertGameLogSQL,
			e.PlayerID, gamelog.Day(e.Date), e.Minutes,
			e.Points, e.Rebounds, e.Assists, e.Steals, e.Blocks,
			e.FGPct, e.ThreePct,
		)
	}

	br := w.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for i, e := range entries {
		if _, err := br.Exec(); err != nil {
			return i, fmt.Errorf("upsert game log %d/%s: %w", e.PlayerID, e.Date.Format(gamelog.DateLayout), err)
		}
	}
	return len(entries), nil
}
