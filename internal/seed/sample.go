package seed

import (
	"context"
	"log/slog"

	"github.com/albapepper/futurehoops/internal/gamelog"
)

// SeedSource copies every player and game log from src into w. Rows
// are validated through a Store first, so invalid input never reaches the
// database.
func SeedSource(ctx context.Context, w Writer, src gamelog.Source, logger *slog.Logger) SeedResult {
	var result SeedResult

	store, err := gamelog.New(ctx, src)
	if err != nil {
		result.AddErrorf("build store: %v", err)
		return result
	}

	for _, p := range store.Players() {
		if err := w.UpsertPlayer(ctx, p); err != nil {
			result.AddErrorf("upsert player %d: %v", p.ID, err)
			continue
		}
		result.PlayersUpserted++

		n, err := w.UpsertGameLogs(ctx, store.EntriesFor(p.ID))
		result.GameLogsUpserted += n
		if err != nil {
			result.AddErrorf("player %d: %v", p.ID, err)
		}
	}

	logger.Info("Seed complete", "summary", result.Summary())
	return result
}
