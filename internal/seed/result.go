// Package seed writes players and game logs into Postgres from the sample
// generator or the BallDontLie provider.
package seed

import "fmt"

// SeedResult tracks counts and errors from a seeding operation.
type SeedResult struct {
	PlayersUpserted  int
	GameLogsUpserted int
	GameLogsSkipped  int
	Errors           []string
}

// Add merges another SeedResult into this one.
func (r *SeedResult) Add(other SeedResult) {
	r.PlayersUpserted += other.PlayersUpserted
	r.GameLogsUpserted += other.GameLogsUpserted
	r.GameLogsSkipped += other.GameLogsSkipped
	r.Errors = append(r.Errors, other.Errors...)
}

// AddError records an error message.
func (r *SeedResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddErrorf records a formatted error message.
func (r *SeedResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seed operation.
func (r *SeedResult) Summary() string {
	return fmt.Sprintf(
		"players=%d game_logs=%d skipped=%d errors=%d",
		r.PlayersUpserted, r.GameLogsUpserted, r.GameLogsSkipped,
		len(r.Errors),
	)
}
