// Package provider defines canonical data types that all providers normalize
// into. These structs are the contract between provider handlers and the seed
// runner. Providers output these, seeders turn them into game log rows.
package provider

// Player is the canonical player profile shape written to the players table.
type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	TeamCode string `json:"team_code,omitempty"`
}

// GameLine is one player's box score line for one game.
// Stats is a flat map of stat key → value as the provider reported it;
// ExtractValue turns entries into numbers. Player is nil when the line
// carries no usable profile and the seeder has to look it up.
type GameLine struct {
	PlayerID int                    `json:"player_id"`
	Date     string                 `json:"date"` // "YYYY-MM-DD"
	Minutes  string                 `json:"min"`  // "34" or "34:12"
	Player   *Player                `json:"player,omitempty"`
	Stats    map[string]interface{} `json:"stats"`
}
