package ports

import "context"

// GameSnapshot is the persisted engine state for a room, enough to resume
// or audit a game: the deck seed and ordering, what has been drawn, and the
// turn pointer.
type GameSnapshot struct {
	MatchID       string         `json:"match_id"`
	Sport         string         `json:"sport"`
	Mode          string         `json:"mode"`
	DeckSeed      string         `json:"deck_seed"`
	Deck          []int          `json:"deck"`
	DrawnCards    []int          `json:"drawn_cards"`
	CurrentTurnID string         `json:"current_turn_id"`
	Scores        map[string]int `json:"scores"`
}

// SnapshotPort persists engine state between ticks. Implementations must
// provide at-most-one-writer semantics per match via the version argument:
// a Save with a stale version fails rather than clobbering a newer write.
type SnapshotPort interface {
	// Save writes the snapshot. version is the last version read, or "*" to
	// require that no snapshot exists yet. Returns the new version.
	Save(ctx context.Context, snapshot GameSnapshot, version string) (string, error)

	// Load reads the current snapshot and its version. A missing snapshot
	// returns ok=false with a nil error.
	Load(ctx context.Context, matchID string) (GameSnapshot, string, bool, error)
}
