package ports

import "context"

// GameResult summarizes one finished game for a single participant.
type GameResult struct {
	MatchID string
	Sport   string
	Mode    string
	Score   int
	Won     bool
}

// StatsPort defines the interface for per-user lifetime stats.
type StatsPort interface {
	// GrantStarterStatsOnce initializes a stats record for a new user.
	// Returns false with a nil error when the record already existed.
	GrantStarterStatsOnce(ctx context.Context, userID string) (bool, error)

	// RecordGameResult folds one game's outcome into a user's stats.
	RecordGameResult(ctx context.Context, userID string, result GameResult) error
}
