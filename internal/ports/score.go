package ports

import "context"

// ScoreUpdate represents a single season-points change for a user.
type ScoreUpdate struct {
	UserID   string
	Points   int64
	Metadata map[string]interface{}
}

// ScorePort defines the interface for awarding season points.
type ScorePort interface {
	// GetSeasonPoints retrieves the current season point balance for a user.
	GetSeasonPoints(ctx context.Context, userID string) (int64, error)

	// AwardPoints applies multiple point changes. Used when a submission is
	// approved and at game end to settle standings.
	AwardPoints(ctx context.Context, updates []ScoreUpdate) error
}
