package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sideline/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	statsCollection = "stats"
	statsKey        = "lifetime_v1"
)

// lifetimeStats is the stored stats record per user.
type lifetimeStats struct {
	GamesPlayed int    `json:"games_played"`
	GamesWon    int    `json:"games_won"`
	TotalPoints int    `json:"total_points"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NakamaStatsAdapter implements ports.StatsPort on Nakama storage.
type NakamaStatsAdapter struct {
	nk SnapshotStorage
}

// NewNakamaStatsAdapter creates a new stats adapter.
func NewNakamaStatsAdapter(nk SnapshotStorage) *NakamaStatsAdapter {
	return &NakamaStatsAdapter{nk: nk}
}

// GrantStarterStatsOnce creates a zeroed stats record for a new user. The
// conditional write (version "*") makes the grant idempotent: a second call
// observes the version rejection and reports the record as pre-existing.
func (a *NakamaStatsAdapter) GrantStarterStatsOnce(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("userID is required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	value, err := json.Marshal(lifetimeStats{CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return false, fmt.Errorf("failed to marshal stats record: %w", err)
	}

	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      statsCollection,
			Key:             statsKey,
			UserID:          userID,
			Value:           string(value),
			Version:         "*",
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create stats record: %w", err)
	}

	return true, nil
}

// RecordGameResult folds one game's outcome into a user's stats. The write
// is guarded by the version read so concurrent matches cannot lose updates.
func (a *NakamaStatsAdapter) RecordGameResult(ctx context.Context, userID string, result ports.GameResult) error {
	if userID == "" {
		return fmt.Errorf("userID is required")
	}

	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: statsCollection, Key: statsKey, UserID: userID},
	})
	if err != nil {
		return fmt.Errorf("failed to read stats record: %w", err)
	}

	stats := lifetimeStats{}
	version := "*"
	if len(objects) > 0 {
		if err := json.Unmarshal([]byte(objects[0].Value), &stats); err != nil {
			return fmt.Errorf("failed to unmarshal stats record: %w", err)
		}
		version = objects[0].Version
	}

	stats.GamesPlayed++
	if result.Won {
		stats.GamesWon++
	}
	stats.TotalPoints += result.Score
	stats.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	value, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats record: %w", err)
	}

	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      statsCollection,
			Key:             statsKey,
			UserID:          userID,
			Value:           string(value),
			Version:         version,
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write stats record: %w", err)
	}

	return nil
}

var _ ports.StatsPort = (*NakamaStatsAdapter)(nil)
