package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"sideline/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

const snapshotCollection = "game_snapshots"

// SnapshotStorage is the subset of the Nakama module the snapshot adapter
// needs. runtime.NakamaModule satisfies it.
type SnapshotStorage interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

// NakamaSnapshotAdapter implements ports.SnapshotPort on Nakama storage.
// Optimistic concurrency comes from storage versions: a Save with a stale
// version is rejected instead of clobbering a newer write.
type NakamaSnapshotAdapter struct {
	nk SnapshotStorage
}

// NewNakamaSnapshotAdapter creates a new snapshot adapter.
func NewNakamaSnapshotAdapter(nk SnapshotStorage) *NakamaSnapshotAdapter {
	return &NakamaSnapshotAdapter{nk: nk}
}

// Save writes the snapshot under the match id. version "*" requires that no
// snapshot exists yet; otherwise it must be the version last read.
func (a *NakamaSnapshotAdapter) Save(ctx context.Context, snapshot ports.GameSnapshot, version string) (string, error) {
	if snapshot.MatchID == "" {
		return "", fmt.Errorf("snapshot match id is required")
	}

	value, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	acks, err := a.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      snapshotCollection,
			Key:             snapshot.MatchID,
			Value:           string(value),
			Version:         version,
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if len(acks) == 0 {
		return "", fmt.Errorf("snapshot write returned no ack")
	}

	return acks[0].Version, nil
}

// Load reads the current snapshot for a match. A missing snapshot returns
// ok=false with a nil error.
func (a *NakamaSnapshotAdapter) Load(ctx context.Context, matchID string) (ports.GameSnapshot, string, bool, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: snapshotCollection, Key: matchID},
	})
	if err != nil {
		return ports.GameSnapshot{}, "", false, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if len(objects) == 0 {
		return ports.GameSnapshot{}, "", false, nil
	}

	var snapshot ports.GameSnapshot
	if err := json.Unmarshal([]byte(objects[0].Value), &snapshot); err != nil {
		return ports.GameSnapshot{}, "", false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return snapshot, objects[0].Version, true, nil
}

var _ ports.SnapshotPort = (*NakamaSnapshotAdapter)(nil)
