package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"sideline/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
)

// ScoreWallet is the subset of the Nakama module the score adapter needs.
// runtime.NakamaModule satisfies it.
type ScoreWallet interface {
	AccountGetId(ctx context.Context, userID string) (*api.Account, error)
	WalletUpdate(ctx context.Context, userID string, changeset map[string]int64, metadata map[string]interface{}, updateLedger bool) (map[string]int64, map[string]int64, error)
}

// NakamaScoreAdapter implements ports.ScorePort using Nakama's wallet system.
// Season points live under the "season_points" wallet key.
type NakamaScoreAdapter struct {
	nk ScoreWallet
}

// NewNakamaScoreAdapter creates a new score adapter.
func NewNakamaScoreAdapter(nk ScoreWallet) *NakamaScoreAdapter {
	return &NakamaScoreAdapter{nk: nk}
}

// GetSeasonPoints retrieves the current season point balance for a user.
func (a *NakamaScoreAdapter) GetSeasonPoints(ctx context.Context, userID string) (int64, error) {
	account, err := a.nk.AccountGetId(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}

	var wallet map[string]int64
	if err := json.Unmarshal([]byte(account.Wallet), &wallet); err != nil {
		return 0, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}

	return wallet["season_points"], nil
}

// AwardPoints applies multiple season point changes.
func (a *NakamaScoreAdapter) AwardPoints(ctx context.Context, updates []ports.ScoreUpdate) error {
	for _, update := range updates {
		if update.Points == 0 {
			continue
		}

		changes := map[string]int64{
			"season_points": update.Points,
		}

		_, _, err := a.nk.WalletUpdate(ctx, update.UserID, changes, update.Metadata, true)
		if err != nil {
			return fmt.Errorf("failed to update season points for user %s: %w", update.UserID, err)
		}
	}
	return nil
}

var _ ports.ScorePort = (*NakamaScoreAdapter)(nil)
