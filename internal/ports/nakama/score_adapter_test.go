package nakama

import (
	"context"
	"strconv"
	"testing"

	"sideline/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
)

// mockWallet implements ScoreWallet over an in-memory ledger.
type mockWallet struct {
	wallets map[string]map[string]int64
	updates int
}

func (m *mockWallet) AccountGetId(ctx context.Context, userID string) (*api.Account, error) {
	wallet := "{}"
	if w, ok := m.wallets[userID]; ok {
		if w["season_points"] != 0 {
			wallet = `{"season_points":` + strconv.FormatInt(w["season_points"], 10) + `}`
		}
	}
	return &api.Account{Wallet: wallet}, nil
}

func (m *mockWallet) WalletUpdate(ctx context.Context, userID string, changeset map[string]int64, metadata map[string]interface{}, updateLedger bool) (map[string]int64, map[string]int64, error) {
	if m.wallets == nil {
		m.wallets = make(map[string]map[string]int64)
	}
	if _, ok := m.wallets[userID]; !ok {
		m.wallets[userID] = make(map[string]int64)
	}
	for k, v := range changeset {
		m.wallets[userID][k] += v
	}
	m.updates++
	return nil, m.wallets[userID], nil
}

func TestAwardPointsAndReadBack(t *testing.T) {
	wallet := &mockWallet{}
	adapter := NewNakamaScoreAdapter(wallet)

	err := adapter.AwardPoints(context.Background(), []ports.ScoreUpdate{
		{UserID: "user-1", Points: 12},
		{UserID: "user-1", Points: 3},
		{UserID: "user-2", Points: 0}, // no-op, must not hit the wallet
	})
	if err != nil {
		t.Fatalf("award error: %v", err)
	}
	if wallet.updates != 2 {
		t.Fatalf("wallet updates = %d, want 2 (zero changes skipped)", wallet.updates)
	}

	points, err := adapter.GetSeasonPoints(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get points error: %v", err)
	}
	if points != 15 {
		t.Fatalf("season points = %d, want 15", points)
	}
}

func TestGetSeasonPointsEmptyWallet(t *testing.T) {
	adapter := NewNakamaScoreAdapter(&mockWallet{})
	points, err := adapter.GetSeasonPoints(context.Background(), "new-user")
	if err != nil {
		t.Fatalf("get points error: %v", err)
	}
	if points != 0 {
		t.Fatalf("season points = %d, want 0", points)
	}
}
