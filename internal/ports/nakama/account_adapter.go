package nakama

import (
	"context"

	"sideline/internal/ports"
)

// AccountUpdater is the subset of the Nakama module the account adapter
// needs. runtime.NakamaModule satisfies it.
type AccountUpdater interface {
	AccountUpdateId(ctx context.Context, userID, username string, metadata map[string]interface{}, displayName, timezone, location, langTag, avatarUrl string) error
}

// NakamaAccountAdapter implements ports.AccountPort using Nakama's account API.
type NakamaAccountAdapter struct {
	nk AccountUpdater
}

// NewNakamaAccountAdapter creates a new account adapter.
func NewNakamaAccountAdapter(nk AccountUpdater) *NakamaAccountAdapter {
	return &NakamaAccountAdapter{nk: nk}
}

// UpdateProfile updates the account username and display name in Nakama.
func (a *NakamaAccountAdapter) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	return a.nk.AccountUpdateId(ctx, userID, username, nil, displayName, "", "", "", "")
}

var _ ports.AccountPort = (*NakamaAccountAdapter)(nil)
