package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"sideline/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	replayTokenIssuer = "sideline"
	replayTokenTTL    = 24 * time.Hour
)

// ReplayTokenRequest is the payload for the replay token RPC.
type ReplayTokenRequest struct {
	MatchID string `json:"match_id"`
}

// ReplayTokenResponse carries the signed replay attestation.
type ReplayTokenResponse struct {
	Token string `json:"token"`
}

// rpcReplayToken issues a signed token binding a match's deck seed, sport,
// and mode. Holders can rebuild the deck deterministically and audit the
// game against the cards that were actually possible.
func rpcReplayToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	request := ReplayTokenRequest{}
	if err := json.Unmarshal([]byte(payload), &request); err != nil {
		return "", runtime.NewError("invalid payload", 3) // INVALID_ARGUMENT
	}
	if request.MatchID == "" {
		return "", runtime.NewError("match_id is required", 3)
	}

	secret := ""
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		secret = env["sideline_replay_secret"]
	}
	if secret == "" {
		logger.Error("rpcReplayToken: sideline_replay_secret is not configured")
		return "", runtime.NewError("replay tokens are not available", 13) // INTERNAL
	}

	snapshots := NewNakamaSnapshotAdapter(nk)
	snapshot, _, found, err := snapshots.Load(ctx, request.MatchID)
	if err != nil {
		logger.Error("rpcReplayToken: Failed to load snapshot for %s: %v", request.MatchID, err)
		return "", runtime.NewError("failed to load match state", 13)
	}
	if !found {
		return "", runtime.NewError("match not found", 5) // NOT_FOUND
	}

	service := app.NewReplayTokenService(secret, replayTokenIssuer)
	token, err := service.GenerateToken(snapshot.MatchID, snapshot.DeckSeed, snapshot.Sport, snapshot.Mode, replayTokenTTL)
	if err != nil {
		logger.Error("rpcReplayToken: Failed to generate token for %s: %v", request.MatchID, err)
		return "", runtime.NewError("failed to generate replay token", 13)
	}

	b, _ := json.Marshal(ReplayTokenResponse{Token: token})
	return string(b), nil
}
