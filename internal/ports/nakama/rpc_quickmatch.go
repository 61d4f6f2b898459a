package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"sideline/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchRequest is the optional payload for the quickmatch RPC. Missing
// fields fall back to the configured defaults.
type QuickMatchRequest struct {
	Sport string `json:"sport"`
	Mode  string `json:"mode"`
}

// QuickMatchResponse is the payload returned to clients when requesting a party.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	request := QuickMatchRequest{}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			return "", runtime.NewError("invalid payload", 3) // INVALID_ARGUMENT
		}
	}
	if request.Sport == "" {
		request.Sport = config.DefaultSport()
	}
	if request.Mode == "" {
		request.Mode = config.DefaultMode()
	}

	// Find an open lobby for the same sport and mode.
	query := fmt.Sprintf("+label.open:>0 +label.game:%s +label.phase:lobby +label.sport:%s +label.mode:%s",
		labelGameName, request.Sport, request.Mode)

	limit := 10
	authoritative := true
	minSize := 1
	maxSize := config.MaxPlayers() - 1 // leave room for the caller

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		resp := QuickMatchResponse{MatchID: matches[0].MatchId, IsNew: false}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}

	// Create a new party; slot and host assignment happen in MatchJoin
	// (server-authoritative).
	matchID, err := nk.MatchCreate(ctx, MatchNameSideline, map[string]interface{}{
		"sport": request.Sport,
		"mode":  request.Mode,
	})
	if err != nil {
		logger.Error("MatchCreate error: %v", err)
		return "", err
	}

	resp := QuickMatchResponse{MatchID: matchID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}
