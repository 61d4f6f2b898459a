package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

// Opcodes mirrored from the server module.
const (
	OpStartGame   int64 = 1
	OpSubmitCards int64 = 2
	OpCastVote    int64 = 3

	OpGameStarted        int64 = 103
	OpHandDealt          int64 = 104
	OpCardSubmitted      int64 = 106
	OpSubmissionApproved int64 = 108
)

type cardView struct {
	InstanceID  string `json:"instance_id"`
	Title       string `json:"title"`
	DisplayText string `json:"display_text"`
	Severity    string `json:"severity"`
	Type        string `json:"type"`
	Points      int    `json:"points"`
}

func TestFullGameFlow(t *testing.T) {
	// 1. Create 3 clients
	clients := make([]*TestClient, 3)
	for i := 0; i < 3; i++ {
		clients[i] = NewTestClient(t)
		defer clients[i].Close()
	}
	t.Log("Created 3 clients")

	// 2. Client 0 finds or creates a party (host)
	matchID := clients[0].QuickMatch(t, "football", "party")
	t.Logf("Client 0 created/joined match: %s", matchID)

	// 3. Other clients join the SAME match
	for i := 1; i < 3; i++ {
		if _, err := clients[i].Socket.JoinMatch(context.Background(), nil, matchID, nil); err != nil {
			t.Fatalf("Client %d failed to join match: %v", i, err)
		}
		t.Logf("Client %d joined match", i)
	}

	// Wait a bit for presences to sync
	time.Sleep(1 * time.Second)

	// 4. Client 0 (host) starts the game
	t.Log("Client 0 sending StartGame...")
	clients[0].SendJSON(t, matchID, OpStartGame, map[string]interface{}{})

	// 5. All clients receive the public game_started event and a private hand
	hands := make([][]cardView, 3)
	for i, c := range clients {
		t.Logf("Waiting for GameStarted on Client %d...", i)
		c.WaitForMatchState(t, OpGameStarted, 5*time.Second)

		data := c.WaitForMatchState(t, OpHandDealt, 5*time.Second)
		var dealt struct {
			UserID string     `json:"user_id"`
			Hand   []cardView `json:"hand"`
		}
		if err := json.Unmarshal(data.Data, &dealt); err != nil {
			t.Fatalf("Client %d failed to unmarshal hand: %v", i, err)
		}
		if dealt.UserID != c.UserID {
			t.Fatalf("Client %d received a hand addressed to %s", i, dealt.UserID)
		}
		if len(dealt.Hand) != 5 {
			t.Fatalf("Client %d expected 5 cards, got %d", i, len(dealt.Hand))
		}
		hands[i] = dealt.Hand
	}

	// 6. Host submits the first card of their hand
	clients[0].SendJSON(t, matchID, OpSubmitCards, map[string]interface{}{
		"instance_ids": []string{hands[0][0].InstanceID},
	})

	data := clients[1].WaitForMatchState(t, OpCardSubmitted, 5*time.Second)
	var submitted struct {
		SubmissionID string `json:"submission_id"`
		VotesNeeded  int    `json:"votes_needed"`
	}
	if err := json.Unmarshal(data.Data, &submitted); err != nil {
		t.Fatalf("Failed to unmarshal submission: %v", err)
	}
	t.Logf("Submission %s needs %d approvals", submitted.SubmissionID, submitted.VotesNeeded)

	// 7. The other two players approve; quorum of 3 players is 2
	for i := 1; i < 3; i++ {
		clients[i].SendJSON(t, matchID, OpCastVote, map[string]interface{}{
			"submission_id": submitted.SubmissionID,
			"approve":       true,
		})
	}

	clients[0].WaitForMatchState(t, OpSubmissionApproved, 5*time.Second)
	t.Log("TestPassed: Submission approved by table vote.")
}
