package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/heroiclabs/nakama-common/rtapi"
	"github.com/heroiclabs/nakama-go/v2"
)

const (
	ServerKey = "defaultkey"
	Host      = "127.0.0.1"
	Port      = 7350
)

type TestClient struct {
	Client  *nakama.Client
	Session *nakama.Session
	Socket  *nakama.Socket
	UserID  string
}

func NewTestClient(t *testing.T) *TestClient {
	client := nakama.NewClient(ServerKey, Host, Port, false)

	// Create unique ID
	deviceID := fmt.Sprintf("test_device_%d", time.Now().UnixNano())

	// Authenticate
	session, err := client.AuthenticateDevice(context.Background(), deviceID, true, "")
	if err != nil {
		t.Fatalf("Failed to authenticate: %v", err)
	}

	// Create Socket
	socket := client.NewSocket()
	if err := socket.Connect(context.Background(), session, true); err != nil {
		t.Fatalf("Failed to connect socket: %v", err)
	}

	return &TestClient{
		Client:  client,
		Session: session,
		Socket:  socket,
		UserID:  session.UserId,
	}
}

func (tc *TestClient) Close() {
	if tc.Socket != nil {
		tc.Socket.Close()
	}
}

// QuickMatch calls the 'quick_match' RPC and joins the returned match ID.
func (tc *TestClient) QuickMatch(t *testing.T, sport, mode string) string {
	payload, _ := json.Marshal(map[string]string{"sport": sport, "mode": mode})
	rpc, err := tc.Client.RpcFunc(context.Background(), tc.Session, "quick_match", string(payload))
	if err != nil {
		t.Fatalf("RPC quick_match failed: %v", err)
	}

	var resp struct {
		MatchID string `json:"match_id"`
		IsNew   bool   `json:"is_new"`
	}
	if err := json.Unmarshal([]byte(rpc.Payload), &resp); err != nil {
		t.Fatalf("RPC quick_match returned invalid payload: %v", err)
	}
	if resp.MatchID == "" {
		t.Fatalf("RPC quick_match returned empty match ID")
	}

	// Join Match
	if _, err := tc.Socket.JoinMatch(context.Background(), nil, resp.MatchID, nil); err != nil {
		t.Fatalf("Failed to join match %s: %v", resp.MatchID, err)
	}

	return resp.MatchID
}

// WaitForMatchState waits for a specific opcode from the socket.
func (tc *TestClient) WaitForMatchState(t *testing.T, opCode int64, timeout time.Duration) *rtapi.MatchData {
	ch := make(chan *rtapi.MatchData)

	// Hook into socket (This is simplistic; robust tests might need a better event bus)
	originalHandler := tc.Socket.OnMatchData
	tc.Socket.OnMatchData = func(data *rtapi.MatchData) {
		if data.OpCode == opCode {
			ch <- data
		}
		if originalHandler != nil {
			originalHandler(data)
		}
	}

	select {
	case data := <-ch:
		return data
	case <-time.After(timeout):
		t.Fatalf("Timeout waiting for OpCode %d", opCode)
		return nil
	}
}

// SendJSON marshals and sends a client message into the match.
func (tc *TestClient) SendJSON(t *testing.T, matchID string, opCode int64, request interface{}) {
	payload, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("Failed to marshal opcode %d payload: %v", opCode, err)
	}
	if _, err := tc.Socket.SendMatchState(context.Background(), matchID, opCode, payload, nil); err != nil {
		t.Fatalf("Failed to send opcode %d: %v", opCode, err)
	}
}
