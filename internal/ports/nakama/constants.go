package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create an
	// open party for a sport/mode combination.
	RpcQuickMatch = "quick_match"

	// RpcReplayToken is the Nakama RPC id clients call to obtain a signed
	// replay attestation for a match.
	RpcReplayToken = "replay_token"

	// MatchNameSideline is the authoritative match handler name registered with Nakama.
	MatchNameSideline = "sideline_party"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame      int64 = 1
	OpSubmitCards    int64 = 2
	OpCastVote       int64 = 3
	OpDiscardCard    int64 = 4
	OpRequestNewGame int64 = 5

	// Server -> Client events
	OpPlayerJoined       int64 = 101
	OpPlayerLeft         int64 = 102
	OpGameStarted        int64 = 103
	OpHandDealt          int64 = 104 // send privately
	OpCardDrawn          int64 = 105 // send privately
	OpCardSubmitted      int64 = 106
	OpVoteCast           int64 = 107
	OpSubmissionApproved int64 = 108
	OpSubmissionRejected int64 = 109
	OpTurnChanged        int64 = 110
	OpGameEnded          int64 = 111
	OpGameError          int64 = 120
)
