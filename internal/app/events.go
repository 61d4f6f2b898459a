package app

// EventKind identifies emitted game events for Nakama dispatch.
type EventKind string

const (
	EventPlayerJoined       EventKind = "player_joined"
	EventPlayerLeft         EventKind = "player_left"
	EventGameStarted        EventKind = "game_started"
	EventHandDealt          EventKind = "hand_dealt"
	EventCardDrawn          EventKind = "card_drawn"
	EventCardSubmitted      EventKind = "card_submitted"
	EventVoteCast           EventKind = "vote_cast"
	EventSubmissionApproved EventKind = "submission_approved"
	EventSubmissionRejected EventKind = "submission_rejected"
	EventTurnChanged        EventKind = "turn_changed"
	EventGameEnded          EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

// CardView is the denormalized card data carried on events so clients can
// render without a follow-up fetch.
type CardView struct {
	InstanceID  string `json:"instance_id"`
	Title       string `json:"title"`
	DisplayText string `json:"display_text"`
	Severity    string `json:"severity"`
	Type        string `json:"type"`
	Points      int    `json:"points"`
}

type PlayerJoinedPayload struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Host        bool   `json:"host"`
}

type PlayerLeftPayload struct {
	UserID string `json:"user_id"`
}

type GameStartedPayload struct {
	Sport        string   `json:"sport"`
	Mode         string   `json:"mode"`
	FirstTurnID  string   `json:"first_turn_id"`
	PlayerOrder  []string `json:"player_order"`
	CardsPerHand int      `json:"cards_per_hand"`
}

type HandDealtPayload struct {
	UserID string     `json:"user_id"`
	Hand   []CardView `json:"hand"`
}

type CardDrawnPayload struct {
	UserID string   `json:"user_id"`
	Card   CardView `json:"card"`
}

type CardSubmittedPayload struct {
	SubmissionID  string     `json:"submission_id"`
	SubmittedByID string     `json:"submitted_by_id"`
	SubmitterName string     `json:"submitter_name"`
	Cards         []CardView `json:"cards"`
	VotesNeeded   int        `json:"votes_needed"`
}

type VoteCastPayload struct {
	SubmissionID string `json:"submission_id"`
	VoterID      string `json:"voter_id"`
	VoterName    string `json:"voter_name"`
	Approve      bool   `json:"approve"`
	Approvals    int    `json:"approvals"`
	Rejections   int    `json:"rejections"`
}

type SubmissionResolvedPayload struct {
	SubmissionID  string     `json:"submission_id"`
	SubmittedByID string     `json:"submitted_by_id"`
	SubmitterName string     `json:"submitter_name"`
	Cards         []CardView `json:"cards"`
	PointsAwarded int        `json:"points_awarded"`
	Approvals     int        `json:"approvals"`
	Rejections    int        `json:"rejections"`
}

type TurnChangedPayload struct {
	PreviousTurnID string `json:"previous_turn_id"`
	CurrentTurnID  string `json:"current_turn_id"`
}

type Standing struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
}

type GameEndedPayload struct {
	Standings []Standing `json:"standings"`
}
