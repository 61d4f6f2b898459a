package domain

// Phase represents the lifecycle stage of a party room.
type Phase string

const (
	// PhaseLobby is the pre-game state where players can join.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the active game state.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a game concludes.
	PhaseEnded Phase = "ended"
)

// CardStatus is the lifecycle status of a dealt card instance.
type CardStatus string

const (
	CardDrawn     CardStatus = "drawn"
	CardSubmitted CardStatus = "submitted"
	CardResolved  CardStatus = "resolved"
	CardDiscarded CardStatus = "discarded"
)

// CanTransition reports whether a status change is legal. Cards move
// drawn -> submitted -> resolved, or drawn -> discarded; a rejected
// submission returns its cards to drawn.
func (s CardStatus) CanTransition(to CardStatus) bool {
	switch s {
	case CardDrawn:
		return to == CardSubmitted || to == CardDiscarded
	case CardSubmitted:
		return to == CardResolved || to == CardDrawn
	default:
		return false
	}
}

// CardInstance is a dealt card bound to a player. The engine dictates the
// valid status transitions; the surrounding layer owns storage.
type CardInstance struct {
	ID        string     `json:"id"`
	CardIndex int        `json:"card_index"`
	OwnerID   string     `json:"owner_id"`
	Status    CardStatus `json:"status"`
}

// SubmissionStatus is the resolution state of a pending vote unit.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Vote is one player's recorded choice on a submission, including which of
// the submission's card instances they selected as valid.
type Vote struct {
	Approve  bool            `json:"approve"`
	Selected map[string]bool `json:"selected,omitempty"` // card instance id -> chosen
}

// Submission wraps one or more card instances presented for a room-wide
// vote. Votes are keyed by voter id, so a voter casts at most one vote; the
// submitter never appears in Votes (enforced by the caller recording votes).
type Submission struct {
	ID              string           `json:"id"`
	CardInstanceIDs []string         `json:"card_instance_ids"`
	SubmittedByID   string           `json:"submitted_by_id"`
	Votes           map[string]Vote  `json:"votes"`
	Status          SubmissionStatus `json:"status"`
}

// Tally counts approvals and rejections from the recorded votes.
func (s *Submission) Tally() (approvals, rejections int) {
	for _, v := range s.Votes {
		if v.Approve {
			approvals++
		} else {
			rejections++
		}
	}
	return approvals, rejections
}

// GameState is the live engine state for one room. One exists per active
// room; it is replaced on restart and mutated on draw, vote resolution, and
// discard. Callers must serialize read-modify-write per room.
type GameState struct {
	Sport              Sport          `json:"sport"`
	Mode               Mode           `json:"mode"`
	DeckSeed           string         `json:"deck_seed"`
	Deck               []int          `json:"deck"`
	Drawn              map[int]bool   `json:"drawn"`
	CurrentTurnID      string         `json:"current_turn_id"`
	ActiveSubmissionID string         `json:"active_submission_id,omitempty"`
	Scores             map[string]int `json:"scores"`
}
