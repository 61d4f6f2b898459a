package bot

import (
	"sideline/internal/domain"
)

// Agent is a house voter occupying a roster slot. House voters never hold
// the turn and never submit cards; they only vote on pending submissions so
// small rooms still reach quorum.
type Agent struct {
	ID          string
	Name        string
	ApproveBias float64
}

// NewAgent constructs a house voter from a loaded identity slot.
func NewAgent(slot int, approveBias float64) *Agent {
	identity := GetIdentity(slot)
	return &Agent{
		ID:          identity.UserID,
		Name:        identity.DisplayName,
		ApproveBias: approveBias,
	}
}

// DecideVote chooses approve/reject for a submission. The decision is a
// deterministic function of (agent, submission), so replays of the same
// game reproduce the same house votes.
func (a *Agent) DecideVote(submissionID string) bool {
	rng := domain.NewRand(a.ID + ":" + submissionID)
	return rng.Float64() < a.ApproveBias
}
