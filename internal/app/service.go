package app

import (
	"errors"
	"sort"

	"sideline/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrNoPlayers         = errors.New("cannot start a game with no players")
	ErrUnknownSport      = errors.New("no card catalog for sport")
	ErrNotPlaying        = errors.New("game not in playing phase")
	ErrUnknownPlayer     = errors.New("player not found")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrUnknownCard       = errors.New("card instance not found")
	ErrCardNotPlayable   = errors.New("card is not in a playable state")
	ErrSubmissionPending = errors.New("another submission is awaiting votes")
	ErrUnknownSubmission = errors.New("submission not found")
	ErrAlreadyResolved   = errors.New("submission already resolved")
	ErrOwnSubmission     = errors.New("cannot vote on your own submission")
	ErrAlreadyVoted      = errors.New("player already voted on this submission")
)

// Player holds per-room state for a participant.
type Player struct {
	UserID      string
	DisplayName string
	Score       int
}

// Game is the authoritative aggregate for one room's session: the engine
// state plus the roster, dealt card instances, and submissions. Callers must
// serialize access per room; the Nakama match loop provides that naturally.
type Game struct {
	Phase       domain.Phase
	State       *domain.GameState
	PlayerOrder []string
	Players     map[string]*Player
	Instances   map[string]*domain.CardInstance
	Submissions map[string]*domain.Submission
}

// Hand returns the instances currently held (status drawn) by a player, in
// no particular order.
func (g *Game) Hand(userID string) []*domain.CardInstance {
	var out []*domain.CardInstance
	for _, inst := range g.Instances {
		if inst.OwnerID == userID && inst.Status == domain.CardDrawn {
			out = append(out, inst)
		}
	}
	return out
}

// AddObserverVoter registers a participant who may vote on submissions but
// is not part of the turn order, holds no hand, and does not count toward
// quorum. Used for house voters in small rooms.
func (g *Game) AddObserverVoter(userID, displayName string) {
	if _, ok := g.Players[userID]; ok {
		return
	}
	g.Players[userID] = &Player{UserID: userID, DisplayName: displayName}
}

// Service contains the party-game use-cases operating on Game aggregates.
type Service struct {
	handSize int
	deckSize int
}

// NewService constructs a Service. Non-positive sizes fall back to a 5-card
// hand over a 50-card deck.
func NewService(handSize, deckSize int) *Service {
	if handSize <= 0 {
		handSize = 5
	}
	if deckSize <= 0 {
		deckSize = 50
	}
	return &Service{handSize: handSize, deckSize: deckSize}
}

// StartGame builds the weighted deck for the room and deals opening hands.
// playerIDs is the roster in seat order (empty strings skipped); names maps
// user id to display name. The deck seed is typically roomID plus a start
// counter so restarts reshuffle differently but stay replayable.
func (s *Service) StartGame(playerIDs []string, names map[string]string, sport domain.Sport, mode domain.Mode, seed string) (*Game, []Event, error) {
	var order []string
	for _, id := range playerIDs {
		if id != "" {
			order = append(order, id)
		}
	}
	if len(order) == 0 {
		return nil, nil, ErrNoPlayers
	}

	catalog := domain.Catalog(sport)
	if len(catalog) == 0 {
		return nil, nil, ErrUnknownSport
	}

	deck := domain.BuildModeWeightedDeck(seed, domain.Severities(catalog), mode, s.deckSize)
	state := &domain.GameState{
		Sport:         sport,
		Mode:          mode,
		DeckSeed:      seed,
		Deck:          deck,
		Drawn:         make(map[int]bool),
		CurrentTurnID: order[0],
		Scores:        make(map[string]int),
	}

	game := &Game{
		Phase:       domain.PhasePlaying,
		State:       state,
		PlayerOrder: order,
		Players:     make(map[string]*Player, len(order)),
		Instances:   make(map[string]*domain.CardInstance),
		Submissions: make(map[string]*domain.Submission),
	}

	events := make([]Event, 0, len(order)+1)
	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			Sport:        string(sport),
			Mode:         string(mode),
			FirstTurnID:  order[0],
			PlayerOrder:  order,
			CardsPerHand: s.handSize,
		},
	})

	for _, userID := range order {
		game.Players[userID] = &Player{UserID: userID, DisplayName: names[userID]}
		state.Scores[userID] = 0

		hand := make([]CardView, 0, s.handSize)
		for _, idx := range state.DrawMultiple(s.handSize) {
			inst := &domain.CardInstance{
				ID:        uuid.NewString(),
				CardIndex: idx,
				OwnerID:   userID,
				Status:    domain.CardDrawn,
			}
			game.Instances[inst.ID] = inst
			hand = append(hand, s.cardView(game, inst))
		}

		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{UserID: userID, Hand: hand},
			Recipients: []string{userID},
		})
	}

	return game, events, nil
}

// SubmitCards presents one or more of the turn holder's drawn cards for a
// room-wide vote. Business-rule checks (turn ownership, card state, single
// pending submission) live here so the engine only ever sees valid inputs.
func (s *Service) SubmitCards(game *Game, actorID string, instanceIDs []string) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	actor, ok := game.Players[actorID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if game.State.CurrentTurnID != actorID {
		return nil, ErrNotYourTurn
	}
	if game.State.ActiveSubmissionID != "" {
		return nil, ErrSubmissionPending
	}
	if len(instanceIDs) == 0 {
		return nil, ErrUnknownCard
	}

	// Dedupe so a repeated id cannot score or replace the same card twice.
	seen := make(map[string]bool, len(instanceIDs))
	ids := make([]string, 0, len(instanceIDs))
	for _, id := range instanceIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	instances := make([]*domain.CardInstance, 0, len(ids))
	for _, id := range ids {
		inst, ok := game.Instances[id]
		if !ok || inst.OwnerID != actorID {
			return nil, ErrUnknownCard
		}
		if !inst.Status.CanTransition(domain.CardSubmitted) {
			return nil, ErrCardNotPlayable
		}
		instances = append(instances, inst)
	}
	for _, inst := range instances {
		inst.Status = domain.CardSubmitted
	}

	sub := &domain.Submission{
		ID:              uuid.NewString(),
		CardInstanceIDs: ids,
		SubmittedByID:   actorID,
		Votes:           make(map[string]domain.Vote),
		Status:          domain.SubmissionPending,
	}
	game.Submissions[sub.ID] = sub
	game.State.ActiveSubmissionID = sub.ID

	return []Event{{
		Kind: EventCardSubmitted,
		Payload: CardSubmittedPayload{
			SubmissionID:  sub.ID,
			SubmittedByID: actorID,
			SubmitterName: actor.DisplayName,
			Cards:         s.cardViews(game, instances),
			VotesNeeded:   domain.RequiredApprovals(len(game.PlayerOrder)),
		},
	}}, nil
}

// CastVote records a vote and re-resolves the submission against the
// then-current tally. Approval awards the cards' points to the submitter,
// advances the turn, and deals replacement cards; rejection returns the
// cards to the submitter's hand with no replacement.
func (s *Service) CastVote(game *Game, voterID, submissionID string, approve bool, selected []string) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	voter, ok := game.Players[voterID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	sub, ok := game.Submissions[submissionID]
	if !ok {
		return nil, ErrUnknownSubmission
	}
	if sub.Status != domain.SubmissionPending {
		return nil, ErrAlreadyResolved
	}
	if sub.SubmittedByID == voterID {
		return nil, ErrOwnSubmission
	}
	if _, voted := sub.Votes[voterID]; voted {
		return nil, ErrAlreadyVoted
	}

	vote := domain.Vote{Approve: approve}
	if len(selected) > 0 {
		vote.Selected = make(map[string]bool, len(selected))
		for _, id := range selected {
			vote.Selected[id] = true
		}
	}
	sub.Votes[voterID] = vote

	approvals, rejections := sub.Tally()
	events := []Event{{
		Kind: EventVoteCast,
		Payload: VoteCastPayload{
			SubmissionID: sub.ID,
			VoterID:      voterID,
			VoterName:    voter.DisplayName,
			Approve:      approve,
			Approvals:    approvals,
			Rejections:   rejections,
		},
	}}

	switch domain.ResolveSubmission(len(game.PlayerOrder), approvals, rejections) {
	case domain.SubmissionApproved:
		events = append(events, s.approveSubmission(game, sub, approvals, rejections)...)
	case domain.SubmissionRejected:
		events = append(events, s.rejectSubmission(game, sub, approvals, rejections)...)
	}

	return events, nil
}

// ReevaluateActiveSubmission re-resolves the pending submission against the
// current turn order. Quorum thresholds shrink when players leave, so votes
// already recorded may now decide a submission that nobody left seated could
// otherwise resolve.
func (s *Service) ReevaluateActiveSubmission(game *Game) []Event {
	if game.Phase != domain.PhasePlaying || game.State.ActiveSubmissionID == "" {
		return nil
	}
	sub, ok := game.Submissions[game.State.ActiveSubmissionID]
	if !ok || sub.Status != domain.SubmissionPending {
		return nil
	}

	approvals, rejections := sub.Tally()
	switch domain.ResolveSubmission(len(game.PlayerOrder), approvals, rejections) {
	case domain.SubmissionApproved:
		return s.approveSubmission(game, sub, approvals, rejections)
	case domain.SubmissionRejected:
		return s.rejectSubmission(game, sub, approvals, rejections)
	}
	return nil
}

func (s *Service) approveSubmission(game *Game, sub *domain.Submission, approvals, rejections int) []Event {
	sub.Status = domain.SubmissionApproved
	game.State.ActiveSubmissionID = ""

	submitter := game.Players[sub.SubmittedByID]
	catalog := domain.Catalog(game.State.Sport)

	points := 0
	instances := make([]*domain.CardInstance, 0, len(sub.CardInstanceIDs))
	for _, id := range sub.CardInstanceIDs {
		inst := game.Instances[id]
		instances = append(instances, inst)
		points += catalog[inst.CardIndex].Points
	}
	// Snapshot the views before the status flips to resolved.
	views := s.cardViews(game, instances)
	for _, inst := range instances {
		inst.Status = domain.CardResolved
	}

	submitter.Score += points
	game.State.Scores[sub.SubmittedByID] += points

	events := []Event{{
		Kind: EventSubmissionApproved,
		Payload: SubmissionResolvedPayload{
			SubmissionID:  sub.ID,
			SubmittedByID: sub.SubmittedByID,
			SubmitterName: submitter.DisplayName,
			Cards:         views,
			PointsAwarded: points,
			Approvals:     approvals,
			Rejections:    rejections,
		},
	}}

	previous := game.State.CurrentTurnID
	game.State.CurrentTurnID = domain.AdvanceTurn(previous, game.PlayerOrder)
	events = append(events, Event{
		Kind: EventTurnChanged,
		Payload: TurnChangedPayload{
			PreviousTurnID: previous,
			CurrentTurnID:  game.State.CurrentTurnID,
		},
	})

	// Replacement draws keep the submitter's hand at size.
	for range instances {
		events = append(events, s.dealReplacement(game, sub.SubmittedByID)...)
	}

	return events
}

func (s *Service) rejectSubmission(game *Game, sub *domain.Submission, approvals, rejections int) []Event {
	sub.Status = domain.SubmissionRejected
	game.State.ActiveSubmissionID = ""

	submitter := game.Players[sub.SubmittedByID]
	instances := make([]*domain.CardInstance, 0, len(sub.CardInstanceIDs))
	for _, id := range sub.CardInstanceIDs {
		inst := game.Instances[id]
		inst.Status = domain.CardDrawn // back to the submitter's hand
		instances = append(instances, inst)
	}

	return []Event{{
		Kind: EventSubmissionRejected,
		Payload: SubmissionResolvedPayload{
			SubmissionID:  sub.ID,
			SubmittedByID: sub.SubmittedByID,
			SubmitterName: submitter.DisplayName,
			Cards:         s.cardViews(game, instances),
			Approvals:     approvals,
			Rejections:    rejections,
		},
	}}
}

// DiscardCard swaps a drawn card out of a player's hand for a fresh draw.
func (s *Service) DiscardCard(game *Game, actorID, instanceID string) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	if _, ok := game.Players[actorID]; !ok {
		return nil, ErrUnknownPlayer
	}
	inst, ok := game.Instances[instanceID]
	if !ok || inst.OwnerID != actorID {
		return nil, ErrUnknownCard
	}
	if !inst.Status.CanTransition(domain.CardDiscarded) {
		return nil, ErrCardNotPlayable
	}
	inst.Status = domain.CardDiscarded

	return s.dealReplacement(game, actorID), nil
}

// EndGame closes the session and reports final standings.
func (s *Service) EndGame(game *Game) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	game.Phase = domain.PhaseEnded

	standings := make([]Standing, 0, len(game.PlayerOrder))
	for _, id := range game.PlayerOrder {
		pl := game.Players[id]
		standings = append(standings, Standing{
			UserID:      pl.UserID,
			DisplayName: pl.DisplayName,
			Score:       pl.Score,
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	return []Event{{
		Kind:    EventGameEnded,
		Payload: GameEndedPayload{Standings: standings},
	}}, nil
}

// dealReplacement draws one card for a player and emits the private
// card_drawn event. An empty deck (only possible with an empty catalog)
// yields no event.
func (s *Service) dealReplacement(game *Game, userID string) []Event {
	idx, ok := game.State.Draw()
	if !ok {
		return nil
	}
	inst := &domain.CardInstance{
		ID:        uuid.NewString(),
		CardIndex: idx,
		OwnerID:   userID,
		Status:    domain.CardDrawn,
	}
	game.Instances[inst.ID] = inst

	return []Event{{
		Kind:       EventCardDrawn,
		Payload:    CardDrawnPayload{UserID: userID, Card: s.cardView(game, inst)},
		Recipients: []string{userID},
	}}
}

func (s *Service) cardViews(game *Game, instances []*domain.CardInstance) []CardView {
	out := make([]CardView, len(instances))
	for i, inst := range instances {
		out[i] = s.cardView(game, inst)
	}
	return out
}

// cardView denormalizes an instance against the catalog, deriving the
// display text for the room's mode.
func (s *Service) cardView(game *Game, inst *domain.CardInstance) CardView {
	def := domain.Catalog(game.State.Sport)[inst.CardIndex]
	return CardView{
		InstanceID:  inst.ID,
		Title:       def.Title,
		DisplayText: domain.DescribeForMode(def.Description, game.State.Mode),
		Severity:    string(def.Severity),
		Type:        string(def.Type),
		Points:      def.Points,
	}
}
