package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"sideline/internal/app"
	"sideline/internal/bot"
	"sideline/internal/config"
	"sideline/internal/domain"
	"sideline/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchLabel is the JSON label exposed for matchmaking queries.
type MatchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Sport string `json:"sport"`
	Mode  string `json:"mode"`
	Phase string `json:"phase"`
}

const labelGameName = "sideline"

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	MatchID    string                      `json:"match_id"`
	Roster     []string                    `json:"roster"`      // Slot order of user IDs, empty string means slot is free
	HostID     string                      `json:"host_id"`     // Host controls start/new-game requests
	Sport      domain.Sport                `json:"sport"`       // Sport catalog for this room
	Mode       domain.Mode                 `json:"mode"`        // Severity mix for this room
	Tick       int64                       `json:"tick"`        // Current tick for house voter scheduling
	StartCount int                         `json:"start_count"` // Games started in this room, feeds the deck seed
	Presences  map[string]runtime.Presence `json:"-"`           // Map UserId -> Presence for targeted messaging
	App        *app.Service                `json:"-"`           // Party game use-cases
	Game       *app.Game                   `json:"-"`           // Current active game (nil in lobby)

	HouseEnabled bool         `json:"house_enabled"` // Whether house voters fill in on small rooms
	HouseAgents  []*bot.Agent `json:"-"`             // Active house voter agents
	houseVoteSub string       // Submission the current vote schedule belongs to
	houseVoteDue map[string]int64

	Scores          ports.ScorePort    `json:"-"`
	Stats           ports.StatsPort    `json:"-"`
	Snapshots       ports.SnapshotPort `json:"-"`
	SnapshotVersion string             `json:"-"`
}

// OpenSlots returns the number of free roster slots.
func (ms *MatchState) OpenSlots() int {
	count := 0
	for _, slot := range ms.Roster {
		if slot == "" {
			count++
		}
	}
	return count
}

// OccupiedCount returns the number of seated players.
func (ms *MatchState) OccupiedCount() int {
	return len(ms.Roster) - ms.OpenSlots()
}

// firstOccupiedSlot returns the first slot index with a player or -1 if the
// room is empty.
func firstOccupiedSlot(roster []string) int {
	for i, userID := range roster {
		if userID != "" {
			return i
		}
	}
	return -1
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/house_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load house identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)

	state := &MatchState{
		MatchID:   matchID,
		Roster:    make([]string, config.MaxPlayers()),
		Sport:     domain.Sport(config.DefaultSport()),
		Mode:      domain.Mode(config.DefaultMode()),
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(config.HandSize(), config.DeckSize()),
		Scores:    NewNakamaScoreAdapter(nk),
		Stats:     NewNakamaStatsAdapter(nk),
		Snapshots: NewNakamaSnapshotAdapter(nk),
	}

	// Room settings from match create params (set by the quickmatch RPC).
	if val, ok := params["sport"].(string); ok && val != "" {
		state.Sport = domain.Sport(val)
	}
	if val, ok := params["mode"].(string); ok && val != "" {
		state.Mode = domain.Mode(val)
	}

	state.HouseEnabled = config.HouseVoters().Enabled
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if val, ok := env["sideline_house_voters"]; ok {
			state.HouseEnabled = val == "true"
		}
	}

	labelBytes, err := json.Marshal(&MatchLabel{
		Open:  state.OpenSlots(),
		Game:  labelGameName,
		Sport: string(state.Sport),
		Mode:  string(state.Mode),
		Phase: "lobby",
	})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1 // 1 tick per second, house voter delays are in seconds
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Reconnects are always allowed back in.
	if matchState.Game != nil {
		if _, seated := matchState.Game.Players[presence.GetUserId()]; seated {
			return state, true, ""
		}
		return state, false, "game in progress"
	}

	if matchState.OpenSlots() <= 0 {
		return state, false, "room full"
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		seated := false
		for _, slot := range matchState.Roster {
			if slot == p.GetUserId() {
				seated = true // reconnect, slot kept
				break
			}
		}
		if seated {
			continue
		}

		for i, slot := range matchState.Roster {
			if slot == "" {
				matchState.Roster[i] = p.GetUserId()
				seated = true
				break
			}
		}
		if !seated {
			logger.Warn("MatchJoin: User %s joined but no slot was available.", p.GetUserId())
		}
	}

	// The host is always the earliest seated player.
	if matchState.HostID == "" || !mh.isSeated(matchState, matchState.HostID) {
		if slot := firstOccupiedSlot(matchState.Roster); slot >= 0 {
			matchState.HostID = matchState.Roster[slot]
			logger.Debug("MatchJoin: Host set to %s.", matchState.HostID)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastRoomState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) isSeated(state *MatchState, userID string) bool {
	if userID == "" {
		return false
	}
	for _, slot := range state.Roster {
		if slot == userID {
			return true
		}
	}
	return false
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		delete(matchState.Presences, userID)

		for i, slot := range matchState.Roster {
			if slot == userID {
				matchState.Roster[i] = ""
				logger.Debug("MatchLeave: User %s left, slot %d freed.", userID, i)
				break
			}
		}

		mh.removeFromGame(ctx, matchState, dispatcher, logger, userID)

		payload, _ := json.Marshal(map[string]string{"user_id": userID})
		mh.dispatch(dispatcher, logger, OpPlayerLeft, payload, nil)
	}

	if matchState.HostID != "" && !mh.isSeated(matchState, matchState.HostID) {
		if slot := firstOccupiedSlot(matchState.Roster); slot >= 0 {
			matchState.HostID = matchState.Roster[slot]
			logger.Debug("MatchLeave: Host handed to %s.", matchState.HostID)
		} else {
			matchState.HostID = ""
		}
	}

	if matchState.OccupiedCount() == 0 {
		logger.Info("MatchLeave: Terminating empty match.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)

	return matchState
}

// removeFromGame drops a departed player from the active game's turn order
// so quorum thresholds track the players who can still vote. The turn
// passes on if the leaver held it, and any pending submission is re-resolved
// against the smaller roster since recorded votes may now reach quorum.
func (mh *matchHandler) removeFromGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string) {
	game := state.Game
	if game == nil {
		return
	}
	if _, ok := game.Players[userID]; !ok {
		return
	}

	if game.State.CurrentTurnID == userID {
		next := domain.AdvanceTurn(userID, game.PlayerOrder)
		game.State.CurrentTurnID = next
		payload, _ := json.Marshal(app.TurnChangedPayload{PreviousTurnID: userID, CurrentTurnID: next})
		mh.dispatch(dispatcher, logger, OpTurnChanged, payload, nil)
	}

	order := game.PlayerOrder[:0]
	for _, id := range game.PlayerOrder {
		if id != userID {
			order = append(order, id)
		}
	}
	game.PlayerOrder = order

	for _, ev := range state.App.ReevaluateActiveSubmission(game) {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick
	dirty := false

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			dirty = mh.handleStartGame(ctx, matchState, dispatcher, logger, msg) || dirty
		case OpSubmitCards:
			dirty = mh.handleSubmitCards(ctx, matchState, dispatcher, logger, msg) || dirty
		case OpCastVote:
			dirty = mh.handleCastVote(ctx, matchState, dispatcher, logger, msg) || dirty
		case OpDiscardCard:
			dirty = mh.handleDiscardCard(ctx, matchState, dispatcher, logger, msg) || dirty
		case OpRequestNewGame:
			dirty = mh.handleRequestNewGame(ctx, matchState, dispatcher, logger, msg) || dirty
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.HouseEnabled {
		dirty = mh.processHouseVoters(ctx, matchState, dispatcher, logger) || dirty
	}

	if dirty && matchState.Game != nil {
		mh.saveSnapshot(ctx, matchState, logger)
	}

	return matchState
}

// processHouseVoters schedules and casts house votes on the active
// submission. Delays and vote choices are deterministic per (agent,
// submission) so a replay of the same game reproduces the same votes.
func (mh *matchHandler) processHouseVoters(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) bool {
	game := state.Game
	if game == nil || game.Phase != domain.PhasePlaying || len(state.HouseAgents) == 0 {
		state.houseVoteSub = ""
		state.houseVoteDue = nil
		return false
	}

	subID := game.State.ActiveSubmissionID
	if subID == "" {
		state.houseVoteSub = ""
		state.houseVoteDue = nil
		return false
	}

	if state.houseVoteSub != subID {
		hv := config.HouseVoters()
		state.houseVoteSub = subID
		state.houseVoteDue = make(map[string]int64, len(state.HouseAgents))
		span := hv.MaxDelaySeconds - hv.MinDelaySeconds + 1
		for _, agent := range state.HouseAgents {
			delay := hv.MinDelaySeconds + domain.NewRand(agent.ID+":"+subID+":delay").Intn(span)
			state.houseVoteDue[agent.ID] = state.Tick + int64(delay)
			logger.Debug("processHouseVoters: %s will vote on %s at tick %d", agent.ID, subID, state.houseVoteDue[agent.ID])
		}
	}

	acted := false
	for _, agent := range state.HouseAgents {
		due, pending := state.houseVoteDue[agent.ID]
		if !pending || state.Tick < due {
			continue
		}
		delete(state.houseVoteDue, agent.ID)

		events, err := state.App.CastVote(game, agent.ID, subID, agent.DecideVote(subID), nil)
		if err != nil {
			logger.Debug("processHouseVoters: %s could not vote on %s: %v", agent.ID, subID, err)
			continue
		}
		acted = true
		for _, ev := range events {
			mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
		}
		if game.State.ActiveSubmissionID == "" {
			break // resolved, remaining agents stand down
		}
	}
	return acted
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) bool {
	senderID := msg.GetUserId()
	logger.Info("StartGame: Request from %s (host=%s, occupied=%d)", senderID, state.HostID, state.OccupiedCount())

	if senderID != state.HostID {
		logger.Warn("StartGame: User %s tried to start game but is not host.", senderID)
		mh.sendError(state, dispatcher, logger, senderID, 403, "only the host can start the game")
		return false
	}
	if state.Game != nil {
		mh.sendError(state, dispatcher, logger, senderID, 409, "game already running")
		return false
	}

	occupied := state.OccupiedCount()
	if occupied < app.MinPlayersToStart {
		logger.Warn("StartGame: Cannot start with %d players. Need at least %d.", occupied, app.MinPlayersToStart)
		mh.sendError(state, dispatcher, logger, senderID, 400, "not enough players")
		return false
	}

	names := make(map[string]string, len(state.Presences))
	for userID, p := range state.Presences {
		names[userID] = p.GetUsername()
	}

	state.StartCount++
	seed := fmt.Sprintf("%s-%d", state.MatchID, state.StartCount)

	game, events, err := state.App.StartGame(state.Roster, names, state.Sport, state.Mode, seed)
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return false
	}
	state.Game = game
	state.SnapshotVersion = ""

	mh.seatHouseVoters(state, logger)
	mh.updateLabel(state, dispatcher, logger)

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}

	logger.Info("StartGame: Game started with %d players (seed %s).", occupied, seed)
	return true
}

// seatHouseVoters registers enough house voter agents that a small room can
// still resolve submissions. Agents vote but never hold the turn.
func (mh *matchHandler) seatHouseVoters(state *MatchState, logger runtime.Logger) {
	state.HouseAgents = nil
	if !state.HouseEnabled || state.Game == nil {
		return
	}

	hv := config.HouseVoters()
	needed := 3 - len(state.Game.PlayerOrder)
	if needed > 2 {
		needed = 2
	}
	for i := 0; i < needed; i++ {
		agent := bot.NewAgent(i, hv.ApproveBias)
		state.HouseAgents = append(state.HouseAgents, agent)
		state.Game.AddObserverVoter(agent.ID, agent.Name)
		logger.Info("seatHouseVoters: %s (%s) is voting for the house.", agent.Name, agent.ID)
	}
}

// submitCardsRequest is the client payload for OpSubmitCards.
type submitCardsRequest struct {
	InstanceIDs []string `json:"instance_ids"`
}

func (mh *matchHandler) handleSubmitCards(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) bool {
	senderID := msg.GetUserId()
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 409, "game not started")
		return false
	}

	var request submitCardsRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleSubmitCards: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "invalid payload")
		return false
	}

	events, err := state.App.SubmitCards(state.Game, senderID, request.InstanceIDs)
	if err != nil {
		logger.Warn("handleSubmitCards: User %s failed to submit: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return false
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	return true
}

// castVoteRequest is the client payload for OpCastVote.
type castVoteRequest struct {
	SubmissionID string   `json:"submission_id"`
	Approve      bool     `json:"approve"`
	Selected     []string `json:"selected,omitempty"`
}

func (mh *matchHandler) handleCastVote(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) bool {
	senderID := msg.GetUserId()
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 409, "game not started")
		return false
	}

	var request castVoteRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleCastVote: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "invalid payload")
		return false
	}

	events, err := state.App.CastVote(state.Game, senderID, request.SubmissionID, request.Approve, request.Selected)
	if err != nil {
		logger.Warn("handleCastVote: User %s failed to vote: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return false
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	return true
}

// discardCardRequest is the client payload for OpDiscardCard.
type discardCardRequest struct {
	InstanceID string `json:"instance_id"`
}

func (mh *matchHandler) handleDiscardCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) bool {
	senderID := msg.GetUserId()
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 409, "game not started")
		return false
	}

	var request discardCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleDiscardCard: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "invalid payload")
		return false
	}

	events, err := state.App.DiscardCard(state.Game, senderID, request.InstanceID)
	if err != nil {
		logger.Warn("handleDiscardCard: User %s failed to discard: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return false
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	return true
}

// handleRequestNewGame ends the running game and returns the room to the
// lobby. Only the host may call it. Final standings are broadcast and
// lifetime stats recorded before the game state is cleared.
func (mh *matchHandler) handleRequestNewGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) bool {
	senderID := msg.GetUserId()
	if senderID != state.HostID {
		mh.sendError(state, dispatcher, logger, senderID, 403, "only the host can end the game")
		return false
	}
	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, 409, "no game running")
		return false
	}

	events, err := state.App.EndGame(state.Game)
	if err != nil {
		logger.Warn("handleRequestNewGame: Failed to end game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return false
	}

	mh.saveSnapshot(ctx, state, logger)

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}

	return true
}

// broadcastRoomState publishes the lobby view: who is seated, who hosts,
// and the room's sport/mode.
func (mh *matchHandler) broadcastRoomState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	type roomPlayer struct {
		UserID      string `json:"user_id"`
		DisplayName string `json:"display_name"`
		IsHost      bool   `json:"is_host"`
		Score       int    `json:"score"`
	}

	players := make([]roomPlayer, 0, len(state.Roster))
	for _, userID := range state.Roster {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		}

		score := 0
		if state.Game != nil {
			if pl, ok := state.Game.Players[userID]; ok {
				score = pl.Score
			}
		}

		players = append(players, roomPlayer{
			UserID:      userID,
			DisplayName: displayName,
			IsHost:      userID == state.HostID,
			Score:       score,
		})
	}

	phase := "lobby"
	if state.Game != nil {
		phase = string(state.Game.Phase)
	}

	payload, err := json.Marshal(map[string]interface{}{
		"players": players,
		"phase":   phase,
		"sport":   string(state.Sport),
		"mode":    string(state.Mode),
	})
	if err != nil {
		logger.Error("broadcastRoomState: Failed to marshal: %v", err)
		return
	}
	mh.dispatch(dispatcher, logger, OpPlayerJoined, payload, nil)
}

// broadcastEvent maps an app event onto its opcode and dispatches it as a
// JSON payload. Side effects that belong at the adapter boundary (season
// points, lifetime stats, label flips) also live here.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64

	switch ev.Kind {
	case app.EventGameStarted:
		opCode = OpGameStarted
	case app.EventHandDealt:
		opCode = OpHandDealt
	case app.EventCardDrawn:
		opCode = OpCardDrawn
	case app.EventCardSubmitted:
		opCode = OpCardSubmitted
	case app.EventVoteCast:
		opCode = OpVoteCast
	case app.EventSubmissionApproved:
		opCode = OpSubmissionApproved
		mh.awardSeasonPoints(ctx, state, logger, ev.Payload.(app.SubmissionResolvedPayload))
	case app.EventSubmissionRejected:
		opCode = OpSubmissionRejected
	case app.EventTurnChanged:
		opCode = OpTurnChanged
	case app.EventGameEnded:
		opCode = OpGameEnded
		mh.recordGameResults(ctx, state, logger, ev.Payload.(app.GameEndedPayload))
		state.Game = nil
		state.HouseAgents = nil
		mh.updateLabel(state, dispatcher, logger)
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Determine recipients (default to broadcast)
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}

		// If the event had intended recipients but none are connected, it
		// MUST NOT fall through to a room-wide broadcast.
		if len(recipients) == 0 {
			return
		}
	}

	mh.dispatch(dispatcher, logger, opCode, payload, recipients)
}

// awardSeasonPoints settles an approved submission against the wallet.
func (mh *matchHandler) awardSeasonPoints(ctx context.Context, state *MatchState, logger runtime.Logger, p app.SubmissionResolvedPayload) {
	if state.Scores == nil || p.PointsAwarded == 0 || bot.IsHouse(p.SubmittedByID) {
		return
	}

	err := state.Scores.AwardPoints(ctx, []ports.ScoreUpdate{{
		UserID: p.SubmittedByID,
		Points: int64(p.PointsAwarded),
		Metadata: map[string]interface{}{
			"match_id": state.MatchID,
			"reason":   "submission_approved",
		},
	}})
	if err != nil {
		logger.Error("Failed to award season points to %s: %v", p.SubmittedByID, err)
	}
}

// recordGameResults folds final standings into each player's lifetime stats.
func (mh *matchHandler) recordGameResults(ctx context.Context, state *MatchState, logger runtime.Logger, p app.GameEndedPayload) {
	if state.Stats == nil {
		return
	}

	for i, standing := range p.Standings {
		if bot.IsHouse(standing.UserID) {
			continue
		}
		result := ports.GameResult{
			MatchID: state.MatchID,
			Sport:   string(state.Sport),
			Mode:    string(state.Mode),
			Score:   standing.Score,
			Won:     i == 0,
		}
		if err := state.Stats.RecordGameResult(ctx, standing.UserID, result); err != nil {
			logger.Error("Failed to record game result for %s: %v", standing.UserID, err)
		}
	}
}

// saveSnapshot persists the engine state for audit and replay. Failures are
// logged and never block the match loop.
func (mh *matchHandler) saveSnapshot(ctx context.Context, state *MatchState, logger runtime.Logger) {
	if state.Snapshots == nil || state.Game == nil {
		return
	}

	gs := state.Game.State
	drawn := make([]int, 0, len(gs.Drawn))
	for idx := range gs.Drawn {
		drawn = append(drawn, idx)
	}
	sort.Ints(drawn)

	snapshot := ports.GameSnapshot{
		MatchID:       state.MatchID,
		Sport:         string(gs.Sport),
		Mode:          string(gs.Mode),
		DeckSeed:      gs.DeckSeed,
		Deck:          gs.Deck,
		DrawnCards:    drawn,
		CurrentTurnID: gs.CurrentTurnID,
		Scores:        gs.Scores,
	}

	version := state.SnapshotVersion
	if version == "" {
		version = "*"
		if _, existing, found, err := state.Snapshots.Load(ctx, state.MatchID); err == nil && found {
			version = existing
		}
	}

	newVersion, err := state.Snapshots.Save(ctx, snapshot, version)
	if err != nil {
		logger.Error("Failed to save game snapshot: %v", err)
		return
	}
	state.SnapshotVersion = newVersion
}

// sendError sends an error payload to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	payload, err := json.Marshal(map[string]interface{}{
		"code":    code,
		"message": message,
	})
	if err != nil {
		logger.Error("Failed to marshal error payload: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	mh.dispatch(dispatcher, logger, OpGameError, payload, []runtime.Presence{presence})
}

// dispatch broadcasts one message; publish failures are logged, never fatal.
func (mh *matchHandler) dispatch(dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, data []byte, recipients []runtime.Presence) {
	if err := dispatcher.BroadcastMessage(opCode, data, recipients, nil, true); err != nil {
		logger.Error("Broadcast failed for opcode %d: %v", opCode, err)
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Game != nil {
		phase = string(state.Game.Phase)
	}

	labelBytes, err := json.Marshal(&MatchLabel{
		Open:  state.OpenSlots(),
		Game:  labelGameName,
		Sport: string(state.Sport),
		Mode:  string(state.Mode),
		Phase: phase,
	})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
