package app

import (
	"testing"

	"sideline/internal/domain"
)

var testNames = map[string]string{
	"p1": "Ana", "p2": "Ben", "p3": "Cam", "p4": "Dee", "p5": "Eli",
}

func startTestGame(t *testing.T, players []string) (*Service, *Game) {
	t.Helper()
	svc := NewService(5, 50)
	game, _, err := svc.StartGame(players, testNames, domain.SportFootball, domain.ModeCasual, "room1-123")
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}
	return svc, game
}

func TestStartGameDealsHands(t *testing.T) {
	svc := NewService(5, 50)
	game, evs, err := svc.StartGame([]string{"p1", "", "p2"}, testNames, domain.SportFootball, domain.ModeCasual, "room1-123")
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}
	if game.Phase != domain.PhasePlaying {
		t.Fatalf("phase = %s, want playing", game.Phase)
	}
	if len(game.PlayerOrder) != 2 {
		t.Fatalf("player order length = %d, want 2 (empty seats skipped)", len(game.PlayerOrder))
	}
	if game.State.CurrentTurnID != "p1" {
		t.Fatalf("first turn = %s, want p1", game.State.CurrentTurnID)
	}

	handEvents := 0
	for _, ev := range evs {
		if ev.Kind == EventHandDealt {
			handEvents++
			payload := ev.Payload.(HandDealtPayload)
			if len(payload.Hand) != 5 {
				t.Fatalf("hand size = %d, want 5", len(payload.Hand))
			}
			if len(ev.Recipients) != 1 || ev.Recipients[0] != payload.UserID {
				t.Fatalf("hand for %s not delivered privately", payload.UserID)
			}
		}
	}
	if handEvents != 2 {
		t.Fatalf("hand events = %d, want 2", handEvents)
	}
}

func TestStartGameDeterministicDeal(t *testing.T) {
	deal := func() []string {
		svc := NewService(5, 50)
		_, evs, err := svc.StartGame([]string{"p1"}, testNames, domain.SportFootball, domain.ModeCasual, "room1-123")
		if err != nil {
			t.Fatalf("start game error: %v", err)
		}
		for _, ev := range evs {
			if ev.Kind == EventHandDealt {
				payload := ev.Payload.(HandDealtPayload)
				titles := make([]string, len(payload.Hand))
				for i, c := range payload.Hand {
					titles[i] = c.Title
				}
				return titles
			}
		}
		t.Fatal("no hand dealt")
		return nil
	}

	first, second := deal(), deal()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("deal diverged at %d: %s != %s", i, first[i], second[i])
		}
	}
}

func TestStartGameNoPlayers(t *testing.T) {
	svc := NewService(5, 50)
	if _, _, err := svc.StartGame([]string{"", ""}, nil, domain.SportFootball, domain.ModeParty, "s"); err != ErrNoPlayers {
		t.Fatalf("err = %v, want ErrNoPlayers", err)
	}
}

func TestStartGameUnknownSport(t *testing.T) {
	svc := NewService(5, 50)
	if _, _, err := svc.StartGame([]string{"p1"}, nil, domain.Sport("curling"), domain.ModeParty, "s"); err != ErrUnknownSport {
		t.Fatalf("err = %v, want ErrUnknownSport", err)
	}
}

func TestSubmitCardsTurnAndStateChecks(t *testing.T) {
	svc, game := startTestGame(t, []string{"p1", "p2", "p3"})

	p2Hand := game.Hand("p2")
	if _, err := svc.SubmitCards(game, "p2", []string{p2Hand[0].ID}); err != ErrNotYourTurn {
		t.Fatalf("off-turn submit err = %v, want ErrNotYourTurn", err)
	}
	if _, err := svc.SubmitCards(game, "ghost", []string{"x"}); err != ErrUnknownPlayer {
		t.Fatalf("unknown player err = %v, want ErrUnknownPlayer", err)
	}
	if _, err := svc.SubmitCards(game, "p1", []string{p2Hand[0].ID}); err != ErrUnknownCard {
		t.Fatalf("someone else's card err = %v, want ErrUnknownCard", err)
	}

	p1Hand := game.Hand("p1")
	evs, err := svc.SubmitCards(game, "p1", []string{p1Hand[0].ID})
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if len(evs) != 1 || evs[0].Kind != EventCardSubmitted {
		t.Fatalf("events = %+v, want one card_submitted", evs)
	}
	if p1Hand[0].Status != domain.CardSubmitted {
		t.Fatalf("instance status = %s, want submitted", p1Hand[0].Status)
	}

	// Only one pending submission at a time.
	rest := game.Hand("p1")
	if _, err := svc.SubmitCards(game, "p1", []string{rest[0].ID}); err != ErrSubmissionPending {
		t.Fatalf("second submit err = %v, want ErrSubmissionPending", err)
	}
}

func TestVoteApprovalFlow(t *testing.T) {
	svc, game := startTestGame(t, []string{"p1", "p2", "p3", "p4", "p5"})

	p1Hand := game.Hand("p1")
	inst := p1Hand[0]
	cardPoints := domain.Catalog(domain.SportFootball)[inst.CardIndex].Points

	evs, err := svc.SubmitCards(game, "p1", []string{inst.ID})
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	subID := evs[0].Payload.(CardSubmittedPayload).SubmissionID

	// Five players need ceil(5/2) = 3 approvals.
	for _, voter := range []string{"p2", "p3"} {
		evs, err = svc.CastVote(game, voter, subID, true, nil)
		if err != nil {
			t.Fatalf("vote error for %s: %v", voter, err)
		}
		if len(evs) != 1 || evs[0].Kind != EventVoteCast {
			t.Fatalf("mid-vote events = %+v, want only vote_cast", evs)
		}
	}

	evs, err = svc.CastVote(game, "p4", subID, true, nil)
	if err != nil {
		t.Fatalf("resolving vote error: %v", err)
	}

	kinds := map[EventKind]bool{}
	for _, ev := range evs {
		kinds[ev.Kind] = true
	}
	for _, want := range []EventKind{EventVoteCast, EventSubmissionApproved, EventTurnChanged, EventCardDrawn} {
		if !kinds[want] {
			t.Fatalf("missing %s in resolution events %+v", want, evs)
		}
	}

	if game.Players["p1"].Score != cardPoints {
		t.Fatalf("submitter score = %d, want %d", game.Players["p1"].Score, cardPoints)
	}
	if game.State.CurrentTurnID != "p2" {
		t.Fatalf("turn = %s after approval, want p2", game.State.CurrentTurnID)
	}
	if inst.Status != domain.CardResolved {
		t.Fatalf("instance status = %s, want resolved", inst.Status)
	}
	if len(game.Hand("p1")) != 5 {
		t.Fatalf("hand size after replacement = %d, want 5", len(game.Hand("p1")))
	}
	if game.State.ActiveSubmissionID != "" {
		t.Fatal("active submission not cleared after resolution")
	}
}

func TestVoteSplitStaysPending(t *testing.T) {
	svc, game := startTestGame(t, []string{"p1", "p2", "p3", "p4", "p5"})

	inst := game.Hand("p1")[0]
	evs, err := svc.SubmitCards(game, "p1", []string{inst.ID})
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	subID := evs[0].Payload.(CardSubmittedPayload).SubmissionID

	votes := []struct {
		voter   string
		approve bool
	}{
		{"p2", true}, {"p3", true}, {"p4", false}, {"p5", false},
	}
	for _, v := range votes {
		if _, err := svc.CastVote(game, v.voter, subID, v.approve, nil); err != nil {
			t.Fatalf("vote error for %s: %v", v.voter, err)
		}
	}

	// 2 approvals / 2 rejections with 5 players crosses neither threshold.
	if got := game.Submissions[subID].Status; got != domain.SubmissionPending {
		t.Fatalf("submission status = %s, want pending", got)
	}
}

func TestVoteRejectionReturnsCard(t *testing.T) {
	svc, game := startTestGame(t, []string{"p1", "p2", "p3"})

	inst := game.Hand("p1")[0]
	evs, err := svc.SubmitCards(game, "p1", []string{inst.ID})
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	subID := evs[0].Payload.(CardSubmittedPayload).SubmissionID

	if _, err := svc.CastVote(game, "p2", subID, false, nil); err != nil {
		t.Fatalf("vote error: %v", err)
	}
	evs, err = svc.CastVote(game, "p3", subID, false, nil)
	if err != nil {
		t.Fatalf("vote error: %v", err)
	}

	rejected := false
	for _, ev := range evs {
		switch ev.Kind {
		case EventSubmissionRejected:
			rejected = true
		case EventCardDrawn:
			t.Fatal("rejection must not trigger a replacement draw")
		case EventTurnChanged:
			t.Fatal("rejection must not advance the turn")
		}
	}
	if !rejected {
		t.Fatalf("no submission_rejected in %+v", evs)
	}
	if inst.Status != domain.CardDrawn {
		t.Fatalf("instance status = %s, want drawn (returned to hand)", inst.Status)
	}
	if game.State.CurrentTurnID != "p1" {
		t.Fatalf("turn = %s, want p1 unchanged", game.State.CurrentTurnID)
	}
}

func TestSubmitCardsDeduplicatesIDs(t *testing.T) {
	svc, game := startTestGame(t, []string{"p1", "p2"})

	inst := game.Hand("p1")[0]
	points := domain.Catalog(domain.SportFootball)[inst.CardIndex].Points

	evs, err := svc.SubmitCards(game, "p1", []string{inst.ID, inst.ID})
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	payload := evs[0].Payload.(CardSubmittedPayload)
	if len(payload.Cards) != 1 {
		t.Fatalf("submission cards = %d, want repeated id collapsed to 1", len(payload.Cards))
	}
	if got := len(game.Submissions[payload.SubmissionID].CardInstanceIDs); got != 1 {
		t.Fatalf("stored instance ids = %d, want 1", got)
	}

	if _, err := svc.CastVote(game, "p2", payload.SubmissionID, true, nil); err != nil {
		t.Fatalf("vote error: %v", err)
	}
	if game.Players["p1"].Score != points {
		t.Fatalf("score = %d, want single card's %d", game.Players["p1"].Score, points)
	}
	if got := len(game.Hand("p1")); got != 5 {
		t.Fatalf("hand size = %d after one replacement, want 5", got)
	}
}

func TestReevaluateAfterRosterShrink(t *testing.T) {
	svc, game := startTestGame(t, []string{"p1", "p2", "p3", "p4", "p5"})

	inst := game.Hand("p1")[0]
	evs, err := svc.SubmitCards(game, "p1", []string{inst.ID})
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	subID := evs[0].Payload.(CardSubmittedPayload).SubmissionID

	for _, voter := range []string{"p2", "p3"} {
		if _, err := svc.CastVote(game, voter, subID, true, nil); err != nil {
			t.Fatalf("vote error for %s: %v", voter, err)
		}
	}
	if evs := svc.ReevaluateActiveSubmission(game); evs != nil {
		t.Fatalf("re-evaluation at full roster must not act, got %+v", evs)
	}

	// The two non-voters depart; quorum for three players is two.
	game.PlayerOrder = []string{"p1", "p2", "p3"}

	evs2 := svc.ReevaluateActiveSubmission(game)
	if len(evs2) == 0 {
		t.Fatal("expected resolution events after roster shrink")
	}
	if evs2[0].Kind != EventSubmissionApproved {
		t.Fatalf("first event = %s, want submission_approved", evs2[0].Kind)
	}
	if game.Submissions[subID].Status != domain.SubmissionApproved {
		t.Fatalf("submission status = %s, want approved", game.Submissions[subID].Status)
	}
	if game.State.ActiveSubmissionID != "" {
		t.Fatal("active submission must be cleared")
	}

	// Re-running is a no-op once resolved.
	if evs := svc.ReevaluateActiveSubmission(game); evs != nil {
		t.Fatalf("re-evaluation after resolution must not act, got %+v", evs)
	}
}

func TestVoteGuards(t *testing.T) {
	svc, game := startTestGame(t, []string{"p1", "p2", "p3"})

	inst := game.Hand("p1")[0]
	evs, err := svc.SubmitCards(game, "p1", []string{inst.ID})
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	subID := evs[0].Payload.(CardSubmittedPayload).SubmissionID

	if _, err := svc.CastVote(game, "p1", subID, true, nil); err != ErrOwnSubmission {
		t.Fatalf("own vote err = %v, want ErrOwnSubmission", err)
	}
	if _, err := svc.CastVote(game, "p2", subID, true, nil); err != nil {
		t.Fatalf("vote error: %v", err)
	}
	if _, err := svc.CastVote(game, "p2", subID, false, nil); err != ErrAlreadyVoted {
		t.Fatalf("double vote err = %v, want ErrAlreadyVoted", err)
	}
	if _, err := svc.CastVote(game, "p3", "nope", true, nil); err != ErrUnknownSubmission {
		t.Fatalf("unknown submission err = %v, want ErrUnknownSubmission", err)
	}
}

func TestDiscardCard(t *testing.T) {
	svc, game := startTestGame(t, []string{"p1", "p2"})

	inst := game.Hand("p2")[0]
	evs, err := svc.DiscardCard(game, "p2", inst.ID)
	if err != nil {
		t.Fatalf("discard error: %v", err)
	}
	if inst.Status != domain.CardDiscarded {
		t.Fatalf("instance status = %s, want discarded", inst.Status)
	}
	if len(evs) != 1 || evs[0].Kind != EventCardDrawn {
		t.Fatalf("events = %+v, want one card_drawn", evs)
	}
	if len(game.Hand("p2")) != 5 {
		t.Fatalf("hand size = %d after discard+replacement, want 5", len(game.Hand("p2")))
	}
}

func TestEndGameStandings(t *testing.T) {
	svc, game := startTestGame(t, []string{"p1", "p2"})
	game.Players["p2"].Score = 7
	game.Players["p1"].Score = 3

	evs, err := svc.EndGame(game)
	if err != nil {
		t.Fatalf("end game error: %v", err)
	}
	if game.Phase != domain.PhaseEnded {
		t.Fatalf("phase = %s, want ended", game.Phase)
	}
	standings := evs[0].Payload.(GameEndedPayload).Standings
	if standings[0].UserID != "p2" || standings[1].UserID != "p1" {
		t.Fatalf("standings order = %+v, want p2 first", standings)
	}

	if _, err := svc.EndGame(game); err != ErrNotPlaying {
		t.Fatalf("double end err = %v, want ErrNotPlaying", err)
	}
}
