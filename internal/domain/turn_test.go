package domain

import "testing"

func TestAdvanceTurnWraps(t *testing.T) {
	players := []string{"a", "b", "c"}
	if got := AdvanceTurn("a", players); got != "b" {
		t.Fatalf("next after a = %s, want b", got)
	}
	if got := AdvanceTurn("c", players); got != "a" {
		t.Fatalf("next after c = %s, want a", got)
	}
}

func TestAdvanceTurnCycleClosure(t *testing.T) {
	players := []string{"p1", "p2", "p3", "p4", "p5"}
	current := "p3"
	for i := 0; i < len(players); i++ {
		current = AdvanceTurn(current, players)
	}
	if current != "p3" {
		t.Fatalf("after %d advances current = %s, want p3", len(players), current)
	}
}

func TestAdvanceTurnMissingCurrent(t *testing.T) {
	// A player who left mid-game is no longer in the list; the turn falls to
	// the first player.
	if got := AdvanceTurn("gone", []string{"x", "y"}); got != "x" {
		t.Fatalf("next after missing player = %s, want x", got)
	}
}

func TestAdvanceTurnEmptyList(t *testing.T) {
	if got := AdvanceTurn("solo", nil); got != "solo" {
		t.Fatalf("empty list advance = %s, want solo", got)
	}
}

func TestAdvanceTurnSinglePlayer(t *testing.T) {
	if got := AdvanceTurn("only", []string{"only"}); got != "only" {
		t.Fatalf("single player advance = %s, want only", got)
	}
}
