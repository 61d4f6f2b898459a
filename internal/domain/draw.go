package domain

import "fmt"

// Draw deals the next card index from the deck ordering. Within one shuffle
// epoch each distinct index value is handed out at most once: Drawn stores
// values, not positions, so a duplicate value placed by weighted sampling is
// skipped once its first occurrence has been dealt. When no undrawn value
// remains the same index multiset is reshuffled under a seed derived from
// (DeckSeed, number drawn), Drawn resets, and the draw proceeds from the new
// epoch. Returns false only for an empty deck.
//
// Exhaustion therefore triggers after all distinct values have appeared
// once, which for weighted decks is sooner than len(Deck) draws. This
// matches the shipped behavior that players observe as decks feeling
// shorter in party/lit mode, and it is kept on purpose.
func (g *GameState) Draw() (int, bool) {
	if len(g.Deck) == 0 {
		return 0, false
	}

	for _, idx := range g.Deck {
		if !g.Drawn[idx] {
			g.Drawn[idx] = true
			return idx, true
		}
	}

	g.reshuffle()
	for _, idx := range g.Deck {
		if !g.Drawn[idx] {
			g.Drawn[idx] = true
			return idx, true
		}
	}
	// Unreachable: Drawn is empty and Deck is non-empty after a reshuffle.
	return 0, false
}

// DrawMultiple deals up to n cards, stopping early only if the deck is
// empty.
func (g *GameState) DrawMultiple(n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		idx, ok := g.Draw()
		if !ok {
			break
		}
		out = append(out, idx)
	}
	return out
}

// reshuffle starts a new epoch: the deck's index multiset is permuted under
// a deterministically derived seed and the drawn set resets. The multiset
// itself never changes, so the mode's severity mix holds across any number
// of reshuffles.
func (g *GameState) reshuffle() {
	g.DeckSeed = fmt.Sprintf("%s-%d", g.DeckSeed, len(g.Drawn))
	Shuffle(g.Deck, g.DeckSeed)
	g.Drawn = make(map[int]bool)
}
