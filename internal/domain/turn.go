package domain

// AdvanceTurn returns the player after currentID in the ordered list,
// wrapping at the end. A currentID that is no longer in the list (for
// example after a mid-game leave) yields the first player. An empty list
// returns currentID unchanged.
func AdvanceTurn(currentID string, ordered []string) string {
	if len(ordered) == 0 {
		return currentID
	}
	current := -1
	for i, id := range ordered {
		if id == currentID {
			current = i
			break
		}
	}
	return ordered[(current+1)%len(ordered)]
}
