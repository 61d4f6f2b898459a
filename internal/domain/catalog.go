package domain

// Sport identifies which live event a catalog targets.
type Sport string

const (
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
)

// Severity is the intensity tier of a card. It drives both the card's point
// value and its sampling weight in mode-weighted decks.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// CardType classifies how a card is played.
type CardType string

const (
	TypeAction    CardType = "action"
	TypeChallenge CardType = "challenge"
	TypePenalty   CardType = "penalty"
)

// CardDefinition is an immutable catalog entry. Identity is (Sport, Title).
// The catalog is static per build and its ordering is stable: deck indices
// reference positions in the slice returned by Catalog.
type CardDefinition struct {
	Sport       Sport
	Title       string
	Description string
	Severity    Severity
	Type        CardType
	Points      int
}

// Catalog returns the static card list for a sport in stable build-time
// order. Unknown sports return nil.
func Catalog(sport Sport) []CardDefinition {
	switch sport {
	case SportFootball:
		return footballCards
	case SportBasketball:
		return basketballCards
	default:
		return nil
	}
}

// Severities returns the severity of each catalog entry, in catalog order.
// This is the shape the deck builder consumes.
func Severities(cards []CardDefinition) []Severity {
	out := make([]Severity, len(cards))
	for i, c := range cards {
		out[i] = c.Severity
	}
	return out
}
