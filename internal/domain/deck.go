package domain

// Mode is a named difficulty profile controlling the deck's severity mix and
// how penalty text is displayed.
type Mode string

const (
	ModeCasual      Mode = "casual"
	ModeParty       Mode = "party"
	ModeLit         Mode = "lit"
	ModeNonDrinking Mode = "non-drinking"
)

// severityMix holds the target severity fractions for a mode. Fractions sum
// to 1.0.
type severityMix struct {
	Mild     float64
	Moderate float64
	Severe   float64
}

// modeMixes is the single source of truth for mode difficulty.
var modeMixes = map[Mode]severityMix{
	ModeCasual:      {Mild: 0.70, Moderate: 0.25, Severe: 0.05},
	ModeParty:       {Mild: 0.50, Moderate: 0.35, Severe: 0.15},
	ModeLit:         {Mild: 0.40, Moderate: 0.35, Severe: 0.25},
	ModeNonDrinking: {Mild: 0.70, Moderate: 0.25, Severe: 0.05},
}

// mixFor resolves a mode's severity mix. Unknown modes fall back to party.
func mixFor(mode Mode) severityMix {
	if mix, ok := modeMixes[mode]; ok {
		return mix
	}
	return modeMixes[ModeParty]
}

// BuildPlainDeck returns the indices [0, cardCount) in seeded shuffle order.
func BuildPlainDeck(seed string, cardCount int) []int {
	deck := make([]int, cardCount)
	for i := range deck {
		deck[i] = i
	}
	return Shuffle(deck, seed)
}

// BuildModeWeightedDeck builds a deck of deckSize indices into the catalog
// described by severities, mixing severities per the mode's target
// fractions. Pools are sampled with replacement using per-pool derived
// seeds, so duplicate indices in the result are expected; the final ordering
// comes from a full-deck seeded shuffle. The whole build is a pure function
// of (seed, severities, mode, deckSize). A non-positive deckSize defaults to
// the catalog size. Target counts are capped at pool sizes, so the result
// comes up short of deckSize only when deckSize exceeds the catalog.
func BuildModeWeightedDeck(seed string, severities []Severity, mode Mode, deckSize int) []int {
	if deckSize <= 0 {
		deckSize = len(severities)
	}
	cardCount := deckSize
	if cardCount == 0 || len(severities) == 0 {
		return []int{}
	}

	var mildPool, moderatePool, severePool []int
	for i, sev := range severities {
		switch sev {
		case SeverityModerate:
			moderatePool = append(moderatePool, i)
		case SeveritySevere:
			severePool = append(severePool, i)
		default:
			mildPool = append(mildPool, i)
		}
	}

	mix := mixFor(mode)
	mildCount := int(float64(cardCount) * mix.Mild)
	moderateCount := int(float64(cardCount) * mix.Moderate)
	severeCount := cardCount - mildCount - moderateCount
	if severeCount < 0 {
		moderateCount = cardCount - mildCount
		severeCount = 0
	}

	// A pool cannot be targeted beyond its own size. Sampling below is with
	// replacement, so the cap bounds the target count, not physical supply.
	mildCount = min(mildCount, len(mildPool))
	moderateCount = min(moderateCount, len(moderatePool))
	severeCount = min(severeCount, len(severePool))

	// Redistribute any shortfall: top up mild, then moderate, then severe.
	shortfall := cardCount - mildCount - moderateCount - severeCount
	if shortfall > 0 {
		take := min(shortfall, len(mildPool)-mildCount)
		mildCount += take
		shortfall -= take
	}
	if shortfall > 0 {
		take := min(shortfall, len(moderatePool)-moderateCount)
		moderateCount += take
		shortfall -= take
	}
	if shortfall > 0 {
		take := min(shortfall, len(severePool)-severeCount)
		severeCount += take
	}

	deck := make([]int, 0, cardCount)
	deck = append(deck, samplePool(mildPool, mildCount, seed+"-m")...)
	deck = append(deck, samplePool(moderatePool, moderateCount, seed+"-mod")...)
	deck = append(deck, samplePool(severePool, severeCount, seed+"-s")...)
	return Shuffle(deck, seed)
}

// samplePool draws count indices from the pool with replacement using a
// pool-specific seed, so each pool's contribution is independently
// reproducible.
func samplePool(pool []int, count int, seed string) []int {
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	rng := NewRand(seed)
	out := make([]int, count)
	for i := range out {
		out[i] = pool[rng.Intn(len(pool))]
	}
	return out
}
