package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// NonDrinkingText replaces every penalty in non-drinking mode.
const NonDrinkingText = "Celebrate however you like - no drink required"

// drinkCountPattern matches scalable penalties of the form "Take N drink(s)".
var drinkCountPattern = regexp.MustCompile(`^Take (\d+) drinks?$`)

// fixedPenalties are severe penalty texts that are never scaled by mode.
var fixedPenalties = map[string]bool{
	"Take a shot":                     true,
	"Shotgun a beer":                  true,
	"Finish your drink":               true,
	"Finish your drink + 1/2 another": true,
}

// DescribeForMode derives the display text for a penalty under a mode.
// Non-drinking mode replaces any penalty with a neutral message. "Take N
// drink(s)" penalties scale with intensity: casual unchanged, party +1,
// lit doubled. Fixed severe penalties and free-form challenge text pass
// through untouched.
func DescribeForMode(penalty string, mode Mode) string {
	if mode == ModeNonDrinking {
		return NonDrinkingText
	}
	if fixedPenalties[penalty] {
		return penalty
	}

	m := drinkCountPattern.FindStringSubmatch(penalty)
	if m == nil {
		return penalty
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return penalty
	}

	switch mode {
	case ModeParty:
		n++
	case ModeLit:
		n *= 2
	}

	unit := "drinks"
	if n == 1 {
		unit = "drink"
	}
	return fmt.Sprintf("Take %d %s", n, unit)
}
