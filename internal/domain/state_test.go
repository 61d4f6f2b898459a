package domain

import "testing"

func TestCardStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to CardStatus
		ok       bool
	}{
		{CardDrawn, CardSubmitted, true},
		{CardDrawn, CardDiscarded, true},
		{CardDrawn, CardResolved, false},
		{CardSubmitted, CardResolved, true},
		{CardSubmitted, CardDrawn, true}, // rejected submission returns to hand
		{CardSubmitted, CardDiscarded, false},
		{CardResolved, CardDrawn, false},
		{CardDiscarded, CardSubmitted, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.ok {
			t.Fatalf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}
