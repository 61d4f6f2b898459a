package domain

import "testing"

func TestDescribeForModeScaling(t *testing.T) {
	tests := []struct {
		penalty string
		mode    Mode
		want    string
	}{
		{"Take 1 drink", ModeCasual, "Take 1 drink"},
		{"Take 3 drinks", ModeCasual, "Take 3 drinks"},
		{"Take 1 drink", ModeParty, "Take 2 drinks"},
		{"Take 2 drinks", ModeParty, "Take 3 drinks"},
		{"Take 1 drink", ModeLit, "Take 2 drinks"},
		{"Take 3 drinks", ModeLit, "Take 6 drinks"},
	}
	for _, tt := range tests {
		if got := DescribeForMode(tt.penalty, tt.mode); got != tt.want {
			t.Fatalf("DescribeForMode(%q, %s) = %q, want %q", tt.penalty, tt.mode, got, tt.want)
		}
	}
}

func TestDescribeForModeNonDrinking(t *testing.T) {
	for _, penalty := range []string{"Take 3 drinks", "Take a shot", "Finish your drink"} {
		if got := DescribeForMode(penalty, ModeNonDrinking); got != NonDrinkingText {
			t.Fatalf("non-drinking %q = %q, want neutral text", penalty, got)
		}
	}
}

func TestDescribeForModeFixedPenaltiesNeverScale(t *testing.T) {
	fixed := []string{
		"Take a shot",
		"Shotgun a beer",
		"Finish your drink",
		"Finish your drink + 1/2 another",
	}
	for _, penalty := range fixed {
		for _, mode := range []Mode{ModeCasual, ModeParty, ModeLit} {
			if got := DescribeForMode(penalty, mode); got != penalty {
				t.Fatalf("fixed penalty %q scaled to %q in %s", penalty, got, mode)
			}
		}
	}
}

func TestDescribeForModePassThrough(t *testing.T) {
	// Challenge text without a drink count is untouched outside non-drinking.
	text := "Do your best referee signal"
	if got := DescribeForMode(text, ModeLit); got != text {
		t.Fatalf("challenge text changed: %q", got)
	}
}
