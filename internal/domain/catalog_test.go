package domain

import "testing"

func TestCatalogShape(t *testing.T) {
	football := Catalog(SportFootball)
	if len(football) != 100 {
		t.Fatalf("football catalog size = %d, want 100", len(football))
	}
	basketball := Catalog(SportBasketball)
	if len(basketball) != 60 {
		t.Fatalf("basketball catalog size = %d, want 60", len(basketball))
	}
	if Catalog(Sport("cricket")) != nil {
		t.Fatal("unknown sport should have no catalog")
	}
}

func TestCatalogIdentityAndFields(t *testing.T) {
	for _, sport := range []Sport{SportFootball, SportBasketball} {
		cards := Catalog(sport)
		severities := map[Severity]bool{}
		titles := map[string]bool{}
		for i, c := range cards {
			if c.Sport != sport {
				t.Fatalf("%s[%d] sport = %s", sport, i, c.Sport)
			}
			if c.Title == "" || c.Description == "" {
				t.Fatalf("%s[%d] has empty title or description", sport, i)
			}
			if c.Points < 0 {
				t.Fatalf("%s[%d] negative points", sport, i)
			}
			if titles[c.Title] {
				t.Fatalf("%s duplicate title %q", sport, c.Title)
			}
			titles[c.Title] = true
			severities[c.Severity] = true
		}
		for _, sev := range []Severity{SeverityMild, SeverityModerate, SeveritySevere} {
			if !severities[sev] {
				t.Fatalf("%s catalog missing %s cards", sport, sev)
			}
		}
	}
}

func TestSeverities(t *testing.T) {
	cards := Catalog(SportFootball)
	sevs := Severities(cards)
	if len(sevs) != len(cards) {
		t.Fatalf("severities length = %d, want %d", len(sevs), len(cards))
	}
	for i := range cards {
		if sevs[i] != cards[i].Severity {
			t.Fatalf("severity mismatch at %d", i)
		}
	}
}
