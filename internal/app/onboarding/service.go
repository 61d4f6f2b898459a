package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"sideline/internal/ports"
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// ProfileUpdateErr is set when the profile update failed but onboarding
	// continued.
	ProfileUpdateErr error
	// StatsInitialized reports whether a fresh stats record was created.
	StatsInitialized bool
}

// Service handles post-auth onboarding for new users.
type Service struct {
	accounts ports.AccountPort
	stats    ports.StatsPort
	rng      *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// accounts/stats must be non-nil; rng may be nil to use a time-seeded
// default.
func NewService(accounts ports.AccountPort, stats ports.StatsPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		stats:    stats,
		rng:      rng,
	}
}

// OnboardNewUser initializes profile and stats for a newly created account.
// Profile updates are best-effort; the stats record is the part that must
// succeed.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.stats == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{}
	displayName := s.generateFriendlyName()
	if err := s.accounts.UpdateProfile(ctx, userID, displayName, displayName); err != nil {
		result.ProfileUpdateErr = err
	}

	created, err := s.stats.GrantStarterStatsOnce(ctx, userID)
	if err != nil {
		return result, fmt.Errorf("failed to initialize stats: %w", err)
	}
	result.StatsInitialized = created

	return result, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Loud", "Clutch", "Rowdy", "Golden", "Speedy", "Hyped", "Lucky", "Savvy", "Bold", "Wired"}
	nouns := []string{"Tailgater", "Sideliner", "Captain", "Rookie", "Veteran", "Fanatic", "Kicker", "Baller", "Coach", "Mascot"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
