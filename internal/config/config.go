package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// HouseVoterConfig controls the optional house-voter agents that keep small
// rooms resolving submissions.
type HouseVoterConfig struct {
	Enabled bool `json:"enabled"`
	// MinDelaySeconds/MaxDelaySeconds bound how long a house voter waits
	// before casting its vote on a pending submission.
	MinDelaySeconds int `json:"min_delay_seconds"`
	MaxDelaySeconds int `json:"max_delay_seconds"`
	// ApproveBias is the probability a house voter approves, in [0,1].
	ApproveBias float64 `json:"approve_bias"`
}

// GameConfig holds tunable party-game settings.
type GameConfig struct {
	HandSize            int              `json:"hand_size"`
	DeckSize            int              `json:"deck_size"`
	DefaultMode         string           `json:"default_mode"`
	DefaultSport        string           `json:"default_sport"`
	MaxPlayers          int              `json:"max_players"`
	TurnDurationSeconds int              `json:"turn_duration_seconds"`
	HouseVoters         HouseVoterConfig `json:"house_voters"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. The first
// call wins; later calls return the first result.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration, or nil when no config file
// was available. Use the accessor functions for defaulted values.
func GetGameConfig() *GameConfig {
	return cfg
}

// HandSize returns the configured opening hand size.
func HandSize() int {
	if cfg == nil || cfg.HandSize <= 0 {
		return 5
	}
	return cfg.HandSize
}

// DeckSize returns the configured weighted deck size.
func DeckSize() int {
	if cfg == nil || cfg.DeckSize <= 0 {
		return 50
	}
	return cfg.DeckSize
}

// DefaultMode returns the mode used when a room does not choose one.
func DefaultMode() string {
	if cfg == nil || cfg.DefaultMode == "" {
		return "party"
	}
	return cfg.DefaultMode
}

// DefaultSport returns the sport used when a room does not choose one.
func DefaultSport() string {
	if cfg == nil || cfg.DefaultSport == "" {
		return "football"
	}
	return cfg.DefaultSport
}

// MaxPlayers returns the room size cap.
func MaxPlayers() int {
	if cfg == nil || cfg.MaxPlayers <= 0 {
		return 8
	}
	return cfg.MaxPlayers
}

// HouseVoters returns house-voter settings with sane delay bounds.
func HouseVoters() HouseVoterConfig {
	if cfg == nil {
		return HouseVoterConfig{MinDelaySeconds: 2, MaxDelaySeconds: 6, ApproveBias: 0.8}
	}
	hv := cfg.HouseVoters
	if hv.MinDelaySeconds <= 0 {
		hv.MinDelaySeconds = 2
	}
	if hv.MaxDelaySeconds < hv.MinDelaySeconds {
		hv.MaxDelaySeconds = hv.MinDelaySeconds + 4
	}
	if hv.ApproveBias <= 0 || hv.ApproveBias > 1 {
		hv.ApproveBias = 0.8
	}
	return hv
}
