package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// HouseIdentity is the profile for one house voter.
type HouseIdentity struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

const houseIDPrefix = "house:"

var (
	houseIdentities []HouseIdentity
	houseNameMap    map[string]string
	loadOnce        sync.Once
	loadErr         error
)

// LoadIdentities loads the house voter profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read house identities: %w", err)
			return
		}

		if err := json.Unmarshal(data, &houseIdentities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal house identities: %w", err)
			return
		}

		houseNameMap = make(map[string]string, len(houseIdentities))
		for _, identity := range houseIdentities {
			if identity.UserID != "" {
				houseNameMap[identity.UserID] = identity.DisplayName
			}
		}
	})
	return loadErr
}

// IsHouse reports whether the given user id belongs to a house voter.
func IsHouse(userID string) bool {
	return strings.HasPrefix(userID, houseIDPrefix)
}

// GetIdentity returns the identity for a slot index, cycling through the
// loaded list. Falls back to a generated identity when none are loaded.
func GetIdentity(slot int) HouseIdentity {
	if len(houseIdentities) == 0 {
		return HouseIdentity{
			UserID:      fmt.Sprintf("%svoter-%d", houseIDPrefix, slot),
			DisplayName: fmt.Sprintf("House Voter %d", slot+1),
		}
	}
	return houseIdentities[slot%len(houseIdentities)]
}

// GetDisplayName returns a house voter's display name, or "" for unknown or
// non-house ids.
func GetDisplayName(userID string) string {
	return houseNameMap[userID]
}
