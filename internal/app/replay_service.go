package app

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// ReplayTokenService issues and verifies signed replay attestations. A token
// binds a room's deck seed, sport, and mode, so anyone holding it can rerun
// the deterministic deck build and check the game they watched against the
// cards that were actually possible.
type ReplayTokenService struct {
	secret string
	issuer string
}

// ReplayClaims is the verified contents of a replay token.
type ReplayClaims struct {
	MatchID  string
	DeckSeed string
	Sport    string
	Mode     string
}

// NewReplayTokenService constructs the service. Both secret and issuer are
// required for token generation.
func NewReplayTokenService(secret, issuer string) *ReplayTokenService {
	return &ReplayTokenService{secret: secret, issuer: issuer}
}

// GenerateToken signs a replay attestation for a finished or running game.
func (s *ReplayTokenService) GenerateToken(matchID, deckSeed, sport, mode string, ttl time.Duration) (string, error) {
	if s == nil {
		return "", fmt.Errorf("replay token service is nil")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("replay token config is incomplete")
	}
	if matchID == "" || deckSeed == "" {
		return "", fmt.Errorf("match id and deck seed are required")
	}

	claims := jwt.MapClaims{
		"iss":  s.issuer,
		"sub":  matchID,
		"exp":  time.Now().Add(ttl).Unix(),
		"seed": deckSeed,
		"spt":  sport,
		"mode": mode,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifyToken checks a replay token's signature and expiry and returns its
// claims.
func (s *ReplayTokenService) VerifyToken(tokenString string) (ReplayClaims, error) {
	if s == nil || s.secret == "" {
		return ReplayClaims{}, fmt.Errorf("replay token config is incomplete")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return ReplayClaims{}, fmt.Errorf("failed to parse replay token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ReplayClaims{}, fmt.Errorf("invalid replay token")
	}
	if iss, _ := claims["iss"].(string); iss != s.issuer {
		return ReplayClaims{}, fmt.Errorf("unexpected replay token issuer")
	}

	out := ReplayClaims{}
	out.MatchID, _ = claims["sub"].(string)
	out.DeckSeed, _ = claims["seed"].(string)
	out.Sport, _ = claims["spt"].(string)
	out.Mode, _ = claims["mode"].(string)
	return out, nil
}
