package app

import (
	"testing"
	"time"
)

func TestReplayTokenRoundTrip(t *testing.T) {
	svc := NewReplayTokenService("test-secret", "sideline")

	token, err := svc.GenerateToken("match-1", "room1-123", "football", "party", time.Hour)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.MatchID != "match-1" || claims.DeckSeed != "room1-123" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Sport != "football" || claims.Mode != "party" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestReplayTokenWrongSecret(t *testing.T) {
	token, err := NewReplayTokenService("secret-a", "sideline").GenerateToken("m", "s", "football", "casual", time.Hour)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if _, err := NewReplayTokenService("secret-b", "sideline").VerifyToken(token); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestReplayTokenWrongIssuer(t *testing.T) {
	token, err := NewReplayTokenService("secret", "someone-else").GenerateToken("m", "s", "football", "casual", time.Hour)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if _, err := NewReplayTokenService("secret", "sideline").VerifyToken(token); err == nil {
		t.Fatal("expected verification failure with wrong issuer")
	}
}

func TestReplayTokenExpired(t *testing.T) {
	svc := NewReplayTokenService("secret", "sideline")
	token, err := svc.GenerateToken("m", "s", "football", "casual", -time.Minute)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if _, err := svc.VerifyToken(token); err == nil {
		t.Fatal("expected verification failure for expired token")
	}
}

func TestReplayTokenMissingConfig(t *testing.T) {
	if _, err := NewReplayTokenService("", "sideline").GenerateToken("m", "s", "f", "c", time.Hour); err == nil {
		t.Fatal("expected error with empty secret")
	}
	if _, err := NewReplayTokenService("secret", "sideline").GenerateToken("", "s", "f", "c", time.Hour); err == nil {
		t.Fatal("expected error with empty match id")
	}
}
