package auth_test

import (
	"testing"
	"time"

	"github.com/alphamugerwa/authorshaven/internal/auth"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := auth.NewManager("test-secret", 15*time.Minute)

	token, err := m.GenerateAccessToken("user-1", "jane@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if claims.UserID != "user-1" || claims.Email != "jane@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	minting := auth.NewManager("secret-a", 15*time.Minute)
	verifying := auth.NewManager("secret-b", 15*time.Minute)

	token, err := minting.GenerateAccessToken("user-1", "jane@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifying.VerifyAccessToken(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	m := auth.NewManager("test-secret", -1*time.Minute)

	token, err := m.GenerateAccessToken("user-1", "jane@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := m.VerifyAccessToken(token); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	m := auth.NewManager("test-secret", 15*time.Minute)

	if _, err := m.VerifyAccessToken("not-a-jwt"); err == nil {
		t.Fatal("garbage token was accepted")
	}
}
