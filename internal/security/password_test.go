package security_test

import (
	"testing"

	"github.com/alphamugerwa/authorshaven/internal/security"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := security.HashPassword("Alpha123!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if hash == "Alpha123!" {
		t.Fatal("password stored verbatim")
	}

	if err := security.CheckPassword(hash, "Alpha123!"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}

	if err := security.CheckPassword(hash, "alpha123!"); err == nil {
		t.Fatal("wrong password accepted")
	}
}
