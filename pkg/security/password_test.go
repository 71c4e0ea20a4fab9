package security_test

import (
	"strings"
	"testing"

	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	"github.com/angelmondragon/shopadmin-backend/pkg/security"
	"golang.org/x/crypto/bcrypt"
)

var fastCfg = config.PasswordConfig{BcryptCost: bcrypt.MinCost}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := security.HashPassword("very-secure-password", fastCfg)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "" || hash == "very-secure-password" {
		t.Fatalf("HashPassword returned unusable digest %q", hash)
	}

	ok, err := security.VerifyPassword("very-secure-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error for valid hash: %v", err)
	}
	if !ok {
		t.Fatal("VerifyPassword failed for the correct password")
	}

	ok, err = security.VerifyPassword("bogus-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error for invalid password: %v", err)
	}
	if ok {
		t.Fatal("VerifyPassword returned true for incorrect password")
	}
}

func TestVerifyRoundTripPrintable(t *testing.T) {
	inputs := []string{"a", "bad", "P@ss w0rd!", "ünïcødé", strings.Repeat("x", 72)}
	for _, p := range inputs {
		hash, err := security.HashPassword(p, fastCfg)
		if err != nil {
			t.Fatalf("hash %q: %v", p, err)
		}
		if ok, err := security.VerifyPassword(p, hash); err != nil || !ok {
			t.Fatalf("expected %q to verify against its own hash (ok=%v err=%v)", p, ok, err)
		}
		if ok, _ := security.VerifyPassword(p+"?", hash); ok {
			t.Fatalf("expected %q? to be rejected", p)
		}
	}
}

func TestVerifyRejectsSuffixBeyondBcryptLimit(t *testing.T) {
	p := strings.Repeat("x", 72)
	hash, err := security.HashPassword(p, fastCfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	ok, err := security.VerifyPassword(p+"anything-else", hash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a longer input sharing the first 72 bytes to be rejected")
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	a, err := security.HashPassword("same", fastCfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := security.HashPassword("same", fastCfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct digests for equal inputs")
	}
}

func TestHashCost(t *testing.T) {
	hash, err := security.HashPassword("pw", config.PasswordConfig{BcryptCost: 1})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := security.Cost(hash)
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Fatalf("expected cost clamped to %d, got %d", bcrypt.MinCost, cost)
	}
}

func TestHashRejectsEmptyAndLong(t *testing.T) {
	if _, err := security.HashPassword("", fastCfg); err == nil {
		t.Fatal("expected error for empty password")
	}
	if _, err := security.HashPassword(strings.Repeat("x", 73), fastCfg); err == nil {
		t.Fatal("expected error for password over 72 bytes")
	}
}

func TestVerifyPasswordBadHash(t *testing.T) {
	if _, err := security.VerifyPassword("irrelevant", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestGenerateTempPassword(t *testing.T) {
	pw, err := security.GenerateTempPassword(16)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len([]rune(pw)) != 16 {
		t.Fatalf("expected 16 characters, got %q", pw)
	}
	if _, err := security.GenerateTempPassword(0); err == nil {
		t.Fatal("expected error for zero length")
	}
}
