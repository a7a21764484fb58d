package crypto

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	if hash == "secret1" || strings.Contains(hash, "secret1") {
		t.Fatal("Hash() leaked the plaintext password")
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() unexpected error: %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Errorf("Hash() cost = %d, want %d", cost, bcrypt.MinCost)
	}
}

func TestNewPasswordHasherClampsCost(t *testing.T) {
	for _, cost := range []int{0, 1, bcrypt.MaxCost + 1} {
		if h := NewPasswordHasher(cost); h.cost != DefaultCost {
			t.Errorf("NewPasswordHasher(%d).cost = %d, want %d", cost, h.cost, DefaultCost)
		}
	}
}

func TestCompare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	match, err := h.Compare(hash, "correct-password")
	if err != nil || !match {
		t.Errorf("Compare() = %v, %v for correct password", match, err)
	}

	match, err = h.Compare(hash, "wrong-password")
	if err != nil || match {
		t.Errorf("Compare() = %v, %v for wrong password", match, err)
	}
}

func TestHashIsSalted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	if a == b {
		t.Error("Hash() produced identical hashes for same password (salt should differ)")
	}
}

func TestCompareMalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	if _, err := h.Compare("not-a-bcrypt-hash", "password"); err == nil {
		t.Error("Compare() expected error for malformed hash")
	}
}

func TestHashMultiByteAtLimit(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	// 72 characters, 144 bytes.
	password := strings.Repeat("é", 72)

	hash, err := h.Hash(password)
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	ok, err := h.Compare(hash, password)
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}
	if !ok {
		t.Error("Compare() = false for the password that was hashed")
	}
}
