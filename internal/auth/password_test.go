package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// Tests use the minimum bcrypt cost so they don't spend ~250ms per hash.
func newTestPasswordService() *PasswordService {
	return NewPasswordServiceForTest(bcrypt.MinCost)
}

func TestHashAndVerify(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := ps.Verify(hash, "correct horse battery staple"); err != nil {
		t.Errorf("Verify with the right password: %v", err)
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.Hash("the-real-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := ps.Verify(hash, "a-guess"); err == nil {
		t.Error("wrong password must not verify")
	}
}

func TestHashIsSalted(t *testing.T) {
	ps := newTestPasswordService()

	h1, _ := ps.Hash("same-password")
	h2, _ := ps.Hash("same-password")
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	ps := newTestPasswordService()

	if _, err := ps.Hash(strings.Repeat("x", 73)); err == nil {
		t.Error("passwords over 72 bytes must be rejected, not truncated")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	ps := newTestPasswordService()

	if err := ps.Verify("not-a-bcrypt-hash", "whatever"); err == nil {
		t.Error("malformed hash must not verify")
	}
}
