package auth

import (
	"strings"
	"testing"
	"time"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	ts, err := NewTokenService("test-secret-at-least-16-chars!!")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return ts
}

func TestNewTokenServiceShortSecret(t *testing.T) {
	if _, err := NewTokenService("short"); err == nil {
		t.Fatal("secrets shorter than 16 chars must be rejected")
	}
}

func TestGenerateLooksLikeJWT(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.Generate("admin:prof@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Errorf("token has %d parts, want header.payload.signature", len(parts))
	}
}

func TestValidateRoundTrip(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.Generate("github:karthi")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	subject, err := ts.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if subject != "github:karthi" {
		t.Errorf("subject = %q, want github:karthi", subject)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.GenerateWithDuration("admin:x", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateWithDuration: %v", err)
	}
	if _, err := ts.Validate(token); err == nil {
		t.Error("expired token must not validate")
	}
}

func TestValidateWrongSecret(t *testing.T) {
	ts := newTestTokenService(t)
	other, err := NewTokenService("a-completely-different-secret!!")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, _ := ts.Generate("admin:x")
	if _, err := other.Validate(token); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func TestValidateGarbage(t *testing.T) {
	ts := newTestTokenService(t)
	for _, bad := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ts.Validate(bad); err == nil {
			t.Errorf("Validate(%q) should fail", bad)
		}
	}
}

func TestValidateTamperedToken(t *testing.T) {
	ts := newTestTokenService(t)

	token, _ := ts.Generate("admin:x")
	tampered := token[:len(token)-2] + "xx"
	if _, err := ts.Validate(tampered); err == nil {
		t.Error("tampered token must not validate")
	}
}
