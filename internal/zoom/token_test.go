package zoom

import (
	"strings"
	"testing"
	"time"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestHS256Issuer_MissingCredentials(t *testing.T) {
	if _, err := NewHS256Issuer("", "secret"); !model.IsConfigurationError(err) {
		t.Fatalf("expected configuration error for empty key, got %v", err)
	}
	if _, err := NewHS256Issuer("key", ""); !model.IsConfigurationError(err) {
		t.Fatalf("expected configuration error for empty secret, got %v", err)
	}
}

func TestHS256Issuer_Deterministic(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	issue := func() string {
		iss, err := NewHS256Issuer("key", "secret")
		if err != nil {
			t.Fatalf("new issuer: %v", err)
		}
		tok, err := iss.WithClock(fixedClock(at)).Token()
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		return tok
	}

	a, b := issue(), issue()
	if a != b {
		t.Fatalf("tokens differ for a fixed clock:\n%s\n%s", a, b)
	}
	if len(strings.Split(a, ".")) != 3 {
		t.Fatalf("expected compact three-segment token, got %q", a)
	}
}

func TestHS256Issuer_VerifyAndExpiry(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	iss, err := NewHS256Issuer("key", "secret")
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	tok, err := iss.WithClock(fixedClock(at)).Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	if err := Verify(tok, "secret", at); err != nil {
		t.Fatalf("fresh token should verify: %v", err)
	}
	if err := Verify(tok, "secret", at.Add(DefaultTokenTTL-time.Second)); err != nil {
		t.Fatalf("token inside TTL should verify: %v", err)
	}
	if err := Verify(tok, "secret", at.Add(DefaultTokenTTL+time.Second)); err == nil {
		t.Fatal("token past TTL should be rejected as expired")
	}
	if err := Verify(tok, "wrong-secret", at); err == nil {
		t.Fatal("token should not verify against a different secret")
	}
}

func TestVerify_Malformed(t *testing.T) {
	if err := Verify("not-a-token", "secret", time.Now()); err == nil {
		t.Fatal("expected error for malformed token")
	}
	if err := Verify("a.b", "secret", time.Now()); err == nil {
		t.Fatal("expected error for two-segment token")
	}
}
