package token

import (
	"strings"
	"testing"
	"time"

	"github.com/claranceatgalvanize/embridge/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
}

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	raw, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "u1" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
	if claims.Email != "alice@example.com" || claims.Name != "Alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestIssue_ExpirySevenDaysOut(t *testing.T) {
	issuer := NewIssuer("secret", 0) // falls back to DefaultTTL

	raw, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	claims, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}

	want := time.Now().Add(7 * 24 * time.Hour)
	got := claims.ExpiresAt.Time
	if diff := got.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("expiry not ~7 days out: got %v", got)
	}
}

func TestNewIssuer_TTLDefaulting(t *testing.T) {
	if got := NewIssuer("secret", 0).ttl; got != DefaultTTL {
		t.Fatalf("zero ttl not defaulted: got %v", got)
	}
	// A negative ttl is preserved so expiry handling stays observable.
	if got := NewIssuer("secret", -time.Minute).ttl; got != -time.Minute {
		t.Fatalf("negative ttl was coerced: got %v", got)
	}
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewIssuer("secret", -time.Second)

	raw, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := issuer.Verify(raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, err := NewIssuer("right", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := NewIssuer("wrong", time.Hour).Verify(raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	raw, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := issuer.Verify(tampered); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	if _, err := issuer.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
