package jwtutil

import (
	"errors"
	"testing"
	"time"
)

func newSigner(secret string) *Signer {
	return &Signer{Secret: []byte(secret), Issuer: "learnhub-test", ExpDays: 7}
}

func TestSignAndParse_Success(t *testing.T) {
	t.Parallel()

	s := newSigner("super-secret")
	tok, err := s.Sign("alice")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("username mismatch: got %q want %q", claims.Username, "alice")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newSigner("right-secret").Sign("bob")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = newSigner("wrong-secret").Parse(tok)
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := newSigner("k").Parse("not.a.jwt")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

// A token issued at T must still verify at T+6d and must be rejected at
// T+8d: the expiry sits at the 7-day mark.
func TestParse_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newSigner("boundary-secret")
	s.Now = func() time.Time { return issuedAt }

	tok, err := s.Sign("carol")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	s.Now = func() time.Time { return issuedAt.Add(6 * 24 * time.Hour) }
	if _, err := s.Parse(tok); err != nil {
		t.Fatalf("token should be valid at T+6d, got %v", err)
	}

	s.Now = func() time.Time { return issuedAt.Add(8 * 24 * time.Hour) }
	_, err = s.Parse(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at T+8d, got %v", err)
	}
}

func TestExtractBearer(t *testing.T) {
	t.Parallel()

	if got := ExtractBearer("Bearer abc.def.ghi"); got != "abc.def.ghi" {
		t.Fatalf("prefix not stripped: %q", got)
	}
	// A header without the prefix is the token itself.
	if got := ExtractBearer("abc.def.ghi"); got != "abc.def.ghi" {
		t.Fatalf("raw value mangled: %q", got)
	}
}
