package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService_IssueAndDecode(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user_1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims := svc.Decode(token)
	if claims == nil {
		t.Fatalf("Decode returned nil for a fresh token")
	}
	if claims.UserID != "user_1" {
		t.Fatalf("expected subject user_1, got %q", claims.UserID)
	}
	if claims.ExpiresAt.Before(time.Now()) {
		t.Fatalf("fresh token already expired")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.TTL() != 4*time.Hour {
		t.Fatalf("expected default 4h lifetime, got %v", svc.TTL())
	}
}

func TestTokenService_DecodeExpired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := &tokenClaims{
		ID: "user_1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if svc.Decode(expired) != nil {
		t.Fatalf("Decode accepted an expired token")
	}
}

func TestTokenService_DecodeWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user_1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if verifier.Decode(token) != nil {
		t.Fatalf("Decode accepted a token signed with another secret")
	}
}

func TestTokenService_DecodeMalformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if svc.Decode(token) != nil {
			t.Fatalf("Decode accepted malformed token %q", token)
		}
	}
}

func TestTokenService_DecodeUnexpectedAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// alg=none tokens must never decode.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &tokenClaims{
		ID: "user_1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if svc.Decode(unsigned) != nil {
		t.Fatalf("Decode accepted an unsigned token")
	}
}

func TestTokenService_DecodeMissingSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if svc.Decode(token) != nil {
		t.Fatalf("Decode accepted a token without a subject id")
	}
}
