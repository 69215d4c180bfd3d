package service

import (
	"strings"
	"testing"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	digest, err := hasher.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "Secret123" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("expected bcrypt digest, got %q", digest)
	}

	if !hasher.Verify("Secret123", digest) {
		t.Fatalf("Verify rejected the correct password")
	}
	if hasher.Verify("wrong", digest) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestPasswordHasher_HashEmptyInput(t *testing.T) {
	hasher := NewPasswordHasher()

	if _, err := hasher.Hash(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestPasswordHasher_VerifyMalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher()

	if hasher.Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("Verify accepted a malformed digest")
	}
	if hasher.Verify("anything", "") {
		t.Fatalf("Verify accepted an empty digest")
	}
}

func TestPasswordHasher_SaltedDigestsDiffer(t *testing.T) {
	hasher := NewPasswordHasher()

	a, err := hasher.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := hasher.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two digests of the same password should not match (salt)")
	}
}
