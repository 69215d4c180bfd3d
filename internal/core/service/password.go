package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is fixed at build time; it is deliberately not exposed
// through configuration.
const bcryptCost = bcrypt.DefaultCost

var errEmptyPassword = errors.New("password must not be empty")

// PasswordHasher provides one-way salted hashing and constant-time
// verification of credentials.
type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// Hash returns the bcrypt digest of plaintext. Empty input is rejected.
func (PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. It returns false on
// any mismatch, including a malformed digest; it never returns an error.
func (PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
