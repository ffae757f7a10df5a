package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "tourguide/internal/errors"
)

const bcryptCost = 10

// HashPassword returns the salted bcrypt hash of plaintext. Two calls with the
// same input produce different hashes. Empty plaintext is rejected before
// hashing.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", apperrors.ErrInvalidCredentialFormat
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash. Comparison
// goes through bcrypt, never string equality.
func CheckPassword(plaintext, hash string) bool {
	if plaintext == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
