package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way bcrypt hash from the given plaintext
// password using the default cost. The same password hashed twice produces
// different hashes because bcrypt embeds a random salt.
//
// The returned string is safe to persist; the plaintext must never be stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison is constant-time with respect to the derived
// key, as implemented by the bcrypt package.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
