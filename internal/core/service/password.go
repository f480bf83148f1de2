package service

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed at 12 (2^12 rounds), calibrated to resist offline
// brute force while keeping login latency tolerable.
const bcryptCost = 12

// HashPassword returns a salted bcrypt hash of the plaintext. Each call
// embeds a fresh random salt, so two hashes of the same password differ.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A malformed hash yields false, same as a wrong password; the caller
// never learns which check failed.
func VerifyPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
