package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLength = 32
	scryptN    = 32768 // 2^15
	scryptR    = 8
	scryptP    = 1
	keyLength  = 64
)

// HashPassword hashes a password with a random salt using scrypt.
// The salt is stored as a prefix of the encoded value.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return base64.StdEncoding.EncodeToString(append(salt, hash...)), nil
}

// VerifyPassword checks a password against a stored hash in constant time.
func VerifyPassword(password, encoded string) bool {
	combined, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(combined) != saltLength+keyLength {
		return false
	}

	salt := combined[:saltLength]
	stored := combined[saltLength:]

	hash, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(hash, stored) == 1
}
