package util

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 100_000
	saltLen          = 16
	keyLen           = 32
)

// HashPassword derives a PBKDF2+SHA256 digest from the password and
// returns it as a "salt$hash" string (both parts base64).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is empty")
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyLen, sha256.New)
	saltStr := base64.RawStdEncoding.EncodeToString(salt)
	hashStr := base64.RawStdEncoding.EncodeToString(hash)

	return saltStr + "$" + hashStr, nil
}

// CheckPassword reports whether the plaintext password matches the
// stored "salt$hash" digest.
func CheckPassword(password, stored string) bool {
	if password == "" || stored == "" {
		return false
	}

	parts := strings.Split(stored, "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	hash := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(hash, expected) == 1
}
