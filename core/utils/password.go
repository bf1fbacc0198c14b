package utils

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 10000
	pbkdf2KeyLength  = 64
	saltLength       = 16
)

// HashPassword derives a PBKDF2-SHA512 hash and returns it in salt$hash form.
func HashPassword(password string) (string, error) {
	salt := GenerateRandomString(saltLength)
	if salt == "" {
		return "", fmt.Errorf("failed to generate salt")
	}

	hash := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	return salt + "$" + hex.EncodeToString(hash), nil
}

// ComparePassword verifies a plaintext password against a stored salt$hash
// value using a constant-time comparison. Empty stored hashes fail closed.
func ComparePassword(stored string, password string) bool {
	salt, wantHex, found := strings.Cut(stored, "$")
	if !found || salt == "" || wantHex == "" {
		return false
	}

	want, err := hex.DecodeString(wantHex)
	if err != nil {
		return false
	}

	got := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, len(want), sha512.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
