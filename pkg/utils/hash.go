package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))

	return hex.EncodeToString(h.Sum(nil))
}

// EmailFingerprint identifies an address in logs without recording it.
// Case and surrounding whitespace do not change the fingerprint.
func EmailFingerprint(email string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)))[:12]
}
