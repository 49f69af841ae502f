// Package apikey generates and digests opaque project API keys.
//
// Keys are random, shown once at creation, and persisted only as SHA-256
// digests; authentication compares digests, never plaintext.
package apikey

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Generate returns a new opaque API key: 32 random bytes, base64url encoded
// without padding.
func Generate() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating api key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Digest returns the hex-encoded SHA-256 digest of a key, the form stored
// in the api_keys table.
func Digest(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
