package webutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateHash creates a SHA-256 hash of the input string and returns it
// as a hexadecimal string. Used for deterministic keying (placeholder
// cover colors) and cacheable content fingerprints.
func GenerateHash(data string) (string, error) {
	hasher := sha256.New()
	_, err := hasher.Write([]byte(data))
	if err != nil {
		return "", fmt.Errorf("failed to write data to hasher: %w", err)
	}
	hashBytes := hasher.Sum(nil)
	return hex.EncodeToString(hashBytes), nil
}
