package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateRequestID returns a random 32 character hex identifier.
func GenerateRequestID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
