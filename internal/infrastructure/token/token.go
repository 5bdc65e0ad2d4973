package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// 32 random bytes hex-encoded: 64-char opaque token, 256 bits of entropy.
const tokenBytes = 32

func New() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
