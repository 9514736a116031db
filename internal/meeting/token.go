package meeting

import (
	"crypto/rand"
	"encoding/hex"
)

// NewToken returns 128 random bits, hex encoded. Used for pitch room ids and
// the suffix of generated meeting links.
func NewToken() string {
	b := make([]byte, 16)
	// crypto/rand.Read does not fail on supported platforms
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
