package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// keyBytes is the amount of entropy per token. 32 random bytes hex-encode
// to a 64 character key.
const keyBytes = 32

// Issuer produces opaque bearer token keys. Keys carry no claims; they are
// only meaningful as lookup values against the stored tokens.
type Issuer struct{}

func NewIssuer() *Issuer {
	return &Issuer{}
}

func (i *Issuer) Generate() (string, error) {
	buf := make([]byte, keyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
