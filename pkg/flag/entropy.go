// Package flag implements the ChallengeInstance flag-delivery subsystem:
// entropy substitution in mount paths, read-only content/executable volume
// construction, and on-the-fly ELF synthesis for the executable delivery
// mode.
package flag

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const entropyPlaceholder = "{entropy}"

// SubstituteEntropy replaces the literal substring "{entropy}" in path with
// 12 lowercase hex characters drawn from a cryptographic source. Paths
// without the placeholder are returned unchanged.
func SubstituteEntropy(path string) string {
	if !strings.Contains(path, entropyPlaceholder) {
		return path
	}

	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		panic("flag: failed to read entropy: " + err.Error())
	}
	entropy := hex.EncodeToString(buf)

	return strings.ReplaceAll(path, entropyPlaceholder, entropy)
}
