package chip8

import (
	cryptorand "crypto/rand"
	"math"
	"math/big"
	"time"
)

// stolen from: https://github.com/docker/cli/blob/aaa7a7cb9567cb5ed2e82facc2bbdd8a85347512/vendor/github.com/docker/docker/pkg/stringid/stringid.go#L81-L93
//
// newSeed tries to use a crypto seed before falling back to time, so every
// VM gets its own random sequence.
func newSeed() int64 {
	cryptoseed, err := cryptorand.Int(cryptorand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		// This should not happen, but worst-case fallback to time-based seed.
		return time.Now().UnixNano()
	}
	return cryptoseed.Int64()
}
