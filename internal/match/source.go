package match

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// IndexSource picks a uniform index in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type IndexSource interface {
	IntN(n int) int
}

// NewRandomSource returns a general-purpose PCG source seeded from crypto/rand.
// Every engine gets its own, so no source is shared between rounds.
func NewRandomSource() *rand.Rand {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}
