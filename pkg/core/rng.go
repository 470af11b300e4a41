package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// FillChoice fills the buffer with values drawn uniformly from alphabet.
func FillChoice(r *RNG, buf []uint8, alphabet []uint8) {
	if len(alphabet) == 0 {
		return
	}
	for i := range buf {
		buf[i] = alphabet[r.IntN(len(alphabet))]
	}
}
