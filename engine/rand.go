package engine

import (
	"math/rand/v2"
	"time"
)

// pcgStream is the fixed second PCG word; the seed selects the sequence
const pcgStream = 0x9e3779b97f4a7c15

// NewRand returns the spawn source for seed, or a clock-seeded one for zero
// The seed actually used is returned so a run can be reproduced
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, pcgStream)), seed
}
