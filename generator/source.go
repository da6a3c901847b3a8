// SPDX-License-Identifier: MIT

package generator

import (
	"math/rand"
)

// Source yields integers uniformly distributed in the closed range [lo, hi].
// Implementations may assume lo ≤ hi.
type Source interface {
	IntRange(lo, hi int) int
}

// RandSource adapts *rand.Rand to Source.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource wraps r. Panics on nil (programmer error).
func NewRandSource(r *rand.Rand) *RandSource {
	if r == nil {
		panic("generator: NewRandSource(nil)")
	}

	return &RandSource{rng: r}
}

// NewSeededSource returns a deterministic Source for the given seed.
func NewSeededSource(seed int64) *RandSource {
	return NewRandSource(rand.New(rand.NewSource(seed)))
}

// IntRange implements Source.
func (s *RandSource) IntRange(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}
