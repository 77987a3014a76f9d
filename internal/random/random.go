// Package random provides the randomness consumed by the routine generator.
//
// Generators never touch the global random state. They receive a [Source], which is seedable for reproducible
// routines and scriptable in tests.
package random

import (
	"math/rand/v2"
)

// Source draws uniformly distributed values.
type Source interface {
	// IntRange returns an int in the closed interval [lo, hi]. It panics if hi < lo.
	IntRange(lo, hi int) int
	// Choice returns one element of items. It panics if items is empty.
	Choice(items []string) string
}

// Rand is a [Source] backed by a PCG generator.
type Rand struct {
	r *rand.Rand
}

// New returns a deterministic [Rand]. The same seed yields the same sequence of draws.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // not for crypto
}

// NewSeed returns a fresh seed from the runtime's random state. Log it to reproduce a run with [New].
func NewSeed() uint64 {
	return rand.Uint64() //nolint:gosec // not for crypto
}

// IntRange returns an int in [lo, hi].
func (r *Rand) IntRange(lo, hi int) int {
	if hi < lo {
		panic("random: IntRange called with hi < lo")
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Choice returns a uniformly chosen element of items.
func (r *Rand) Choice(items []string) string {
	if len(items) == 0 {
		panic("random: Choice called with no items")
	}
	return items[r.r.IntN(len(items))]
}
