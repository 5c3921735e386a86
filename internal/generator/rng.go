// Package generator produces the synthetic identities, property attributes,
// prices and listing text used to seed the estate database. Every draw goes
// through a Source so runs can be reproduced from a seed.
package generator

import (
	"math/rand/v2"
	"time"
)

// Source is the source of randomness consumed by the generators.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// NewSource creates a seeded PCG source. A zero seed is replaced by a
// time-derived one; the seed actually used is returned for reproducibility.
func NewSource(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// pick returns a uniformly chosen element of items.
func pick[T any](rng Source, items []T) T {
	return items[rng.IntN(len(items))]
}

// between returns a uniform int in [lo, hi].
func between(rng Source, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// chance returns true with probability p.
func chance(rng Source, p float64) bool {
	return rng.Float64() < p
}

// sample draws n distinct elements of items without replacement, in draw order.
func sample[T any](rng Source, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
