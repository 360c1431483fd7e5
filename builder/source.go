// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// source.go - the random source contract of models.

package builder

import "math/rand"

// Source is the seedable uniform generator models draw from.
// Given the same seed and call sequence it must reproduce the same values.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform int in [0,n); n > 0.
	Intn(n int) int
	// Int63n returns a uniform int64 in [0,n); n > 0.
	Int63n(n int64) int64
	// Float64 returns a uniform float64 in [0,1).
	Float64() float64
	// Perm returns a uniform permutation of [0,n).
	Perm(n int) []int
	// Seed resets the generator to the state implied by seed.
	Seed(seed int64)
}

// newMathSource is the default Source factory.
func newMathSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
