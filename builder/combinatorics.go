// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// combinatorics.go - edge unranking and exclusion-aware sampling shared by
// the random models.
//
// Edge enumeration (row-major upper triangle, n nodes):
//
//	index: 0    1    ...  n-2      n-1  ...
//	edge : 0-1  0-2  ...  0-(n-1)  1-2  ...
//
// UnrankEdge inverts it in O(1) with the triangular-number square root
// followed by an exact integer correction.

package builder

import (
	"math"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange indicates an edge index outside [0, n(n-1)/2).
var ErrIndexOutOfRange = errors.New("builder: edge index out of range")

// MaxLinks returns n(n-1)/2, the number of unordered node pairs.
func MaxLinks(n int) int64 {
	if n < 2 {
		return 0
	}
	nn := int64(n)

	return nn * (nn - 1) / 2
}

// UnrankEdge maps index ∈ [0, n(n-1)/2) to the pair (i, j), i < j, holding
// that position in the row-major upper-triangle enumeration.
// Complexity: O(1).
func UnrankEdge(index int64, n int) (i, j int, err error) {
	if index < 0 || index >= MaxLinks(n) {
		return 0, 0, errors.Wrapf(ErrIndexOutOfRange, "UnrankEdge: index=%d n=%d", index, n)
	}
	i, j = unrankEdge(index, n)

	return i, j, nil
}

// triangular returns k(k+1)/2.
func triangular(k int64) int64 { return k * (k + 1) / 2 }

// unrankEdge is UnrankEdge without the range check.
//
// Counting from the end of the enumeration, rev = total-1-index falls in the
// k-th reversed row when T(k) ≤ rev < T(k+1); row = n-2-k. The float root is
// corrected so the result is exact for every representable n.
func unrankEdge(index int64, n int) (int, int) {
	maxI := int64(n - 1)
	rev := triangular(maxI) - 1 - index

	k := int64((math.Sqrt(float64(8*rev+1)) - 1) / 2)
	for k > 0 && triangular(k) > rev {
		k--
	}
	for triangular(k+1) <= rev {
		k++
	}

	row := maxI - 1 - k
	col := (index + triangular(row)) % maxI

	return int(row), int(col + 1)
}

// SampleExcluding draws uniformly from [0,n) minus exclude.
// exclude must be sorted ascending, duplicate-free and inside [0,n).
//
// A draw r from the len(exclude) smaller range is shifted past every excluded
// value ≤ r, which maps the reduced range onto the admissible values one to
// one. Exactly one Intn call is made.
//
// Errors: ErrNoCandidate if exclude covers the whole range.
// Complexity: O(len(exclude)).
func SampleExcluding(rng Source, n int, exclude []int) (int, error) {
	if len(exclude) >= n {
		return 0, errors.Wrapf(ErrNoCandidate, "SampleExcluding: n=%d excluded=%d", n, len(exclude))
	}

	r := rng.Intn(n - len(exclude))
	for _, e := range exclude {
		if r < e {
			return r, nil
		}
		r++
	}

	return r, nil
}
