// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for netforge/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Network.
//   - Keep tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/netforge/core"
)

// Common sizes used across core tests (avoid magic numbers in test bodies).
const (
	NPath       = 5
	NCompaction = 100
)

// NewPath RETURNS a network holding the path 0-1-...-(n-1) and its nodes.
//
// Implementation:
//   - Stage 1: Create n nodes through CreateNode/AddNode.
//   - Stage 2: Connect consecutive nodes.
func NewPath(t *testing.T, directed bool, n int) (*core.Network, []*core.Node) {
	t.Helper()

	g := core.NewNetwork(core.WithDirected(directed))
	nodes := make([]*core.Node, n)
	for i := range nodes {
		nodes[i] = g.CreateNode()
		MustTrue(t, g.AddNode(nodes[i]), "AddNode")
	}
	for i := 1; i < n; i++ {
		_, err := g.Connect(nodes[i-1], nodes[i])
		MustNoError(t, err, "Connect")
	}

	return g, nodes
}

// MustNoError FAILS the test if err is non-nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: want true; got false", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: want false; got true", op)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got=%d want=%d", op, got, want)
}

// MustEqualIDs FAILS the test unless got equals want element-wise.
func MustEqualIDs(t *testing.T, got, want []int, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got=%v want=%v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got=%v want=%v", op, got, want)
		}
	}
}

// MustSameIDSet FAILS the test unless got and want hold the same ids.
func MustSameIDSet(t *testing.T, got, want []int, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got=%v want=%v", op, got, want)
	}
	count := make(map[int]int, len(got))
	for _, id := range got {
		count[id]++
	}
	for _, id := range want {
		count[id]--
	}
	for id, c := range count {
		if c != 0 {
			t.Fatalf("%s: got=%v want=%v (mismatch at %d)", op, got, want, id)
		}
	}
}

// NodeIDs extracts ids in slice order.
func NodeIDs(nodes []*core.Node) []int {
	ids := make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}

	return ids
}

// LinkIDs extracts ids in slice order.
func LinkIDs(links []*core.Link) []int {
	ids := make([]int, len(links))
	for i, l := range links {
		ids[i] = l.ID()
	}

	return ids
}

// MustDegreeSum FAILS the test unless the degrees of g sum to 2*LinkCount.
func MustDegreeSum(t *testing.T, g *core.Network, op string) {
	t.Helper()

	sum := 0
	for _, n := range g.Nodes() {
		sum += g.Degree(n)
	}
	MustEqualInt(t, sum, 2*g.LinkCount(), op+": degree sum")
}
