// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds n fresh nodes in index order (0..n-1).
//   • Emits links in stable order i -> (i+1)%n for i=0..n-1; a directed
//     network gets the oriented ring.
//
// Complexity:
//   • Time: O(n) nodes + O(n) links.

package builder

import (
	"github.com/katalvlaran/netforge/core"
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Network, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		nodes := addNodes(g, n, cfg)

		// For i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := connect(g, nodes[i], nodes[(i+1)%n], cfg, MethodCycle); err != nil {
				return err
			}
		}

		return nil
	}
}
