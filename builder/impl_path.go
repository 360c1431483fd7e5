// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds n fresh nodes in index order; links (i-1)→i for i=1..n-1.
//
// Complexity:
//   • Time: O(n) nodes + O(n-1) links.

package builder

import (
	"github.com/katalvlaran/netforge/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Network, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		nodes := addNodes(g, n, cfg)
		for i := 1; i < n; i++ {
			if err := connect(g, nodes[i-1], nodes[i], cfg, MethodPath); err != nil {
				return err
			}
		}

		return nil
	}
}
