// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 is a single node.
//   • Emits i→j for i<j in lexicographic order; mirrors j→i only if
//     the network is directed.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) links.

package builder

import (
	"github.com/katalvlaran/netforge/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Network, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, 1); err != nil {
			return err
		}

		nodes := addNodes(g, n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connectBoth(g, nodes[i], nodes[j], cfg, MethodComplete); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
