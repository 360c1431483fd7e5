// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Adds the n1 left nodes, then the n2 right nodes.
//   • Emits every cross pair L_i → R_j (i asc, j asc); mirrors R_j → L_i
//     only if the network is directed.
//
// Complexity:
//   • Time: O(n1+n2) nodes + O(n1·n2) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netforge/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Network, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}

		left := addNodes(g, n1, cfg)
		right := addNodes(g, n2, cfg)
		for _, l := range left {
			for _, r := range right {
				if err := connectBoth(g, l, r, cfg, MethodCompleteBipartite); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
