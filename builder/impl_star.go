// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first node added is the hub; leaves follow in index order.
//   • Links hub→leaf, mirrored on directed networks.
//
// Complexity:
//   • Time: O(n) nodes + O(n-1) links.

package builder

import (
	"github.com/katalvlaran/netforge/core"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Network, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		nodes := addNodes(g, n, cfg)
		hub := nodes[0]
		for _, leaf := range nodes[1:] {
			if err := connectBoth(g, hub, leaf, cfg, MethodStar); err != nil {
				return err
			}
		}

		return nil
	}
}
