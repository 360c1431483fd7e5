// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): rim C_{n-1} plus one hub.
//   • Rim nodes are added first (Cycle order), the hub last.
//   • Spokes hub→rim_i for i=0..n-2, mirrored on directed networks.
//
// Complexity:
//   • Time: O(n) nodes + O(2n-2) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netforge/core"
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Network, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		base := g.Nodes()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		rim := g.Nodes()[len(base):]

		hub := addNodes(g, 1, cfg)[0]
		for _, r := range rim {
			if err := connectBoth(g, hub, r, cfg, MethodWheel); err != nil {
				return err
			}
		}

		return nil
	}
}
