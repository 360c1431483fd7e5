// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices). A 1×1 grid has no links.
//   • Nodes are added row-major: cell (r,c) is node r*cols+c of this call.
//   • For each cell, emits the right link then the down link; mirrored on
//     directed networks.
//
// Complexity:
//   • Time: O(rows·cols) nodes and links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netforge/core"
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Network, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		cells := addNodes(g, rows*cols, cfg)
		at := func(r, c int) *core.Node { return cells[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connectBoth(g, at(r, c), at(r, c+1), cfg, MethodGrid); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connectBoth(g, at(r, c), at(r+1, c), cfg, MethodGrid); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
