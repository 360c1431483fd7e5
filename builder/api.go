// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Fixtures: one orchestrator, BuildNetwork(nopts, opts, cons...). Creates
//     the network, resolves cfg, runs cons in order.
//   - Models: NewXModel(opts...) returns a Model; Configure then Generate.
//     NewModel(name, opts...) resolves a model through the registry.
//   - Functional options (Option) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and call order ⇒ identical networks.
//   - Safety: never panic; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netforge/core"
)

// Constructor applies a deterministic network mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect the network's directedness.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Network, cfg builderConfig) error

// BuildNetwork creates a new core.Network with options nopts, resolves the
// builder configuration from opts, and applies all constructors in order.
// Each constructor adds its own fresh nodes, so composing two constructors
// yields their disjoint union.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrConstructFailed, ...).
func BuildNetwork(nopts []core.Option, opts []Option, cons ...Constructor) (*core.Network, error) {
	g := core.NewNetwork(nopts...)
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Fixtures (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each fixture returns a Constructor closure that creates its nodes through
// addNodes (so labels apply) and emits links in a stable, documented order.
// On directed networks Cycle and Path follow index order; the other
// fixtures mirror every link (a→b and b→a).
//
// Cycle(n)                    C_n, n ≥ 3. O(n).
// Path(n)                     P_n, n ≥ 2. O(n).
// Star(n)                     hub (first node) + n-1 leaves, n ≥ 2. O(n).
// Wheel(n)                    C_{n-1} + hub, n ≥ 4. O(n).
// Complete(n)                 K_n, n ≥ 1. O(n²).
// CompleteBipartite(n1, n2)   K_{n1,n2}, n1,n2 ≥ 1. O(n1·n2).
// Grid(rows, cols)            4-neighbourhood lattice, row-major. O(rows·cols).
//
// =============================================================================
// Models (declarations) - implemented in impl_*.go
// =============================================================================
//
// NewERModel        exact-m Erdős–Rényi           numNodes, numLinks|m, seed
// NewGilbertModel   G(n,p), geometric skipping    numNodes, p, seed
// NewBAModel        Barabási–Albert, d per node   numNodes, d, seed
// NewBAForestModel  Barabási–Albert tree (d=1)    numNodes, seed
// NewKRegularModel  k-regular ring lattice        numNodes, k, seed
// NewWSModel        Watts–Strogatz small world    numNodes, d, p, seed
