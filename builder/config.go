// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • logger    = slog.Default()
//   • directed  = false               (models produce undirected networks)
//   • newSource = math/rand seeded source
//   • rng       = nil                 (link values stay at 0 unless seeded)
//   • valueSeed = unset               (WithRand sources are not replayed)
//   • labelFn   = nil                 (no label property)
//   • valueFn   = nil                 (link value 0)
//
// Randomness split:
//   • Models draw topology from their own Source, reseeded from Params on
//     every Generate.
//   • rng feeds valueFn only, so attaching values never perturbs topology.
//   • A WithSeed rng is reseeded on every Generate, so values replay too.

package builder

import (
	"log/slog"
	"math/rand"
)

// builderConfig aggregates all knobs used by fixtures and models.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	logger *slog.Logger

	// directed applies to networks allocated by models; fixtures take
	// directedness from the core options handed to BuildNetwork.
	directed bool

	// newSource creates the topology random source for a seed.
	newSource func(seed int64) Source

	// rng feeds valueFn; nil means valueFn receives nil.
	rng *rand.Rand

	// valueSeed reseeds rng before each Generate; set by WithSeed only.
	valueSeed    int64
	hasValueSeed bool

	// labelFn renders the creation index of a node as its label property.
	labelFn LabelFn

	// valueFn draws the scalar value of each link created by the builder.
	valueFn ValueFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		logger:    slog.Default(),
		newSource: newMathSource,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resetValues rewinds the value RNG to its seed, if it has one.
func (c *builderConfig) resetValues() {
	if c.hasValueSeed {
		c.rng.Seed(c.valueSeed)
	}
}
