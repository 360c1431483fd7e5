// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • The same options serve fixtures (BuildNetwork) and models (NewXModel).
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"log/slog"
	"math/rand"
)

// Option customizes builders and models by mutating a builderConfig.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithLogger routes debug logs of models to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithDirected makes models produce directed networks.
// Links then point from the node being introduced (or rewired) to its partner.
func WithDirected(directed bool) Option {
	return func(c *builderConfig) {
		c.directed = directed
	}
}

// WithSource replaces the topology random source factory of models.
// fn is called with the configured seed on every Generate. Panics on nil.
func WithSource(fn func(seed int64) Source) Option {
	if fn == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.newSource = fn
	}
}

// WithRand provides an explicit RNG for link value draws. The caller owns its
// state, so repeated Generate calls keep drawing from where it left off.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
		c.hasValueSeed = false
	}
}

// WithSeed creates a new *rand.Rand with the given seed for link value draws.
// Models rewind it to seed before every Generate.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
		c.valueSeed, c.hasValueSeed = seed, true
	}
}

// WithLabelFn sets the node label scheme: creation index -> label property.
// Panics on nil.
func WithLabelFn(fn LabelFn) Option {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithValueFn sets the generator of link values. Panics on nil.
func WithValueFn(fn ValueFn) Option {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}
