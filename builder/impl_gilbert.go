// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_gilbert.go - Gilbert model G(n, p).
//
// Contract:
//   • n ≥ 0, 0 ≤ p ≤ 1. p=0 yields no links, p=1 the complete graph.
//
// Algorithm (geometric skipping):
//   • Candidate pairs (v, w), w < v, are visited row by row through a virtual
//     lower triangle. Instead of one Bernoulli trial per pair, the gap to the
//     next included pair is drawn directly as floor(log(1-r)/log(1-p)).
//   • Each included pair links node v → node w.
//
// Complexity:
//   • Expected O(n + n²p) time.

package builder

import (
	"math"

	"github.com/katalvlaran/netforge/core"
)

var gilbertDefaults = Params{ParamNumNodes: 10, ParamP: 0.5}

// GilbertModel generates graphs where every pair is linked independently with probability p.
type GilbertModel struct {
	model
	n int
	p float64
}

// NewGilbertModel returns an unconfigured Gilbert model.
func NewGilbertModel(opts ...Option) *GilbertModel {
	return &GilbertModel{model: newModel(ModelGilbert, MethodGilbert, opts)}
}

// Configure implements Model. Keys: numNodes, p, seed.
func (g *GilbertModel) Configure(params Params) error {
	n, err := intParam(MethodGilbert, params, gilbertDefaults, ParamNumNodes)
	if err != nil {
		return err
	}
	p, err := floatParam(MethodGilbert, params, gilbertDefaults, ParamP)
	if err != nil {
		return err
	}
	seed, err := seedParam(MethodGilbert, params)
	if err != nil {
		return err
	}

	if err = checkNodes(MethodGilbert, n, 0); err != nil {
		return err
	}
	if err = checkProbability(MethodGilbert, p, MaxProbability, true); err != nil {
		return err
	}

	g.n, g.p = n, p
	g.commit(Params{ParamNumNodes: n, ParamP: p, ParamSeed: seed}, seed)

	return nil
}

// ConfigureGilbert is Configure with typed arguments.
func (g *GilbertModel) ConfigureGilbert(numNodes int, p float64, seed int64) error {
	return g.Configure(Params{ParamNumNodes: numNodes, ParamP: p, ParamSeed: seed})
}

// Generate implements Model.
func (g *GilbertModel) Generate() (*core.Network, error) {
	return g.generate(g.build)
}

func (g *GilbertModel) build() error {
	nodes := addNodes(g.net, g.n, g.cfg)
	if g.p == 0 {
		return nil
	}

	// Gaps beyond the remaining pairs all end the walk; capping keeps w in range.
	maxSkip := float64(MaxLinks(g.n))
	logQ := math.Log1p(-g.p)

	v, w := 1, -1
	for v < g.n {
		skip := 0
		if g.p < 1 {
			s := math.Floor(math.Log(1-g.rng.Float64()) / logQ)
			// Tiny p makes the ratio overflow; NaN and -Inf also land here.
			if !(s >= 0 && s <= maxSkip) {
				s = maxSkip
			}
			skip = int(s)
		}
		w += 1 + skip
		for w >= v && v < g.n {
			w -= v
			v++
		}
		if v < g.n {
			if err := connect(g.net, nodes[v], nodes[w], g.cfg, MethodGilbert); err != nil {
				return err
			}
		}
	}

	return nil
}
