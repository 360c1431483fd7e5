// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_ba_forest.go - Barabási–Albert tree (one link per new node).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Produces a tree: n-1 links, connected, acyclic.
//
// Algorithm (link pool):
//   • pool holds both endpoints of every link placed so far, so a uniform
//     pick from it is a degree-proportional pick of a node.
//   • New node v stores itself and a uniformly drawn earlier pool entry.
//   • Nodes are permuted before links are materialised so ids carry no
//     attachment-time bias.
//
// Complexity:
//   • O(n) time and space.

package builder

import (
	"github.com/katalvlaran/netforge/core"
)

var baForestDefaults = Params{ParamNumNodes: 2}

// BAForestModel generates preferential-attachment trees in linear time.
type BAForestModel struct {
	model
	n int
}

// NewBAForestModel returns an unconfigured Barabási–Albert forest model.
func NewBAForestModel(opts ...Option) *BAForestModel {
	return &BAForestModel{model: newModel(ModelBAForest, MethodBAForest, opts)}
}

// Configure implements Model. Keys: numNodes, seed.
func (f *BAForestModel) Configure(p Params) error {
	n, err := intParam(MethodBAForest, p, baForestDefaults, ParamNumNodes)
	if err != nil {
		return err
	}
	seed, err := seedParam(MethodBAForest, p)
	if err != nil {
		return err
	}
	if err = checkNodes(MethodBAForest, n, MinBANodes); err != nil {
		return err
	}

	f.n = n
	f.commit(Params{ParamNumNodes: n, ParamSeed: seed}, seed)

	return nil
}

// ConfigureBAForest is Configure with typed arguments.
func (f *BAForestModel) ConfigureBAForest(numNodes int, seed int64) error {
	return f.Configure(Params{ParamNumNodes: numNodes, ParamSeed: seed})
}

// Generate implements Model.
func (f *BAForestModel) Generate() (*core.Network, error) {
	return f.generate(f.build)
}

func (f *BAForestModel) build() error {
	pool := make([]int, 2*(f.n-1))
	pool[0], pool[1] = 0, 1
	numLinks := 1
	for v := 2; v < f.n; v++ {
		idx := 2 * numLinks
		pool[idx] = v
		pool[idx+1] = pool[f.rng.Intn(idx)]
		numLinks++
	}

	nodes := addNodes(f.net, f.n, f.cfg)
	perm := f.rng.Perm(f.n)
	for i := 0; i < len(pool); i += 2 {
		if err := connect(f.net, nodes[perm[pool[i]]], nodes[perm[pool[i+1]]], f.cfg, MethodBAForest); err != nil {
			return err
		}
	}

	return nil
}
