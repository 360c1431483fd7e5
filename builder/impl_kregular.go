// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_kregular.go - k-regular ring lattice.
//
// Contract:
//   • n ≥ 0, 1 ≤ k ≤ n/2 (else ErrInvalidDegree).
//   • Nodes are placed on a ring in random order; each links to its next k
//     ring neighbours. Pairs already linked (wrap-around when 2k = n) are
//     skipped, so the result is simple.
//
// Complexity:
//   • O(n·k) time.

package builder

import (
	"github.com/katalvlaran/netforge/core"
)

var kRegularDefaults = Params{ParamNumNodes: 3, ParamK: 1}

// KRegularModel generates ring lattices where every node has degree 2k
// (k when n = 2k).
type KRegularModel struct {
	model
	n int
	k int
}

// NewKRegularModel returns an unconfigured k-regular model.
func NewKRegularModel(opts ...Option) *KRegularModel {
	return &KRegularModel{model: newModel(ModelKRegular, MethodKRegular, opts)}
}

// Configure implements Model. Keys: numNodes, k, seed.
func (r *KRegularModel) Configure(p Params) error {
	n, err := intParam(MethodKRegular, p, kRegularDefaults, ParamNumNodes)
	if err != nil {
		return err
	}
	k, err := intParam(MethodKRegular, p, kRegularDefaults, ParamK)
	if err != nil {
		return err
	}
	seed, err := seedParam(MethodKRegular, p)
	if err != nil {
		return err
	}

	if err = checkNodes(MethodKRegular, n, 0); err != nil {
		return err
	}
	if err = checkDegree(MethodKRegular, ParamK, k, 1, n/2); err != nil {
		return err
	}

	r.n, r.k = n, k
	r.commit(Params{ParamNumNodes: n, ParamK: k, ParamSeed: seed}, seed)

	return nil
}

// ConfigureKRegular is Configure with typed arguments.
func (r *KRegularModel) ConfigureKRegular(numNodes, k int, seed int64) error {
	return r.Configure(Params{ParamNumNodes: numNodes, ParamK: k, ParamSeed: seed})
}

// Generate implements Model.
func (r *KRegularModel) Generate() (*core.Network, error) {
	return r.generate(r.build)
}

func (r *KRegularModel) build() error {
	nodes := addNodes(r.net, r.n, r.cfg)
	perm := r.rng.Perm(r.n)

	for i := 0; i < r.n; i++ {
		a := nodes[perm[i]]
		for j := 1; j <= r.k; j++ {
			b := nodes[perm[(i+j)%r.n]]
			if r.net.ContainsLinks(a, b) {
				continue
			}
			if err := connect(r.net, a, b, r.cfg, MethodKRegular); err != nil {
				return err
			}
		}
	}

	return nil
}
