// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_er.go - exact-m Erdős–Rényi model G(n, m).
//
// Contract:
//   • n ≥ 0, 0 ≤ m ≤ n(n-1)/2 (else ErrTooFewVertices / ErrInvalidLinkCount).
//   • Produces exactly m distinct links, no self-loops, uniform over all such
//     link sets.
//
// Algorithm:
//   • Draw r uniform in [0, n(n-1)/2), unrank it to (i, j), redraw while the
//     pair is already linked, then connect nodes[i]→nodes[j].
//
// Complexity:
//   • Expected O(n + m·N/(N-m)) draws for N = n(n-1)/2.

package builder

import (
	"github.com/katalvlaran/netforge/core"
)

var erDefaults = Params{ParamNumNodes: 0, ParamNumLinks: 0}

// ERModel generates uniform random graphs with an exact link count.
type ERModel struct {
	model
	n int
	m int64
}

// NewERModel returns an unconfigured ER model.
func NewERModel(opts ...Option) *ERModel {
	return &ERModel{model: newModel(ModelER, MethodER, opts)}
}

// Configure implements Model. Keys: numNodes, numLinks (alias m), seed.
func (e *ERModel) Configure(p Params) error {
	n, err := intParam(MethodER, p, erDefaults, ParamNumNodes)
	if err != nil {
		return err
	}
	m, err := int64Param(MethodER, p, erDefaults, ParamNumLinks, ParamM)
	if err != nil {
		return err
	}
	seed, err := seedParam(MethodER, p)
	if err != nil {
		return err
	}

	if err = checkNodes(MethodER, n, 0); err != nil {
		return err
	}
	if maxM := MaxLinks(n); m < 0 || m > maxM {
		return invalidConfig(ErrInvalidLinkCount, MethodER, "%s=%d not in [0,%d]", ParamNumLinks, m, maxM)
	}

	e.n, e.m = n, m
	e.commit(Params{ParamNumNodes: n, ParamNumLinks: m, ParamSeed: seed}, seed)

	return nil
}

// ConfigureER is Configure with typed arguments.
func (e *ERModel) ConfigureER(numNodes int, numLinks int64, seed int64) error {
	return e.Configure(Params{ParamNumNodes: numNodes, ParamNumLinks: numLinks, ParamSeed: seed})
}

// Generate implements Model.
func (e *ERModel) Generate() (*core.Network, error) {
	return e.generate(e.build)
}

func (e *ERModel) build() error {
	nodes := addNodes(e.net, e.n, e.cfg)
	total := MaxLinks(e.n)

	for k := int64(0); k < e.m; k++ {
		i, j := unrankEdge(e.rng.Int63n(total), e.n)
		for e.net.ContainsLinks(nodes[i], nodes[j]) {
			i, j = unrankEdge(e.rng.Int63n(total), e.n)
		}
		if err := connect(e.net, nodes[i], nodes[j], e.cfg, MethodER); err != nil {
			return err
		}
	}

	return nil
}
