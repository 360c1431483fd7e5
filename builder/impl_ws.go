// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_ws.go - Watts–Strogatz small-world model.
//
// Contract:
//   • n ≥ 0, 1 ≤ d ≤ (n-1)/2, 0 ≤ p < 1.
//   • Starts from the k-regular ring (k = d) generated by a KRegularModel
//     with the same seed, then rewires.
//
// Algorithm:
//   • The ring's links are visited once, in insertion order. With
//     probability p a link from→to is replaced by from→x, where x is uniform
//     over the nodes that are neither from nor a current neighbour of from.
//   • Exclusion sets reflect the partially rewired network, so the outcome
//     depends on the visiting order; it is fixed by the seed.
//   • A link whose endpoint already neighbours every node stays in place.
//
// Complexity:
//   • O(n·d) for the ring plus O(Σ deg) per rewired link.

package builder

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/katalvlaran/netforge/core"
)

var wsDefaults = Params{ParamNumNodes: 10, ParamD: 2, ParamP: 0.2}

// WSModel generates small-world networks by rewiring a ring lattice.
type WSModel struct {
	model
	ring *KRegularModel
	n    int
	d    int
	p    float64
}

// NewWSModel returns an unconfigured Watts–Strogatz model.
func NewWSModel(opts ...Option) *WSModel {
	return &WSModel{
		model: newModel(ModelWS, MethodWS, opts),
		ring:  NewKRegularModel(opts...),
	}
}

// Configure implements Model. Keys: numNodes, d, p, seed.
func (w *WSModel) Configure(params Params) error {
	n, err := intParam(MethodWS, params, wsDefaults, ParamNumNodes)
	if err != nil {
		return err
	}
	d, err := intParam(MethodWS, params, wsDefaults, ParamD)
	if err != nil {
		return err
	}
	p, err := floatParam(MethodWS, params, wsDefaults, ParamP)
	if err != nil {
		return err
	}
	seed, err := seedParam(MethodWS, params)
	if err != nil {
		return err
	}

	if err = checkNodes(MethodWS, n, 0); err != nil {
		return err
	}
	if err = checkDegree(MethodWS, ParamD, d, 1, (n-1)/2); err != nil {
		return err
	}
	if err = checkProbability(MethodWS, p, MaxProbability, false); err != nil {
		return err
	}
	// d ≤ (n-1)/2 ≤ n/2, so the ring accepts whatever passed above.
	if err = w.ring.ConfigureKRegular(n, d, seed); err != nil {
		return err
	}

	w.n, w.d, w.p = n, d, p
	w.commit(Params{ParamNumNodes: n, ParamD: d, ParamP: p, ParamSeed: seed}, seed)

	return nil
}

// ConfigureWS is Configure with typed arguments.
func (w *WSModel) ConfigureWS(numNodes, d int, p float64, seed int64) error {
	return w.Configure(Params{ParamNumNodes: numNodes, ParamD: d, ParamP: p, ParamSeed: seed})
}

// Generate implements Model.
func (w *WSModel) Generate() (*core.Network, error) {
	return w.generate(w.build)
}

func (w *WSModel) build() error {
	ring, err := w.ring.Generate()
	if err != nil {
		return err
	}
	w.net = ring
	if w.p == 0 {
		return nil
	}

	nodes := ring.Nodes()
	pos := make(map[int]int, len(nodes))
	for i, nd := range nodes {
		pos[nd.ID()] = i
	}

	for _, l := range ring.Links() {
		if w.rng.Float64() >= w.p {
			continue
		}

		from := l.From()
		exclude := []int{pos[from.ID()]}
		for _, nb := range ring.Neighbours(from) {
			exclude = append(exclude, pos[nb.ID()])
		}
		slices.Sort(exclude)
		exclude = slices.Compact(exclude)

		target, err := SampleExcluding(w.rng, w.n, exclude)
		if errors.Is(err, ErrNoCandidate) {
			continue
		}
		ring.RemoveLink(l)
		if err = connect(ring, from, nodes[target], w.cfg, MethodWS); err != nil {
			return err
		}
	}

	return nil
}
