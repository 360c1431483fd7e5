// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// impl_ba.go - Barabási–Albert preferential attachment with d links per node.
//
// Contract:
//   • n ≥ 2, d ≥ 1 (else ErrTooFewVertices / ErrInvalidDegree).
//   • Node v (in permuted order) links to min(d, v) distinct earlier nodes.
//   • Sum of degrees equals 2·LinkCount on completion.
//
// Algorithm:
//   • Nodes are visited through a random permutation; score[i] is the degree
//     of the i-th visited node. The first two are linked.
//   • Each target of v is drawn with probability score/remaining, where the
//     already chosen targets are skipped in the cumulative scan and their
//     scores removed from the range, so no CDF is ever rebuilt.
//   • Scores are updated once all of v's links are placed.
//
// Complexity:
//   • O(n·d·n) worst case for the scans; O(n) extra space.

package builder

import (
	"github.com/katalvlaran/netforge/core"
)

var baDefaults = Params{ParamNumNodes: 2, ParamD: 1}

// BAModel generates scale-free networks by preferential attachment.
type BAModel struct {
	model
	n int
	d int
}

// NewBAModel returns an unconfigured Barabási–Albert model.
func NewBAModel(opts ...Option) *BAModel {
	return &BAModel{model: newModel(ModelBA, MethodBA, opts)}
}

// Configure implements Model. Keys: numNodes, d, seed.
func (b *BAModel) Configure(p Params) error {
	n, err := intParam(MethodBA, p, baDefaults, ParamNumNodes)
	if err != nil {
		return err
	}
	d, err := intParam(MethodBA, p, baDefaults, ParamD)
	if err != nil {
		return err
	}
	seed, err := seedParam(MethodBA, p)
	if err != nil {
		return err
	}

	if err = checkNodes(MethodBA, n, MinBANodes); err != nil {
		return err
	}
	if d < 1 {
		return invalidConfig(ErrInvalidDegree, MethodBA, "%s=%d < 1", ParamD, d)
	}

	b.n, b.d = n, d
	b.commit(Params{ParamNumNodes: n, ParamD: d, ParamSeed: seed}, seed)

	return nil
}

// ConfigureBA is Configure with typed arguments.
func (b *BAModel) ConfigureBA(numNodes, d int, seed int64) error {
	return b.Configure(Params{ParamNumNodes: numNodes, ParamD: d, ParamSeed: seed})
}

// Generate implements Model.
func (b *BAModel) Generate() (*core.Network, error) {
	return b.generate(b.build)
}

func (b *BAModel) build() error {
	nodes := addNodes(b.net, b.n, b.cfg)
	perm := b.rng.Perm(b.n)
	at := func(i int) *core.Node { return nodes[perm[i]] }

	scores := make([]int, b.n)
	if err := connect(b.net, at(0), at(1), b.cfg, MethodBA); err != nil {
		return err
	}
	scores[0], scores[1] = 1, 1
	numLinks := 1

	chosen := make(map[int]struct{}, b.d)
	order := make([]int, 0, b.d)
	for v := 2; v < b.n; v++ {
		clear(chosen)
		order = order[:0]
		maxLimit := 2 * numLinks

		i := 0
		for ; i < b.d && i < v; i++ {
			limit := maxLimit
			for _, c := range order {
				limit -= scores[c]
			}
			target := preferentialPick(scores, b.rng.Intn(limit), chosen)
			if err := connect(b.net, at(v), at(target), b.cfg, MethodBA); err != nil {
				return err
			}
			numLinks++
			chosen[target] = struct{}{}
			order = append(order, target)
		}

		scores[v] += i
		for _, c := range order {
			scores[c]++
		}
	}

	return nil
}

// preferentialPick returns the index whose cumulative score first exceeds r,
// skipping excluded indices. r must lie below the sum of non-excluded scores.
func preferentialPick(scores []int, r int, exclude map[int]struct{}) int {
	acc := 0
	for i, s := range scores {
		if _, skip := exclude[i]; skip {
			continue
		}
		acc += s
		if r < acc {
			return i
		}
	}

	// Unreachable for r in range: the last positive score closes the scan.
	return len(scores) - 1
}
