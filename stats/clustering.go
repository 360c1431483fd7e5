package stats

import (
	"fmt"

	"github.com/katalvlaran/netforge/core"
)

// NodeClusteringCoefficient returns the fraction of pairs of distinct
// neighbours of n that are themselves linked, in either direction.
// Nodes with fewer than two neighbours have coefficient 0.
//
// Returns ErrNilNetwork or ErrNodeNotFound for invalid input.
func NodeClusteringCoefficient(g *core.Network, n *core.Node) (float64, error) {
	if g == nil {
		return 0, ErrNilNetwork
	}
	if n == nil || !g.ContainsNode(n) {
		return 0, fmt.Errorf("stats: NodeClusteringCoefficient: %v: %w", n, ErrNodeNotFound)
	}

	return clustering(g, n), nil
}

// NetworkClusteringCoefficient returns the mean of the node coefficients,
// 0 for an empty or nil network.
func NetworkClusteringCoefficient(g *core.Network) float64 {
	if g == nil || g.NodeCount() == 0 {
		return 0
	}
	sum := 0.0
	for _, n := range g.Nodes() {
		sum += clustering(g, n)
	}

	return sum / float64(g.NodeCount())
}

// clustering assumes n is attached to g.
func clustering(g *core.Network, n *core.Node) float64 {
	// Drop n itself: a self-loop makes it its own neighbour.
	all := g.Neighbours(n)
	nbs := make([]*core.Node, 0, len(all))
	for _, nb := range all {
		if nb != n {
			nbs = append(nbs, nb)
		}
	}
	k := len(nbs)
	if k < 2 {
		return 0
	}

	linked := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.ContainsLinks(nbs[i], nbs[j]) {
				linked++
			}
		}
	}

	return float64(2*linked) / float64(k*(k-1))
}
