package stats

import (
	"sort"

	"github.com/katalvlaran/netforge/core"
)

// DegreeCount is one bucket of a degree histogram.
type DegreeCount struct {
	Degree int `yaml:"degree"`
	Count  int `yaml:"count"`
}

// DegreeSum returns Σ Degree(n). It equals twice the link count for any
// network, self-loops included.
func DegreeSum(g *core.Network) int {
	if g == nil {
		return 0
	}
	sum := 0
	for _, n := range g.Nodes() {
		sum += g.Degree(n)
	}

	return sum
}

// AverageDegree returns DegreeSum / NodeCount, 0 for an empty network.
func AverageDegree(g *core.Network) float64 {
	if g == nil || g.NodeCount() == 0 {
		return 0
	}

	return float64(DegreeSum(g)) / float64(g.NodeCount())
}

// DegreeRange returns the smallest and largest node degree; (0, 0) for an
// empty network.
func DegreeRange(g *core.Network) (lo, hi int) {
	if g == nil {
		return 0, 0
	}
	for i, n := range g.Nodes() {
		d := g.Degree(n)
		if i == 0 || d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}

	return lo, hi
}

// DegreeHistogram counts nodes per degree, ascending by degree. Degrees no
// node has are omitted.
func DegreeHistogram(g *core.Network) []DegreeCount {
	if g == nil {
		return nil
	}
	counts := make(map[int]int)
	for _, n := range g.Nodes() {
		counts[g.Degree(n)]++
	}

	out := make([]DegreeCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, DegreeCount{Degree: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Degree < out[j].Degree })

	return out
}
