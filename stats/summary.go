package stats

import "github.com/katalvlaran/netforge/core"

// Summary gathers the headline statistics of a network. Field tags drive
// the CLI's YAML output.
type Summary struct {
	Directed      bool          `yaml:"directed"`
	Nodes         int           `yaml:"nodes"`
	Links         int           `yaml:"links"`
	DegreeSum     int           `yaml:"degreeSum"`
	AverageDegree float64       `yaml:"averageDegree"`
	MinDegree     int           `yaml:"minDegree"`
	MaxDegree     int           `yaml:"maxDegree"`
	Clustering    float64       `yaml:"clustering"`
	Components    int           `yaml:"components"`
	Connected     bool          `yaml:"connected"`
	Acyclic       bool          `yaml:"acyclic"`
	Tree          bool          `yaml:"tree"`
	Histogram     []DegreeCount `yaml:"histogram,omitempty"`
}

// Summarize computes a Summary of g. A nil network yields the zero Summary.
func Summarize(g *core.Network) Summary {
	if g == nil {
		return Summary{}
	}
	lo, hi := DegreeRange(g)
	components := Components(g)
	acyclic := IsAcyclic(g)

	return Summary{
		Directed:      g.Directed(),
		Nodes:         g.NodeCount(),
		Links:         g.LinkCount(),
		DegreeSum:     DegreeSum(g),
		AverageDegree: AverageDegree(g),
		MinDegree:     lo,
		MaxDegree:     hi,
		Clustering:    NetworkClusteringCoefficient(g),
		Components:    components,
		Connected:     components <= 1,
		Acyclic:       acyclic,
		Tree:          components == 1 && acyclic,
		Histogram:     DegreeHistogram(g),
	}
}
