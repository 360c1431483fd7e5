package stats

import "github.com/katalvlaran/netforge/core"

// IsConnected reports whether every node is reachable from every other one
// in the undirected view of g. Empty and nil networks count as connected.
func IsConnected(g *core.Network) bool {
	if g == nil || g.NodeCount() == 0 {
		return true
	}
	res, err := BFS(g, g.Nodes()[0])
	if err != nil {
		return false
	}

	return len(res.Order) == g.NodeCount()
}

// Components returns the number of connected components of the undirected
// view of g.
func Components(g *core.Network) int {
	if g == nil {
		return 0
	}
	ds := newDisjointSet(g)
	for _, l := range g.Links() {
		ds.union(l.From().ID(), l.To().ID())
	}

	return ds.sets
}

// IsAcyclic reports whether the undirected view of g has no cycle.
// Self-loops and parallel links (in either direction) are cycles.
func IsAcyclic(g *core.Network) bool {
	if g == nil {
		return true
	}
	ds := newDisjointSet(g)
	for _, l := range g.Links() {
		if !ds.union(l.From().ID(), l.To().ID()) {
			return false
		}
	}

	return true
}

// IsTree reports whether g is non-empty, connected and acyclic.
// For a non-empty network that is the same as connected with V-1 links.
func IsTree(g *core.Network) bool {
	if g == nil || g.NodeCount() == 0 {
		return false
	}

	return g.LinkCount() == g.NodeCount()-1 && IsAcyclic(g)
}

// disjointSet is a union-find over node ids with path compression and
// union by rank.
type disjointSet struct {
	parent map[int]int
	rank   map[int]int
	sets   int
}

func newDisjointSet(g *core.Network) *disjointSet {
	n := g.NodeCount()
	ds := &disjointSet{
		parent: make(map[int]int, n),
		rank:   make(map[int]int, n),
		sets:   n,
	}
	for _, nd := range g.Nodes() {
		ds.parent[nd.ID()] = nd.ID()
	}

	return ds
}

func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; false when they already were one set.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
	ds.sets--

	return true
}
