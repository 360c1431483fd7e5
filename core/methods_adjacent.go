// File: methods_adjacent.go
// Role: Neighbourhood queries and the adjacency helpers used by mutators.
// Semantics:
//   - Directed: OutLinks/InLinks are distinct; Successors follow out links,
//     Predecessors follow in links.
//   - Undirected: one incident list per node; OutLinks == InLinks == LinksOf,
//     Successors == Predecessors == Neighbours.
//   - Neighbours ignores direction in both modes.
//   - Absent nodes yield empty results, never errors.
// Determinism:
//   - Results follow adjacency order with duplicates removed on first sight.

package core

// outList returns the list a link joins on its source side.
// In undirected mode both sides share the in list.
func (g *Network) outList(e *nodeEntry) *[]*Link {
	if g.directed {
		return &e.out
	}

	return &e.in
}

// inList returns the list a link joins on its target side.
func (g *Network) inList(e *nodeEntry) *[]*Link {
	return &e.in
}

// detachSlot swap-removes the element at slot and re-points the moved link's
// stored slot for this list.
func (g *Network) detachSlot(list *[]*Link, slot int) {
	s := *list
	last := len(s) - 1
	moved := s[last]
	s[slot] = moved
	s[last] = nil
	*list = s[:last]
	if slot == last {
		return
	}

	me := g.linkIndex[moved.id]
	if g.outList(me.from) == list && me.fromSlot == last {
		me.fromSlot = slot
	} else {
		me.toSlot = slot
	}
}

// incident returns every link touching e once.
func (g *Network) incident(e *nodeEntry) []*Link {
	return uniqueLinks(e.in, e.out)
}

// uniqueLinks concatenates lists dropping repeated links (self-loops).
func uniqueLinks(lists ...[]*Link) []*Link {
	size := 0
	for _, l := range lists {
		size += len(l)
	}
	out := make([]*Link, 0, size)
	seen := make(map[*Link]struct{}, size)
	for _, list := range lists {
		for _, l := range list {
			if _, dup := seen[l]; dup {
				continue
			}
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}

	return out
}

// entryOf returns the index entry for an attached node.
func (g *Network) entryOf(n *Node) (*nodeEntry, bool) {
	if !g.ContainsNode(n) {
		return nil, false
	}

	return g.nodeIndex[n.id], true
}

// LinksOf returns every link incident to n.
// Complexity: O(deg(n)).
func (g *Network) LinksOf(n *Node) []*Link {
	e, ok := g.entryOf(n)
	if !ok {
		return nil
	}

	return g.incident(e)
}

// OutLinks returns the links leaving n (every incident link when undirected).
func (g *Network) OutLinks(n *Node) []*Link {
	e, ok := g.entryOf(n)
	if !ok {
		return nil
	}

	return uniqueLinks(*g.outList(e))
}

// InLinks returns the links entering n (every incident link when undirected).
func (g *Network) InLinks(n *Node) []*Link {
	e, ok := g.entryOf(n)
	if !ok {
		return nil
	}

	return uniqueLinks(*g.inList(e))
}

// Successors returns the nodes reachable over one out link.
func (g *Network) Successors(n *Node) []*Node {
	if !g.directed {
		return g.Neighbours(n)
	}
	e, ok := g.entryOf(n)
	if !ok {
		return nil
	}
	nodes := make([]*Node, 0, len(e.out))
	for _, l := range e.out {
		nodes = append(nodes, l.to)
	}

	return uniqueNodes(nodes)
}

// Predecessors returns the nodes that reach n over one in link.
func (g *Network) Predecessors(n *Node) []*Node {
	if !g.directed {
		return g.Neighbours(n)
	}
	e, ok := g.entryOf(n)
	if !ok {
		return nil
	}
	nodes := make([]*Node, 0, len(e.in))
	for _, l := range e.in {
		nodes = append(nodes, l.from)
	}

	return uniqueNodes(nodes)
}

// Neighbours returns the nodes sharing a link with n regardless of direction.
// A self-loop makes n its own neighbour.
func (g *Network) Neighbours(n *Node) []*Node {
	e, ok := g.entryOf(n)
	if !ok {
		return nil
	}
	links := g.incident(e)
	nodes := make([]*Node, 0, len(links))
	for _, l := range links {
		nodes = append(nodes, l.Other(n))
	}

	return uniqueNodes(nodes)
}

// NeighboursByID is Neighbours for the attached node with the given id.
func (g *Network) NeighboursByID(id int) []*Node {
	n, ok := g.Node(id)
	if !ok {
		return nil
	}

	return g.Neighbours(n)
}

func uniqueNodes(nodes []*Node) []*Node {
	seen := make(map[*Node]struct{}, len(nodes))
	out := nodes[:0]
	for _, n := range nodes {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}

// Degree returns the number of link endpoints at n; a self-loop counts twice.
// Summed over all nodes it equals 2*LinkCount().
func (g *Network) Degree(n *Node) int {
	e, ok := g.entryOf(n)
	if !ok {
		return 0
	}

	return len(e.in) + len(e.out)
}

// ContainsLinks reports whether at least one link joins a and b in either
// orientation. The lookup is by id through the pair index.
// Complexity: O(1).
func (g *Network) ContainsLinks(a, b *Node) bool {
	if a == nil || b == nil {
		return false
	}
	_, ok := g.pairIndex[keyOf(a.id, b.id)]

	return ok
}

// LinksBetween returns every link joining a and b in either orientation.
func (g *Network) LinksBetween(a, b *Node) []*Link {
	if a == nil || b == nil {
		return nil
	}
	pair := g.pairIndex[keyOf(a.id, b.id)]
	if len(pair) == 0 {
		return nil
	}

	return append([]*Link(nil), pair...)
}

// LinkBetween returns the earliest attached link joining a and b.
func (g *Network) LinkBetween(a, b *Node) (*Link, bool) {
	if a == nil || b == nil {
		return nil, false
	}
	pair := g.pairIndex[keyOf(a.id, b.id)]
	if len(pair) == 0 {
		return nil, false
	}

	return pair[0], true
}
