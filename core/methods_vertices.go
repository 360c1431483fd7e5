// File: methods_vertices.go
// Role: Node lifecycle: CreateNode/AddNode/RemoveNode, lookup and containment.
// Determinism:
//   - Node ids are handed out by a per-network counter and never reused,
//     even after removal. Adding a node with a larger id advances the counter.
// Complexity:
//   - AddNode O(1) amortized; RemoveNode O(deg(v)) amortized.

package core

// compactMinHoles keeps tiny networks from compacting on every removal.
const compactMinHoles = 32

// CreateNode returns a fresh, unattached node carrying the next node id.
// The node joins the network only after AddNode.
func (g *Network) CreateNode() *Node {
	n := &Node{id: g.nextNodeID}
	g.nextNodeID++

	return n
}

// AddNode attaches n. It reports false if n is nil, if a node with the same
// id is already present, or if n is still attached to another network.
func (g *Network) AddNode(n *Node) bool {
	if n == nil {
		return false
	}
	if _, exists := g.nodeIndex[n.id]; exists {
		return false
	}
	if n.owner != nil && n.owner != g && n.owner.ContainsNode(n) {
		return false
	}
	g.attachNode(n)

	return true
}

// attachNode appends n to the catalog without validation.
func (g *Network) attachNode(n *Node) {
	n.owner = g
	g.nodes = append(g.nodes, n)
	g.nodeIndex[n.id] = &nodeEntry{pos: len(g.nodes) - 1}
	if n.id >= g.nextNodeID {
		g.nextNodeID = n.id + 1
	}
}

// Node returns the attached node with the given id.
func (g *Network) Node(id int) (*Node, bool) {
	e, ok := g.nodeIndex[id]
	if !ok {
		return nil, false
	}

	return g.nodes[e.pos], true
}

// ContainsNode reports whether n itself (not merely its id) is attached here.
func (g *Network) ContainsNode(n *Node) bool {
	if n == nil || n.owner != g {
		return false
	}
	e, ok := g.nodeIndex[n.id]

	return ok && g.nodes[e.pos] == n
}

// RemoveNode detaches n together with every incident link.
// It reports false if n is not attached to this network.
//
// Steps:
//  1. Collect incident links from in and out lists (self-loops deduplicated).
//  2. Remove each link from the link catalog, both adjacency lists and the
//     pair index.
//  3. Drop the node from the catalog and clear its back-reference.
func (g *Network) RemoveNode(n *Node) bool {
	if !g.ContainsNode(n) {
		return false
	}
	e := g.nodeIndex[n.id]

	for _, l := range g.incident(e) {
		g.detachLink(l)
	}

	g.nodes[e.pos] = nil
	g.nodeHoles++
	delete(g.nodeIndex, n.id)
	n.owner = nil
	if g.nodeHoles >= compactMinHoles && 2*g.nodeHoles > len(g.nodes) {
		g.compactNodes()
	}

	return true
}

// RemoveNodeByID removes the attached node with the given id.
func (g *Network) RemoveNodeByID(id int) bool {
	n, ok := g.Node(id)
	if !ok {
		return false
	}

	return g.RemoveNode(n)
}

// compactNodes squeezes out nil holes and refreshes stored positions.
func (g *Network) compactNodes() {
	w := 0
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		g.nodes[w] = n
		g.nodeIndex[n.id].pos = w
		w++
	}
	clear(g.nodes[w:])
	g.nodes = g.nodes[:w]
	g.nodeHoles = 0
}
