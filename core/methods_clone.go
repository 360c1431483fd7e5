// File: methods_clone.go
// Role: Deep copy of a network.
// Determinism:
//   - Copy carries nextNodeID/nextLinkID so future ids continue the sequence.
//   - Node and link insertion order of the copy matches the source.

package core

import "maps"

// Copy returns a deep, reference-disjoint copy: every Node, Link and index
// structure is freshly allocated and owned by the new network, while ids,
// properties, link values and the edge set are identical.
//
// Nodes are copied first so every link copy can resolve its endpoints in the
// new network; links are then replayed once each from the link catalog.
//
// Complexity: O(V + E).
func (g *Network) Copy() *Network {
	c := NewNetwork(WithDirected(g.directed))
	c.nodes = make([]*Node, 0, len(g.nodeIndex))
	c.links = make([]*Link, 0, len(g.linkIndex))

	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		c.attachNode(n.Copy())
	}

	for _, l := range g.links {
		if l == nil {
			continue
		}
		from, _ := c.Node(l.from.id)
		to, _ := c.Node(l.to.id)
		c.attachLink(&Link{
			id:         l.id,
			from:       from,
			to:         to,
			value:      l.value,
			properties: maps.Clone(l.properties),
		})
	}

	c.nextNodeID = g.nextNodeID
	c.nextLinkID = g.nextLinkID

	return c
}
