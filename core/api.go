// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over the network catalogs.
// Policy:
//   - No mutation here; every slice returned is a fresh copy.
//   - Nodes() and Links() preserve insertion order.

package core

// Directed reports the directedness fixed at construction.
// Complexity: O(1).
func (g *Network) Directed() bool {
	return g.directed
}

// NodeCount returns the number of attached nodes.
// Complexity: O(1).
func (g *Network) NodeCount() int {
	return len(g.nodeIndex)
}

// LinkCount returns the number of attached links.
// Complexity: O(1).
func (g *Network) LinkCount() int {
	return len(g.linkIndex)
}

// Nodes returns the attached nodes in insertion order.
// Complexity: O(V).
func (g *Network) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeIndex))
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, n)
		}
	}

	return out
}

// Links returns the attached links in insertion order.
// Complexity: O(E).
func (g *Network) Links() []*Link {
	out := make([]*Link, 0, len(g.linkIndex))
	for _, l := range g.links {
		if l != nil {
			out = append(out, l)
		}
	}

	return out
}

// NextNodeID returns the id the next CreateNode call will hand out.
func (g *Network) NextNodeID() int { return g.nextNodeID }

// NextLinkID returns the id the next CreateLink call will hand out.
func (g *Network) NextLinkID() int { return g.nextLinkID }
