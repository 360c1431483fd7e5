// Package core provides the in-memory network store used by every other
// netforge package: integer-identified Nodes, Links between them, and the
// Network that owns both.
//
// The Network N = (V,E) is either directed or undirected, fixed at
// construction:
//
//   - Directed: each node keeps an out list and an in list; a link from→to is
//     in from's out list and in to's in list.
//   - Undirected: each node keeps a single incident list; a link is recorded
//     at both endpoints (twice at the same node for a self-loop).
//   - Parallel links and self-loops are always permitted. Generators that
//     need simple graphs check ContainsLinks before connecting.
//
// Identity:
//
//   - Ids are plain ints handed out by per-network counters
//     (NextNodeID/NextLinkID). Removal never returns an id to the pool, and
//     adding an entity with a larger id advances the counter past it.
//   - Equality is by id. A node or link belongs to at most one network at a
//     time; ContainsNode/ContainsLink check that the very instance is the
//     one attached, not merely an entity with the same id.
//
// Ordering:
//
//	Nodes() and Links() return insertion order. Removals leave holes that
//	are squeezed out lazily, so both stay O(1) amortized without reordering.
//
// Core Methods:
//
//	// Node lifecycle
//	CreateNode() *Node                       // O(1), not attached
//	AddNode(n *Node) bool                    // O(1)
//	RemoveNode(n *Node) bool                 // O(deg(n)), cascades to links
//	Node(id int) (*Node, bool)               // O(1)
//
//	// Link lifecycle
//	CreateLink(from, to *Node) *Link         // O(1), not attached
//	AddLink(l *Link) error                   // O(1), attaches absent endpoints
//	Connect(from, to *Node) (*Link, error)   // CreateLink + AddLink
//	RemoveLink(l *Link) bool                 // O(1)+O(parallel links)
//
//	// Queries
//	LinksOf, OutLinks, InLinks               // O(deg(n))
//	Neighbours, Successors, Predecessors     // O(deg(n))
//	ContainsLinks(a, b) / LinksBetween(a, b) // O(1) via the pair index
//	Degree(n)                                // self-loop counts twice
//
//	// Copy
//	Copy() *Network                          // deep, O(V+E)
//
// Concurrency:
//
//	A Network is not safe for concurrent mutation. Readers may share a
//	network that nobody mutates.
package core
