// File: delegate.go
// Role: Graph Store operations forwarded to the current snapshot.

package dynamic

import "github.com/katalvlaran/netforge/core"

// Directed reports the directedness of the current snapshot.
func (d *Network) Directed() bool { return d.current.Directed() }

// CreateNode returns a fresh node carrying the current snapshot's next id.
func (d *Network) CreateNode() *core.Node { return d.current.CreateNode() }

// AddNode attaches n to the current snapshot.
func (d *Network) AddNode(n *core.Node) bool { return d.current.AddNode(n) }

// RemoveNode detaches n and its links from the current snapshot.
func (d *Network) RemoveNode(n *core.Node) bool { return d.current.RemoveNode(n) }

// RemoveNodeByID detaches the node with the given id from the current snapshot.
func (d *Network) RemoveNodeByID(id int) bool { return d.current.RemoveNodeByID(id) }

// Node looks up a node of the current snapshot.
func (d *Network) Node(id int) (*core.Node, bool) { return d.current.Node(id) }

// ContainsNode reports whether n is attached to the current snapshot.
func (d *Network) ContainsNode(n *core.Node) bool { return d.current.ContainsNode(n) }

// Nodes lists the current snapshot's nodes in insertion order.
func (d *Network) Nodes() []*core.Node { return d.current.Nodes() }

// NodeCount counts the current snapshot's nodes.
func (d *Network) NodeCount() int { return d.current.NodeCount() }

// CreateLink returns a fresh link carrying the current snapshot's next link id.
func (d *Network) CreateLink(from, to *core.Node) *core.Link {
	return d.current.CreateLink(from, to)
}

// AddLink attaches l to the current snapshot.
func (d *Network) AddLink(l *core.Link) error { return d.current.AddLink(l) }

// Connect creates and attaches a link in the current snapshot.
func (d *Network) Connect(from, to *core.Node) (*core.Link, error) {
	return d.current.Connect(from, to)
}

// RemoveLink detaches l from the current snapshot.
func (d *Network) RemoveLink(l *core.Link) bool { return d.current.RemoveLink(l) }

// RemoveLinkByID detaches the link with the given id from the current snapshot.
func (d *Network) RemoveLinkByID(id int) bool { return d.current.RemoveLinkByID(id) }

// Link looks up a link of the current snapshot.
func (d *Network) Link(id int) (*core.Link, bool) { return d.current.Link(id) }

// ContainsLink reports whether l is attached to the current snapshot.
func (d *Network) ContainsLink(l *core.Link) bool { return d.current.ContainsLink(l) }

// ContainsLinks reports whether a and b are linked in the current snapshot.
func (d *Network) ContainsLinks(a, b *core.Node) bool { return d.current.ContainsLinks(a, b) }

// Links lists the current snapshot's links in insertion order.
func (d *Network) Links() []*core.Link { return d.current.Links() }

// LinkCount counts the current snapshot's links.
func (d *Network) LinkCount() int { return d.current.LinkCount() }

// LinksOf returns the links incident to n in the current snapshot.
func (d *Network) LinksOf(n *core.Node) []*core.Link { return d.current.LinksOf(n) }

// OutLinks returns n's out links in the current snapshot.
func (d *Network) OutLinks(n *core.Node) []*core.Link { return d.current.OutLinks(n) }

// InLinks returns n's in links in the current snapshot.
func (d *Network) InLinks(n *core.Node) []*core.Link { return d.current.InLinks(n) }

// LinksBetween returns the links joining a and b in the current snapshot.
func (d *Network) LinksBetween(a, b *core.Node) []*core.Link {
	return d.current.LinksBetween(a, b)
}

// LinkBetween returns the earliest link joining a and b in the current snapshot.
func (d *Network) LinkBetween(a, b *core.Node) (*core.Link, bool) {
	return d.current.LinkBetween(a, b)
}

// Successors returns n's successors in the current snapshot.
func (d *Network) Successors(n *core.Node) []*core.Node { return d.current.Successors(n) }

// Predecessors returns n's predecessors in the current snapshot.
func (d *Network) Predecessors(n *core.Node) []*core.Node { return d.current.Predecessors(n) }

// Neighbours returns n's neighbours in the current snapshot.
func (d *Network) Neighbours(n *core.Node) []*core.Node { return d.current.Neighbours(n) }

// NeighboursByID returns the neighbours of node id in the current snapshot.
func (d *Network) NeighboursByID(id int) []*core.Node { return d.current.NeighboursByID(id) }

// Degree returns n's degree in the current snapshot.
func (d *Network) Degree(n *core.Node) int { return d.current.Degree(n) }
