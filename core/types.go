// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Link and Network types, network options and sentinel errors.
// Policy:
//   - Ids are plain ints handed out by the owning Network; they are the sole
//     basis for equality.
//   - Entities carry a back-reference to their owner which is consulted only
//     for containment checks, never for traversal.
//
// Errors:
//
//	ErrNilLink      - AddLink received a nil link.
//	ErrNilEndpoint  - AddLink received a link with a nil endpoint.
//	ErrLinkExists   - a link with the same id is already attached.
//	ErrForeignNode  - an endpoint is owned by a different network or its id
//	                  collides with a different node of this network.
//	ErrForeignLink  - the link is still attached to a different network.
package core

import (
	"errors"
	"maps"
	"strconv"
)

// Sentinel errors for core network operations.
var (
	// ErrNilLink indicates that AddLink was called with a nil link.
	ErrNilLink = errors.New("core: link is nil")

	// ErrNilEndpoint indicates that a link does not connect two nodes.
	ErrNilEndpoint = errors.New("core: link endpoint is nil")

	// ErrLinkExists indicates that a link with the same id is already present.
	ErrLinkExists = errors.New("core: link already present")

	// ErrForeignNode indicates that an endpoint cannot be attached to this network.
	ErrForeignNode = errors.New("core: node belongs to another network")

	// ErrForeignLink indicates that the link is still attached to another network.
	ErrForeignLink = errors.New("core: link belongs to another network")
)

// Node is a vertex of a Network.
//
// Nodes are created by Network.CreateNode and attached with Network.AddNode.
// Properties is a plain string map; a missing key is reported as ("", false).
type Node struct {
	id         int
	properties map[string]string
	owner      *Network
}

// ID returns the immutable node identifier.
func (n *Node) ID() int { return n.id }

// Property returns the value stored under key and whether it was present.
func (n *Node) Property(key string) (string, bool) {
	v, ok := n.properties[key]
	return v, ok
}

// SetProperty stores value under key.
func (n *Node) SetProperty(key, value string) {
	if n.properties == nil {
		n.properties = make(map[string]string)
	}
	n.properties[key] = value
}

// Properties returns a copy of the property map.
func (n *Node) Properties() map[string]string {
	return maps.Clone(n.properties)
}

// Copy returns an unattached node with the same id and properties.
func (n *Node) Copy() *Node {
	return &Node{id: n.id, properties: maps.Clone(n.properties)}
}

// String renders the node as "Node(<id>)".
func (n *Node) String() string {
	return "Node(" + strconv.Itoa(n.id) + ")"
}

// Link is an edge between two nodes with a scalar value and string properties.
//
// From/To record the insertion orientation. Undirected networks ignore it for
// every query except Link.From/Link.To themselves.
type Link struct {
	id         int
	from, to   *Node
	value      float64
	properties map[string]string
	owner      *Network
}

// ID returns the immutable link identifier.
func (l *Link) ID() int { return l.id }

// From returns the source endpoint.
func (l *Link) From() *Node { return l.from }

// To returns the target endpoint.
func (l *Link) To() *Node { return l.to }

// Value returns the scalar value attached to the link.
func (l *Link) Value() float64 { return l.value }

// SetValue replaces the scalar value.
func (l *Link) SetValue(v float64) { l.value = v }

// Property returns the value stored under key and whether it was present.
func (l *Link) Property(key string) (string, bool) {
	v, ok := l.properties[key]
	return v, ok
}

// SetProperty stores value under key.
func (l *Link) SetProperty(key, value string) {
	if l.properties == nil {
		l.properties = make(map[string]string)
	}
	l.properties[key] = value
}

// Properties returns a copy of the property map.
func (l *Link) Properties() map[string]string {
	return maps.Clone(l.properties)
}

// Other returns the endpoint opposite to n, or nil if n is not an endpoint.
// For a self-loop it returns n.
func (l *Link) Other(n *Node) *Node {
	switch n {
	case l.from:
		return l.to
	case l.to:
		return l.from
	default:
		return nil
	}
}

// Copy returns an unattached link with the same id, value, properties and
// endpoint references.
func (l *Link) Copy() *Link {
	return &Link{
		id:         l.id,
		from:       l.from,
		to:         l.to,
		value:      l.value,
		properties: maps.Clone(l.properties),
	}
}

// String renders the link as "Link(<id>: <from>-<to>)".
func (l *Link) String() string {
	s := "Link(" + strconv.Itoa(l.id)
	if l.from != nil && l.to != nil {
		s += ": " + strconv.Itoa(l.from.id) + "-" + strconv.Itoa(l.to.id)
	}
	return s + ")"
}

// Option configures a Network before first use.
type Option func(g *Network)

// WithDirected fixes the directedness of the network.
// Directed networks keep distinct in/out adjacency per node; undirected
// networks keep a single incident list read through both accessors.
func WithDirected(directed bool) Option {
	return func(g *Network) { g.directed = directed }
}

// Network is the in-memory graph store.
//
// nodes and links are insertion-ordered slices; removed entries leave a nil
// hole that is compacted once holes dominate, so removal is amortized O(1)
// and iteration order stays the insertion order.
//
// A Network is not safe for concurrent use.
type Network struct {
	directed bool

	nodes     []*Node
	nodeHoles int
	links     []*Link
	linkHoles int

	nodeIndex map[int]*nodeEntry
	linkIndex map[int]*linkEntry

	// pairIndex[{min(a,b), max(a,b)}] lists every link between a and b.
	pairIndex map[pairKey][]*Link

	nextNodeID int
	nextLinkID int
}

// nodeEntry is the per-node index: position in nodes plus adjacency.
// out stays nil in undirected mode; in is then the single incident list.
type nodeEntry struct {
	pos int
	in  []*Link
	out []*Link
}

// linkEntry records where a link lives so removal never scans.
// fromSlot indexes the source's out list, toSlot the target's in list.
type linkEntry struct {
	pos      int
	from, to *nodeEntry
	fromSlot int
	toSlot   int
}

// pairKey is an order-insensitive node pair.
type pairKey struct{ lo, hi int }

func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// NewNetwork creates an empty Network. By default it is undirected.
// Complexity: O(1).
func NewNetwork(opts ...Option) *Network {
	g := &Network{
		nodeIndex: make(map[int]*nodeEntry),
		linkIndex: make(map[int]*linkEntry),
		pairIndex: make(map[pairKey][]*Link),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
