// File: methods_edges.go
// Role: Link lifecycle: CreateLink/AddLink/Connect/RemoveLink, lookup and containment.
// Determinism:
//   - Link ids come from a per-network counter independent of node ids.
//   - Links() keeps insertion order across removals.
// Complexity:
//   - AddLink O(1) amortized; RemoveLink O(1) amortized plus O(k) for k
//     parallel links between the same pair.

package core

import "fmt"

// CreateLink returns a fresh, unattached link from→to carrying the next link id.
// It never fails; endpoints are validated by AddLink.
func (g *Network) CreateLink(from, to *Node) *Link {
	l := &Link{id: g.nextLinkID, from: from, to: to}
	g.nextLinkID++

	return l
}

// AddLink attaches l, adding absent endpoints first. On error the network is
// left untouched.
//
// Errors:
//   - ErrNilLink, ErrNilEndpoint for missing input.
//   - ErrLinkExists if a link with the same id is attached.
//   - ErrForeignLink if l is still attached elsewhere.
//   - ErrForeignNode if an endpoint cannot be attached here.
func (g *Network) AddLink(l *Link) error {
	if l == nil {
		return ErrNilLink
	}
	if l.from == nil || l.to == nil {
		return fmt.Errorf("AddLink(%d): %w", l.id, ErrNilEndpoint)
	}
	if _, exists := g.linkIndex[l.id]; exists {
		return fmt.Errorf("AddLink(%d): %w", l.id, ErrLinkExists)
	}
	if l.owner != nil && l.owner != g && l.owner.ContainsLink(l) {
		return fmt.Errorf("AddLink(%d): %w", l.id, ErrForeignLink)
	}
	if err := g.admissible(l.from); err != nil {
		return fmt.Errorf("AddLink(%d): from %d: %w", l.id, l.from.id, err)
	}
	if err := g.admissible(l.to); err != nil {
		return fmt.Errorf("AddLink(%d): to %d: %w", l.id, l.to.id, err)
	}

	if !g.ContainsNode(l.from) {
		g.attachNode(l.from)
	}
	if !g.ContainsNode(l.to) {
		g.attachNode(l.to)
	}
	g.attachLink(l)

	return nil
}

// Connect creates a link from→to and attaches it.
func (g *Network) Connect(from, to *Node) (*Link, error) {
	if from == nil || to == nil {
		return nil, ErrNilEndpoint
	}
	l := g.CreateLink(from, to)
	if err := g.AddLink(l); err != nil {
		return nil, err
	}

	return l, nil
}

// admissible reports whether n is attached here or could be attached.
func (g *Network) admissible(n *Node) error {
	if g.ContainsNode(n) {
		return nil
	}
	if _, taken := g.nodeIndex[n.id]; taken {
		return ErrForeignNode
	}
	if n.owner != nil && n.owner != g && n.owner.ContainsNode(n) {
		return ErrForeignNode
	}

	return nil
}

// attachLink indexes l in the catalog, both adjacency lists and the pair
// index. Endpoints must already be attached.
func (g *Network) attachLink(l *Link) {
	l.owner = g
	g.links = append(g.links, l)

	fe := g.nodeIndex[l.from.id]
	te := g.nodeIndex[l.to.id]
	le := &linkEntry{pos: len(g.links) - 1, from: fe, to: te}

	out := g.outList(fe)
	*out = append(*out, l)
	le.fromSlot = len(*out) - 1

	in := g.inList(te)
	*in = append(*in, l)
	le.toSlot = len(*in) - 1

	g.linkIndex[l.id] = le

	k := keyOf(l.from.id, l.to.id)
	g.pairIndex[k] = append(g.pairIndex[k], l)

	if l.id >= g.nextLinkID {
		g.nextLinkID = l.id + 1
	}
}

// Link returns the attached link with the given id.
func (g *Network) Link(id int) (*Link, bool) {
	e, ok := g.linkIndex[id]
	if !ok {
		return nil, false
	}

	return g.links[e.pos], true
}

// ContainsLink reports whether l itself is attached here.
func (g *Network) ContainsLink(l *Link) bool {
	if l == nil || l.owner != g {
		return false
	}
	e, ok := g.linkIndex[l.id]

	return ok && g.links[e.pos] == l
}

// RemoveLink detaches l. It reports false if l is not attached here.
func (g *Network) RemoveLink(l *Link) bool {
	if !g.ContainsLink(l) {
		return false
	}
	g.detachLink(l)

	return true
}

// RemoveLinkByID removes the attached link with the given id.
func (g *Network) RemoveLinkByID(id int) bool {
	l, ok := g.Link(id)
	if !ok {
		return false
	}

	return g.RemoveLink(l)
}

// detachLink removes an attached link from every index.
func (g *Network) detachLink(l *Link) {
	le := g.linkIndex[l.id]

	g.detachSlot(g.outList(le.from), le.fromSlot)
	// toSlot is read only now: the first detach may have moved l itself
	// (undirected self-loop sharing one list).
	g.detachSlot(g.inList(le.to), le.toSlot)

	k := keyOf(l.from.id, l.to.id)
	pair := g.pairIndex[k]
	for i, pl := range pair {
		if pl == l {
			pair = append(pair[:i], pair[i+1:]...)
			break
		}
	}
	if len(pair) == 0 {
		delete(g.pairIndex, k)
	} else {
		g.pairIndex[k] = pair
	}

	g.links[le.pos] = nil
	g.linkHoles++
	delete(g.linkIndex, l.id)
	l.owner = nil
	if g.linkHoles >= compactMinHoles && 2*g.linkHoles > len(g.links) {
		g.compactLinks()
	}
}

// compactLinks squeezes out nil holes and refreshes stored positions.
func (g *Network) compactLinks() {
	w := 0
	for _, l := range g.links {
		if l == nil {
			continue
		}
		g.links[w] = l
		g.linkIndex[l.id].pos = w
		w++
	}
	clear(g.links[w:])
	g.links = g.links[:w]
	g.linkHoles = 0
}
