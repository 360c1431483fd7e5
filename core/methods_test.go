// SPDX-License-Identifier: MIT
// Package core_test verifies core.Network method-level contracts.
//
// Purpose:
//   - Lock in id assignment, cascade removal and insertion-order guarantees.
//   - Validate directed vs undirected adjacency semantics, self-loops and parallel links.
//   - Check Copy independence and adjacency bookkeeping under random removals.

package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/netforge/core"
)

// TestNetwork_CreateAddNode VERIFIES id assignment and idempotent AddNode.
//
// Implementation:
//   - Stage 1: Create and add three nodes; ids are 0,1,2.
//   - Stage 2: Re-adding an attached node is a no-op reporting false.
//   - Stage 3: Lookup by id returns the very instance.
func TestNetwork_CreateAddNode(t *testing.T) {
	g := core.NewNetwork()

	// Stage 1: sequential ids.
	var nodes []*core.Node
	for i := 0; i < 3; i++ {
		n := g.CreateNode()
		MustEqualInt(t, n.ID(), i, "CreateNode id")
		MustTrue(t, g.AddNode(n), "AddNode fresh")
		nodes = append(nodes, n)
	}
	MustEqualInt(t, g.NodeCount(), 3, "NodeCount")
	MustEqualInt(t, g.NextNodeID(), 3, "NextNodeID")

	// Stage 2: idempotent add.
	MustFalse(t, g.AddNode(nodes[1]), "AddNode duplicate")
	MustFalse(t, g.AddNode(nil), "AddNode nil")
	MustEqualInt(t, g.NodeCount(), 3, "NodeCount after duplicate")

	// Stage 3: lookup.
	got, ok := g.Node(2)
	MustTrue(t, ok && got == nodes[2], "Node(2)")
	_, ok = g.Node(42)
	MustFalse(t, ok, "Node(42)")

	// A created but never added node is not contained.
	MustFalse(t, g.ContainsNode(g.CreateNode()), "ContainsNode unattached")
}

// TestNetwork_AddNodeAdvancesCounter VERIFIES that adding a node with a larger
// id moves the id counter past it.
func TestNetwork_AddNodeAdvancesCounter(t *testing.T) {
	src := core.NewNetwork()
	var n *core.Node
	for i := 0; i <= 10; i++ {
		n = src.CreateNode()
	}

	g := core.NewNetwork()
	MustTrue(t, g.AddNode(n), "AddNode id=10")
	MustEqualInt(t, g.NextNodeID(), 11, "NextNodeID")
	MustEqualInt(t, g.CreateNode().ID(), 11, "CreateNode after advance")
}

// TestNetwork_ForeignNode VERIFIES that an entity attached elsewhere is rejected
// and leaves the target network untouched.
func TestNetwork_ForeignNode(t *testing.T) {
	other, otherNodes := NewPath(t, false, 2)
	g := core.NewNetwork()
	own := g.CreateNode()
	MustTrue(t, g.AddNode(own), "AddNode own")

	MustFalse(t, g.AddNode(otherNodes[1]), "AddNode foreign")

	_, err := g.Connect(own, otherNodes[1])
	MustErrorIs(t, err, core.ErrForeignNode, "Connect foreign")
	MustEqualInt(t, g.LinkCount(), 0, "LinkCount after reject")
	MustEqualInt(t, g.NodeCount(), 1, "NodeCount after reject")

	// Once detached from its network the node may join another.
	MustTrue(t, other.RemoveNode(otherNodes[1]), "RemoveNode from other")
	_, err = g.Connect(own, otherNodes[1])
	MustNoError(t, err, "Connect after detach")
	MustTrue(t, g.ContainsNode(otherNodes[1]), "ContainsNode adopted")
}

// TestNetwork_AddLinkErrors VERIFIES AddLink validation sentinels.
func TestNetwork_AddLinkErrors(t *testing.T) {
	g := core.NewNetwork()
	a, b := g.CreateNode(), g.CreateNode()

	MustErrorIs(t, g.AddLink(nil), core.ErrNilLink, "AddLink nil")
	MustErrorIs(t, g.AddLink(g.CreateLink(a, nil)), core.ErrNilEndpoint, "AddLink nil endpoint")

	_, err := g.Connect(nil, b)
	MustErrorIs(t, err, core.ErrNilEndpoint, "Connect nil")

	// Absent endpoints are attached on the way in.
	l := g.CreateLink(a, b)
	MustNoError(t, g.AddLink(l), "AddLink")
	MustTrue(t, g.ContainsNode(a) && g.ContainsNode(b), "endpoints attached")
	MustErrorIs(t, g.AddLink(l), core.ErrLinkExists, "AddLink duplicate")
	MustEqualInt(t, g.LinkCount(), 1, "LinkCount")
}

// TestNetwork_RemoveNodeCascade VERIFIES that removing a node removes its links
// and that ids are never reused.
func TestNetwork_RemoveNodeCascade(t *testing.T) {
	g, nodes := NewPath(t, false, NPath)

	MustTrue(t, g.RemoveNode(nodes[2]), "RemoveNode")
	MustFalse(t, g.RemoveNode(nodes[2]), "RemoveNode twice")
	MustEqualInt(t, g.NodeCount(), NPath-1, "NodeCount")
	MustEqualInt(t, g.LinkCount(), NPath-3, "LinkCount")
	MustEqualInt(t, g.Degree(nodes[1]), 1, "Degree(1)")
	MustEqualInt(t, g.Degree(nodes[3]), 1, "Degree(3)")
	MustFalse(t, g.ContainsLinks(nodes[1], nodes[2]), "link 1-2 gone")
	MustEqualIDs(t, NodeIDs(g.Nodes()), []int{0, 1, 3, 4}, "Nodes order")
	MustEqualIDs(t, LinkIDs(g.Links()), []int{0, 3}, "Links order")
	MustDegreeSum(t, g, "after cascade")

	MustEqualInt(t, g.CreateNode().ID(), NPath, "id not reused")
	MustFalse(t, g.RemoveNodeByID(2), "RemoveNodeByID absent")
	MustTrue(t, g.RemoveNodeByID(4), "RemoveNodeByID present")
	MustEqualInt(t, g.LinkCount(), 1, "LinkCount after second removal")
}

// TestNetwork_UndirectedQueries VERIFIES neighbourhood queries without direction.
func TestNetwork_UndirectedQueries(t *testing.T) {
	g, nodes := NewPath(t, false, NPath)

	MustSameIDSet(t, NodeIDs(g.Neighbours(nodes[1])), []int{0, 2}, "Neighbours(1)")
	MustSameIDSet(t, NodeIDs(g.Successors(nodes[1])), []int{0, 2}, "Successors(1)")
	MustSameIDSet(t, NodeIDs(g.Predecessors(nodes[1])), []int{0, 2}, "Predecessors(1)")
	MustSameIDSet(t, LinkIDs(g.OutLinks(nodes[1])), LinkIDs(g.InLinks(nodes[1])), "Out==In")
	MustSameIDSet(t, LinkIDs(g.LinksOf(nodes[1])), []int{0, 1}, "LinksOf(1)")
	MustTrue(t, g.ContainsLinks(nodes[2], nodes[1]), "ContainsLinks reversed")
	MustFalse(t, g.ContainsLinks(nodes[0], nodes[2]), "ContainsLinks absent")
	MustEqualInt(t, g.Degree(nodes[0]), 1, "Degree(0)")
	MustEqualInt(t, g.Degree(nodes[1]), 2, "Degree(1)")
	MustSameIDSet(t, NodeIDs(g.NeighboursByID(4)), []int{3}, "NeighboursByID(4)")
	MustEqualInt(t, len(g.NeighboursByID(99)), 0, "NeighboursByID absent")
}

// TestNetwork_DirectedQueries VERIFIES the in/out split of directed networks.
func TestNetwork_DirectedQueries(t *testing.T) {
	g, nodes := NewPath(t, true, NPath)
	MustTrue(t, g.Directed(), "Directed")

	MustSameIDSet(t, NodeIDs(g.Successors(nodes[1])), []int{2}, "Successors(1)")
	MustSameIDSet(t, NodeIDs(g.Predecessors(nodes[1])), []int{0}, "Predecessors(1)")
	MustSameIDSet(t, NodeIDs(g.Neighbours(nodes[1])), []int{0, 2}, "Neighbours(1)")
	MustSameIDSet(t, LinkIDs(g.OutLinks(nodes[1])), []int{1}, "OutLinks(1)")
	MustSameIDSet(t, LinkIDs(g.InLinks(nodes[1])), []int{0}, "InLinks(1)")
	MustEqualInt(t, len(g.Predecessors(nodes[0])), 0, "Predecessors(0)")
	MustEqualInt(t, g.Degree(nodes[1]), 2, "Degree(1)")

	// Containment ignores orientation.
	MustTrue(t, g.ContainsLinks(nodes[2], nodes[1]), "ContainsLinks reversed")
	l, ok := g.LinkBetween(nodes[2], nodes[1])
	MustTrue(t, ok && l.From() == nodes[1], "LinkBetween keeps orientation")
	MustDegreeSum(t, g, "directed path")
}

// TestNetwork_SelfLoop VERIFIES self-loop accounting in both modes.
//
// Implementation:
//   - Stage 1: Build a-b, a-a, a-c.
//   - Stage 2: A self-loop adds 2 to the degree and makes a its own neighbour.
//   - Stage 3: Removing links in the middle keeps adjacency consistent.
func TestNetwork_SelfLoop(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := core.NewNetwork(core.WithDirected(directed))
		a, b, c := g.CreateNode(), g.CreateNode(), g.CreateNode()

		// Stage 1
		ab, err := g.Connect(a, b)
		MustNoError(t, err, "Connect a-b")
		aa, err := g.Connect(a, a)
		MustNoError(t, err, "Connect a-a")
		ac, err := g.Connect(a, c)
		MustNoError(t, err, "Connect a-c")

		// Stage 2
		MustEqualInt(t, g.Degree(a), 4, "Degree(a)")
		MustEqualInt(t, len(g.LinksOf(a)), 3, "LinksOf(a)")
		MustSameIDSet(t, NodeIDs(g.Neighbours(a)), []int{a.ID(), b.ID(), c.ID()}, "Neighbours(a)")
		MustTrue(t, g.ContainsLinks(a, a), "ContainsLinks(a,a)")
		MustDegreeSum(t, g, "with loop")

		// Stage 3
		MustTrue(t, g.RemoveLink(aa), "RemoveLink a-a")
		MustFalse(t, g.RemoveLink(aa), "RemoveLink a-a twice")
		MustEqualInt(t, g.Degree(a), 2, "Degree(a) after loop removal")
		MustSameIDSet(t, LinkIDs(g.LinksOf(a)), []int{ab.ID(), ac.ID()}, "LinksOf(a) after loop removal")
		MustTrue(t, g.RemoveLink(ab), "RemoveLink a-b")
		MustSameIDSet(t, LinkIDs(g.LinksOf(a)), []int{ac.ID()}, "LinksOf(a) after a-b removal")
		MustTrue(t, g.RemoveLinkByID(ac.ID()), "RemoveLinkByID a-c")
		MustEqualInt(t, g.Degree(a), 0, "Degree(a) empty")
		MustDegreeSum(t, g, "emptied")
	}
}

// TestNetwork_ParallelLinks VERIFIES that multiple links may join one pair.
func TestNetwork_ParallelLinks(t *testing.T) {
	g := core.NewNetwork()
	a, b := g.CreateNode(), g.CreateNode()

	first, err := g.Connect(a, b)
	MustNoError(t, err, "Connect first")
	second, err := g.Connect(b, a)
	MustNoError(t, err, "Connect second")

	MustEqualInt(t, len(g.LinksBetween(a, b)), 2, "LinksBetween")
	l, ok := g.LinkBetween(b, a)
	MustTrue(t, ok && l == first, "LinkBetween earliest")
	MustEqualInt(t, g.Degree(a), 2, "Degree(a)")

	MustTrue(t, g.RemoveLink(first), "RemoveLink first")
	MustTrue(t, g.ContainsLinks(a, b), "ContainsLinks after first removal")
	l, ok = g.LinkBetween(a, b)
	MustTrue(t, ok && l == second, "LinkBetween after first removal")

	MustTrue(t, g.RemoveLink(second), "RemoveLink second")
	MustFalse(t, g.ContainsLinks(a, b), "ContainsLinks after both removals")
	MustEqualInt(t, len(g.LinksBetween(a, b)), 0, "LinksBetween empty")
}

// TestNetwork_InsertionOrderAcrossCompaction VERIFIES that Nodes()/Links()
// keep insertion order once holes are compacted.
func TestNetwork_InsertionOrderAcrossCompaction(t *testing.T) {
	g, nodes := NewPath(t, false, NCompaction)

	var wantNodes []int
	for i, n := range nodes {
		if i%3 != 0 {
			MustTrue(t, g.RemoveNode(n), "RemoveNode")
			continue
		}
		wantNodes = append(wantNodes, n.ID())
	}

	MustEqualIDs(t, NodeIDs(g.Nodes()), wantNodes, "Nodes order")
	MustEqualInt(t, g.LinkCount(), 0, "every path link touched a removed node")
	for _, id := range wantNodes {
		n, ok := g.Node(id)
		MustTrue(t, ok && n.ID() == id, "Node lookup after compaction")
	}

	// Rebuild links between survivors, drop every other one.
	var links []*core.Link
	for i := 1; i < len(wantNodes); i++ {
		a, _ := g.Node(wantNodes[i-1])
		b, _ := g.Node(wantNodes[i])
		l, err := g.Connect(a, b)
		MustNoError(t, err, "Connect survivors")
		links = append(links, l)
	}
	var wantLinks []int
	for i, l := range links {
		if i%3 != 0 {
			MustTrue(t, g.RemoveLink(l), "RemoveLink")
			continue
		}
		wantLinks = append(wantLinks, l.ID())
	}
	MustEqualIDs(t, LinkIDs(g.Links()), wantLinks, "Links order")
	for _, id := range wantLinks {
		l, ok := g.Link(id)
		MustTrue(t, ok && l.ID() == id, "Link lookup after compaction")
	}
	MustDegreeSum(t, g, "after compaction")
}

// TestNetwork_Copy VERIFIES deep-copy equality and independence.
func TestNetwork_Copy(t *testing.T) {
	g, nodes := NewPath(t, true, NPath)
	nodes[0].SetProperty("label", "origin")
	first, _ := g.LinkBetween(nodes[0], nodes[1])
	first.SetValue(2.5)
	first.SetProperty("kind", "seed")

	c := g.Copy()

	// Same shape and ids.
	MustTrue(t, c.Directed(), "Copy directed")
	MustEqualIDs(t, NodeIDs(c.Nodes()), NodeIDs(g.Nodes()), "Copy nodes")
	MustEqualIDs(t, LinkIDs(c.Links()), LinkIDs(g.Links()), "Copy links")
	MustEqualInt(t, c.NextNodeID(), g.NextNodeID(), "Copy NextNodeID")
	MustEqualInt(t, c.NextLinkID(), g.NextLinkID(), "Copy NextLinkID")

	// Fresh instances bound to the copy.
	c0, _ := c.Node(0)
	MustFalse(t, c0 == nodes[0], "Copy node instance")
	MustFalse(t, g.ContainsNode(c0), "original does not contain copy node")
	for _, l := range c.Links() {
		MustTrue(t, c.ContainsNode(l.From()) && c.ContainsNode(l.To()), "Copy link endpoints")
	}
	label, _ := c0.Property("label")
	MustTrue(t, label == "origin", "Copy node property")
	cl, _ := c.Link(first.ID())
	kind, _ := cl.Property("kind")
	MustTrue(t, cl.Value() == 2.5 && kind == "seed", "Copy link value/property")

	// Independence.
	c0.SetProperty("label", "changed")
	MustTrue(t, c.RemoveNode(c0), "RemoveNode in copy")
	label, _ = nodes[0].Property("label")
	MustTrue(t, label == "origin", "original property untouched")
	MustEqualInt(t, g.NodeCount(), NPath, "original NodeCount")
	MustEqualInt(t, g.LinkCount(), NPath-1, "original LinkCount")
	MustSameIDSet(t, NodeIDs(c.Successors(mustNode(t, c, 1))), []int{2}, "copy Successors(1)")
}

// TestNetwork_RandomRemovals VERIFIES adjacency bookkeeping against a naive
// recomputation from Links() while links are removed in random order.
func TestNetwork_RandomRemovals(t *testing.T) {
	const nNodes, nLinks = 12, 150
	for _, directed := range []bool{false, true} {
		rng := rand.New(rand.NewSource(7))
		g := core.NewNetwork(core.WithDirected(directed))
		nodes := make([]*core.Node, nNodes)
		for i := range nodes {
			nodes[i] = g.CreateNode()
			g.AddNode(nodes[i])
		}
		for i := 0; i < nLinks; i++ {
			_, err := g.Connect(nodes[rng.Intn(nNodes)], nodes[rng.Intn(nNodes)])
			MustNoError(t, err, "Connect random")
		}

		for g.LinkCount() > 0 {
			links := g.Links()
			MustTrue(t, g.RemoveLink(links[rng.Intn(len(links))]), "RemoveLink random")
			if rng.Intn(20) == 0 {
				g.RemoveNode(nodes[rng.Intn(nNodes)])
			}
			mustMatchNaive(t, g)
		}
	}
}

func mustNode(t *testing.T, g *core.Network, id int) *core.Node {
	t.Helper()

	n, ok := g.Node(id)
	MustTrue(t, ok, "Node lookup")

	return n
}

// mustMatchNaive recomputes per-node incidence from Links() and compares.
func mustMatchNaive(t *testing.T, g *core.Network) {
	t.Helper()

	want := make(map[int][]int)
	out := make(map[int][]int)
	degree := make(map[int]int)
	for _, l := range g.Links() {
		f, to := l.From().ID(), l.To().ID()
		want[f] = append(want[f], l.ID())
		out[f] = append(out[f], l.ID())
		if f != to {
			want[to] = append(want[to], l.ID())
		}
		degree[f]++
		degree[to]++
	}
	for _, n := range g.Nodes() {
		MustSameIDSet(t, LinkIDs(g.LinksOf(n)), want[n.ID()], "LinksOf vs naive")
		MustEqualInt(t, g.Degree(n), degree[n.ID()], "Degree vs naive")
		if g.Directed() {
			MustSameIDSet(t, LinkIDs(g.OutLinks(n)), out[n.ID()], "OutLinks vs naive")
		}
	}
}
