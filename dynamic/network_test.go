package dynamic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netforge/core"
	"github.com/katalvlaran/netforge/dynamic"
)

// buildTriangle adds nodes 0,1,2 and links 0-1, 1-2 to the current snapshot.
func buildTriangle(t *testing.T, d *dynamic.Network) []*core.Node {
	t.Helper()
	nodes := []*core.Node{d.CreateNode(), d.CreateNode(), d.CreateNode()}
	for _, n := range nodes {
		require.True(t, d.AddNode(n))
	}
	_, err := d.Connect(nodes[0], nodes[1])
	require.NoError(t, err)
	_, err = d.Connect(nodes[1], nodes[2])
	require.NoError(t, err)

	return nodes
}

func TestNewNetwork_StartsAtZero(t *testing.T) {
	d := dynamic.NewNetwork()
	assert.Equal(t, 0, d.CurrentTime())
	assert.Equal(t, 0, d.FirstTime())
	assert.Equal(t, 0, d.LastTime())
	assert.Equal(t, []int{0}, d.TimeInstances())
	assert.Equal(t, 0, d.NodeCount())
	assert.False(t, d.Directed())

	snap, ok := d.Snapshot(0)
	require.True(t, ok)
	assert.Same(t, snap, d.Current())
}

func TestSetCurrentTime_ForksFloorSnapshot(t *testing.T) {
	d := dynamic.NewNetwork()
	buildTriangle(t, d)

	d.SetCurrentTime(5)
	assert.Equal(t, 5, d.CurrentTime())
	assert.Equal(t, 3, d.NodeCount())
	assert.Equal(t, 2, d.LinkCount())

	// Edits at t=5 stay at t=5.
	n0, ok := d.Node(0)
	require.True(t, ok)
	n2, ok := d.Node(2)
	require.True(t, ok)
	_, err := d.Connect(n0, n2)
	require.NoError(t, err)
	require.True(t, d.RemoveNodeByID(1))
	assert.Equal(t, 1, d.LinkCount())

	zero, ok := d.Snapshot(0)
	require.True(t, ok)
	assert.Equal(t, 3, zero.NodeCount())
	assert.Equal(t, 2, zero.LinkCount())

	// t=3 forks from t=0 (floor of 3), not from t=5.
	d.SetCurrentTime(3)
	assert.Equal(t, 3, d.NodeCount())
	assert.Equal(t, 2, d.LinkCount())

	// t=9 forks from t=5.
	d.SetCurrentTime(9)
	assert.Equal(t, 2, d.NodeCount())
	assert.Equal(t, 1, d.LinkCount())
	_, ok = d.Node(1)
	assert.False(t, ok)

	assert.Equal(t, []int{0, 3, 5, 9}, d.TimeInstances())
	assert.Equal(t, 0, d.FirstTime())
	assert.Equal(t, 9, d.LastTime())
}

func TestSetCurrentTime_ExistingAndNegative(t *testing.T) {
	d := dynamic.NewNetwork(core.WithDirected(true))
	buildTriangle(t, d)
	d.SetCurrentTime(2)
	forked := d.Current()

	d.SetCurrentTime(-1)
	assert.Equal(t, 2, d.CurrentTime())
	assert.Equal(t, []int{0, 2}, d.TimeInstances())

	d.SetCurrentTime(0)
	d.SetCurrentTime(2)
	assert.Same(t, forked, d.Current(), "revisiting an instant must not fork again")
	assert.True(t, d.Directed())
}

func TestDelegation_QueriesCurrentSnapshot(t *testing.T) {
	d := dynamic.NewNetwork()
	nodes := buildTriangle(t, d)

	assert.True(t, d.ContainsNode(nodes[1]))
	assert.True(t, d.ContainsLinks(nodes[2], nodes[1]))
	assert.Len(t, d.Neighbours(nodes[1]), 2)
	assert.Len(t, d.LinksOf(nodes[1]), 2)
	assert.Equal(t, 2, d.Degree(nodes[1]))

	// After a fork the t=0 instances are no longer the current ones.
	d.SetCurrentTime(1)
	assert.False(t, d.ContainsNode(nodes[1]))
	assert.Len(t, d.NeighboursByID(1), 2)

	n1, _ := d.Node(1)
	l, ok := d.LinkBetween(n1, d.NeighboursByID(1)[0])
	require.True(t, ok)
	assert.True(t, d.RemoveLink(l))
	assert.Equal(t, 1, d.LinkCount())
}

func TestCopy_DeepCopiesEveryInstant(t *testing.T) {
	d := dynamic.NewNetwork()
	buildTriangle(t, d)
	d.SetCurrentTime(4)

	c := d.Copy()
	assert.Equal(t, d.TimeInstances(), c.TimeInstances())
	assert.Equal(t, 4, c.CurrentTime())
	assert.NotSame(t, d.Current(), c.Current())

	require.True(t, c.RemoveNodeByID(0))
	assert.Equal(t, 3, d.NodeCount())
	assert.Equal(t, 2, c.NodeCount())
}

func TestCopy_KeepsDirectedness(t *testing.T) {
	d := dynamic.NewNetwork(core.WithDirected(true))
	d.SetCurrentTime(3)

	c := d.Copy()
	for _, tm := range c.TimeInstances() {
		snap, ok := c.Snapshot(tm)
		require.True(t, ok)
		assert.True(t, snap.Directed(), "instant %d", tm)
	}
	c.SetCurrentTime(7)
	assert.True(t, c.Directed())
}
