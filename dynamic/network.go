// File: network.go
// Role: Time-indexed snapshots over core.Network with floor forking.
// Determinism:
//   - TimeInstances are ascending; forks copy insertion order and id counters.

package dynamic

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/netforge/core"
)

// Network maps time instants to network snapshots.
// It is not safe for concurrent use.
type Network struct {
	timeline *redblacktree.Tree // int → *core.Network
	now      int
	current  *core.Network
}

// NewNetwork creates a dynamic network with an empty snapshot at t=0.
// opts configure every snapshot (forks inherit directedness from their source).
func NewNetwork(opts ...core.Option) *Network {
	d := &Network{
		timeline: redblacktree.NewWithIntComparator(),
	}
	d.current = core.NewNetwork(opts...)
	d.timeline.Put(0, d.current)

	return d
}

// SetCurrentTime moves the current instant to t, forking the floor snapshot
// when t has none. Negative t is a no-op.
// Complexity: O(log T), plus O(V+E) on fork.
func (d *Network) SetCurrentTime(t int) {
	if t < 0 {
		return
	}
	if v, found := d.timeline.Get(t); found {
		d.now, d.current = t, v.(*core.Network)
		return
	}

	// t=0 always exists, so every t ≥ 0 has a floor.
	floor, _ := d.timeline.Floor(t)
	fork := floor.Value.(*core.Network).Copy()
	d.timeline.Put(t, fork)
	d.now, d.current = t, fork
}

// CurrentTime returns the current instant.
func (d *Network) CurrentTime() int { return d.now }

// FirstTime returns the earliest instant (always 0).
func (d *Network) FirstTime() int {
	return d.timeline.Left().Key.(int)
}

// LastTime returns the latest instant.
func (d *Network) LastTime() int {
	return d.timeline.Right().Key.(int)
}

// TimeInstances returns every instant holding a snapshot, ascending.
// Instants need not be contiguous.
func (d *Network) TimeInstances() []int {
	keys := d.timeline.Keys()
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = k.(int)
	}

	return out
}

// Snapshot returns the snapshot stored at exactly t.
func (d *Network) Snapshot(t int) (*core.Network, bool) {
	v, found := d.timeline.Get(t)
	if !found {
		return nil, false
	}

	return v.(*core.Network), true
}

// Current returns the snapshot at the current instant.
func (d *Network) Current() *core.Network { return d.current }

// Copy returns a dynamic network with deep copies of every snapshot and the
// same current instant.
func (d *Network) Copy() *Network {
	c := &Network{
		timeline: redblacktree.NewWithIntComparator(),
		now:      d.now,
	}
	it := d.timeline.Iterator()
	for it.Next() {
		snap := it.Value().(*core.Network).Copy()
		c.timeline.Put(it.Key(), snap)
		if it.Key().(int) == d.now {
			c.current = snap
		}
	}

	return c
}
