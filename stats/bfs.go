package stats

import (
	"fmt"

	"github.com/katalvlaran/netforge/core"
)

// BFSResult is the outcome of a breadth-first search, keyed by node id.
type BFSResult struct {
	// Order lists node ids in visit order, start first.
	Order []int
	// Depth maps each reached id to its hop distance from the start.
	Depth map[int]int
	// Parent maps each reached id except the start to its BFS parent.
	Parent map[int]int
}

// PathTo rebuilds the hop-shortest path from the start to id.
// It returns nil when id was not reached.
func (r *BFSResult) PathTo(id int) []int {
	if _, ok := r.Depth[id]; !ok {
		return nil
	}
	path := []int{id}
	for {
		p, ok := r.Parent[id]
		if !ok {
			break
		}
		path = append(path, p)
		id = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     *core.Network
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search over the undirected view of g from start.
// Returns ErrNilNetwork, ErrNodeNotFound, ErrOptionViolation, the context
// error on cancellation, or any error returned by the OnVisit hook.
func BFS(g *core.Network, start *core.Node, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start == nil || !g.ContainsNode(start) {
		return nil, fmt.Errorf("stats: BFS: start %v: %w", start, ErrNodeNotFound)
	}

	n := g.NodeCount()
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks n reached at depth d and records its parent.
func (w *walker) enqueue(n *core.Node, d int, parent *core.Node) {
	w.res.Depth[n.ID()] = d
	if parent != nil {
		w.res.Parent[n.ID()] = parent.ID()
	}
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node.ID())
		if err := w.opts.OnVisit(item.node.ID(), item.depth); err != nil {
			return fmt.Errorf("stats: OnVisit error at %d: %w", item.node.ID(), err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.g.Neighbours(item.node) {
			if _, seen := w.res.Depth[nb.ID()]; !seen {
				w.enqueue(nb, next, item.node)
			}
		}
	}

	return nil
}
