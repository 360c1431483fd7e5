// Package builder provides internal helper functions used by fixtures and
// models to populate a core.Network.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: core errors are wrapped with the calling method name.
//   - Labels and values are applied here, so every constructor honours
//     WithLabelFn/WithValueFn the same way.
package builder

import (
	"fmt"

	"github.com/katalvlaran/netforge/core"
)

// addNodes creates and attaches n nodes in index order and returns them.
// With a label scheme set, node i receives LabelProperty = labelFn(i) where i
// counts from the network's current node count.
//
// Complexity: O(n) time and space.
func addNodes(g *core.Network, n int, cfg builderConfig) []*core.Node {
	base := g.NodeCount()
	nodes := make([]*core.Node, n)
	for i := range nodes {
		nd := g.CreateNode()
		if cfg.labelFn != nil {
			nd.SetProperty(LabelProperty, cfg.labelFn(base+i))
		}
		g.AddNode(nd)
		nodes[i] = nd
	}

	return nodes
}

// connect links from→to and draws the link value when a value scheme is set.
func connect(g *core.Network, from, to *core.Node, cfg builderConfig, method string) error {
	l, err := g.Connect(from, to)
	if err != nil {
		return fmt.Errorf("%s: Connect(%d→%d): %w", method, from.ID(), to.ID(), err)
	}
	if cfg.valueFn != nil {
		l.SetValue(cfg.valueFn(cfg.rng))
	}

	return nil
}

// connectBoth links a→b and, on directed networks, also b→a so that fixtures
// describe the same symmetric relation in both modes.
func connectBoth(g *core.Network, a, b *core.Node, cfg builderConfig, method string) error {
	if err := connect(g, a, b, cfg, method); err != nil {
		return err
	}
	if g.Directed() {
		return connect(g, b, a, cfg, method)
	}

	return nil
}
