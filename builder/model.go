// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// model.go - the Model contract and the lifecycle shared by every generator.
//
// State machine:
//
//	Unconfigured --Configure(ok)--> Configured --Generate--> Configured
//	Configure(error) leaves the previous state and parameters untouched.
//
// Generate always starts with resetModel: the Source is reseeded from the
// configured seed, a WithSeed value RNG is rewound, and a fresh core.Network
// is allocated. Two Generate calls on
// an unchanged configuration therefore return equal, independent networks.

package builder

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/netforge/core"
)

// Model is a configurable random network generator.
type Model interface {
	// Name returns the registry name (ModelER, ModelWS, ...).
	Name() string
	// Configure validates p (completed with model defaults) and, on success,
	// replaces the configuration. On error nothing changes.
	Configure(p Params) error
	// Configuration returns a copy of the resolved parameters, including the
	// effective seed; nil before the first successful Configure.
	Configuration() Params
	// Generate produces a new network from the current configuration.
	Generate() (*core.Network, error)
}

// model carries the state every generator shares.
type model struct {
	name   string
	method string
	cfg    builderConfig

	params Params // resolved; nil while unconfigured
	seed   int64

	rng Source
	net *core.Network
}

func newModel(name, method string, opts []Option) model {
	return model{name: name, method: method, cfg: newBuilderConfig(opts...)}
}

// Name implements Model.
func (m *model) Name() string { return m.name }

// Configuration implements Model.
func (m *model) Configuration() Params { return m.params.Clone() }

// commit installs an already validated configuration.
func (m *model) commit(resolved Params, seed int64) {
	m.params = resolved
	m.seed = seed
	m.cfg.logger.Debug("model configured",
		slog.String("model", m.name),
		slog.Any("params", resolved))
}

// resetModel reseeds the random source and hands the model a fresh network.
func (m *model) resetModel() {
	if m.rng == nil {
		m.rng = m.cfg.newSource(m.seed)
	} else {
		m.rng.Seed(m.seed)
	}
	m.cfg.resetValues()
	m.net = core.NewNetwork(core.WithDirected(m.cfg.directed))
}

// generate runs build on a freshly reset model and returns the result.
func (m *model) generate(build func() error) (*core.Network, error) {
	if m.params == nil {
		return nil, errors.Wrapf(ErrNotConfigured, "%s: Generate", m.method)
	}
	m.resetModel()
	m.cfg.logger.Debug("generating network",
		slog.String("model", m.name),
		slog.Int64("seed", m.seed))

	if err := build(); err != nil {
		return nil, errors.Wrapf(err, "%s: Generate", m.method)
	}

	net := m.net
	m.net = nil
	m.cfg.logger.Debug("network generated",
		slog.String("model", m.name),
		slog.Int("nodes", net.NodeCount()),
		slog.Int("links", net.LinkCount()))

	return net, nil
}
