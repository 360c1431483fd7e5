// Package builder populates core.Network values: deterministic fixtures for
// tests and examples, and seeded random models for experiments.
//
// The package offers the following key components:
//
//   - Fixtures (Constructor closures run by BuildNetwork):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid.
//   - Random models (Model: Configure, then Generate):
//     – ERModel:       exact-m Erdős–Rényi G(n,m).
//     – GilbertModel:  G(n,p) with geometric skipping, O(n+m) expected.
//     – BAModel:       Barabási–Albert preferential attachment, d links per node.
//     – BAForestModel: Barabási–Albert tree (d=1) from an endpoint pool.
//     – KRegularModel: ring lattice, each node linked to its k successors.
//     – WSModel:       Watts–Strogatz rewiring of a 2d-regular ring.
//   - Registry: NewModel, ModelNames and DefaultParams resolve models by name
//     (ModelER, ModelWS, ...), which is how the config and CLI layers build them.
//   - Node label schemes (LabelFn, stored under LabelProperty):
//     – DecimalLabelFn, ExcelColumnLabelFn, HexLabelFn, PrefixLabelFn.
//   - Link value distributions (ValueFn):
//     – DefaultValueFn, ConstantValueFn, UniformValueFn, NormalValueFn,
//     ExponentialValueFn.
//   - Combinatorics shared by the models:
//     – MaxLinks, UnrankEdge (row-major upper triangle), SampleExcluding.
//
// Parameters:
//
//	Models read Params (map[string]any) under ParamNumNodes, ParamNumLinks
//	(alias ParamM), ParamD, ParamK, ParamP and ParamSeed. Values go through
//	spf13/cast, so "12" and 12.0 are as good as 12. Keys left out fall back to
//	DefaultParams(name); a missing seed is taken from the clock and recorded,
//	so Configuration() always replays the network it produced.
//
// Guarantees:
//
//   - Determinism: one configuration (including the seed) yields the same
//     network on every Generate. Models reseed their Source before each run.
//   - Link values never perturb topology: they are drawn from the separate
//     RNG set by WithSeed/WithRand.
//   - Configure validates everything up front. On error the previous
//     configuration stays in place and errors.Is matches both
//     ErrInvalidConfig and the specific sentinel.
//   - Option constructors panic on meaningless input (nil functions, negative
//     rates); generators never panic.
//
// Example:
//
//	m := builder.NewWSModel(builder.WithDecimalLabels())
//	if err := m.ConfigureWS(100, 3, 0.1, 42); err != nil {
//		return err
//	}
//	g, err := m.Generate()
package builder
