// Package netforge is an in-memory network engine: a store of nodes and
// links, a time-indexed snapshot layer on top of it, and seeded random
// network generators.
//
// Packages:
//
//	core/         - Node, Link and Network; directed or undirected, insertion ordered
//	dynamic/      - Network snapshots keyed by integer time, forked on demand
//	builder/      - fixtures (Cycle, Grid, ...) and models (ER, Gilbert, BA, WS, ...)
//	stats/        - clustering, degree statistics, BFS, connectivity
//	config/       - viper-backed model specification (YAML, env, flags)
//	cmd/netforge/ - CLI: generate a network and print its summary
//
// Quick start:
//
//	m := builder.NewBAModel()
//	if err := m.ConfigureBA(1000, 3, 42); err != nil {
//		log.Fatal(err)
//	}
//	g, err := m.Generate()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(stats.Summarize(g).AverageDegree)
//
// Determinism: every generator draws from a Source reseeded from its
// configuration, so a configuration replays the same network.
package netforge
