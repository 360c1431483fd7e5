// Package stats computes read-only structural statistics of a core.Network:
// clustering coefficients, degree statistics, breadth-first reachability,
// connectivity and acyclicity.
//
// Every function treats the network as undirected, walking Neighbours (the
// union of successors and predecessors) so that directed networks produced
// by the same generator are measured the same way as undirected ones.
// Self-loops never count as neighbours for clustering, but they do close a
// cycle for IsAcyclic.
//
// Complexity:
//
//	NodeClusteringCoefficient   O(k²) for a node of degree k
//	NetworkClusteringCoefficient O(Σ k²)
//	Degree statistics           O(V)
//	BFS, IsConnected, Components O(V + E)
//	IsAcyclic, IsTree           O(E·α(V))
//
// Nothing here mutates the network; callers may run statistics
// concurrently on a network nobody is writing to.
package stats
