// Package builder defines shared constants used by generators and fixtures,
// ensuring consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor or model name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle fixture.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path fixture.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star fixture.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel fixture.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete fixture.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite fixture.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid fixture.
	MethodGrid = "Grid"

	// MethodER is the canonical name for the exact-m Erdős–Rényi model.
	MethodER = "ER"
	// MethodGilbert is the canonical name for the G(n,p) model.
	MethodGilbert = "Gilbert"
	// MethodBA is the canonical name for the Barabási–Albert model.
	MethodBA = "BA"
	// MethodBAForest is the canonical name for the Barabási–Albert forest model.
	MethodBAForest = "BAForest"
	// MethodKRegular is the canonical name for the k-regular ring lattice model.
	MethodKRegular = "KRegular"
	// MethodWS is the canonical name for the Watts–Strogatz model.
	MethodWS = "WS"
)

//-----------------------------------------------------------------------------
// Registry names
//-----------------------------------------------------------------------------

// Names under which NewModel resolves each generator.
const (
	ModelER       = "er"
	ModelGilbert  = "gilbert"
	ModelBA       = "ba"
	ModelBAForest = "ba-forest"
	ModelKRegular = "kregular"
	ModelWS       = "ws"
)

//-----------------------------------------------------------------------------
// Parameter keys recognised by Model.Configure
//-----------------------------------------------------------------------------

const (
	ParamNumNodes = "numNodes"
	ParamNumLinks = "numLinks"
	// ParamM is an alias of ParamNumLinks.
	ParamM    = "m"
	ParamD    = "d"
	ParamK    = "k"
	ParamP    = "p"
	ParamSeed = "seed"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-links.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star: one hub plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: a 3-cycle plus a hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D grid.
const MinGridDim = 1

// MinPartition is the smallest allowed side of a complete bipartite graph.
const MinPartition = 1

// MinBANodes is the seed pair every preferential-attachment model starts from.
const MinBANodes = 2

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound of every probability parameter.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for Gilbert's p.
// Watts–Strogatz excludes it (rewiring every link is rejected).
const MaxProbability = 1.0

//-----------------------------------------------------------------------------
// Property keys
//-----------------------------------------------------------------------------

// LabelProperty is the node property written when a label scheme is set.
const LabelProperty = "label"
