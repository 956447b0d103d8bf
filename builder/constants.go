// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodDirected is the canonical name for the Directed constructor.
	MethodDirected = "Directed"
	// MethodNeighborSample is the canonical name for the NeighborSample constructor.
	MethodNeighborSample = "NeighborSample"
	// MethodDense is the canonical name for the Dense constructor.
	MethodDense = "Dense"
	// MethodCyclic is the canonical name for the Cyclic constructor.
	MethodCyclic = "Cyclic"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodDisconnected is the canonical name for the Disconnected constructor.
	MethodDisconnected = "Disconnected"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodTree is the canonical name for the Tree constructor.
	MethodTree = "Tree"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodDisjointTriangles is the canonical name for the DisjointTriangles constructor.
	MethodDisjointTriangles = "DisjointTriangles"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinStarNodes is the smallest meaningful size for a star topology:
// one hub plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel topology:
// a rim cycle of at least 3 nodes plus the hub.
const MinWheelNodes = 4

// MinDisconnectedNodes is the smallest n split into two non-empty halves.
const MinDisconnectedNodes = 2

//-----------------------------------------------------------------------------
// Sampling Defaults
//-----------------------------------------------------------------------------

// SparseDegree is the number of neighbour draws per vertex in Sparse.
const SparseDegree = 4

// DenseFraction is the share of n drawn as neighbours per vertex in Dense.
const DenseFraction = 0.2

// DefaultDirectedProbability is the arc probability used by the "directed" category.
const DefaultDirectedProbability = 0.05

// MinWeight and MaxWeight bound the default integer weight draw, inclusive.
const (
	MinWeight = 1
	MaxWeight = 10
)

// MinProbability is the lower bound for probability parameters, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for probability parameters, inclusive.
const MaxProbability = 1.0
