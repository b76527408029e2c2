// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by the topology methods,
// keeping error context and validation consistent across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodMatching is the canonical name for the Matching constructor.
	MethodMatching = "Matching"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology:
// one hub plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel topology:
// a rim cycle of at least 3 nodes plus one hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinPartition is the smallest allowed side of a complete bipartite graph.
const MinPartition = 1

// MinCompleteNodes is the smallest size of a complete graph (K_1 is a lone vertex).
const MinCompleteNodes = 1

// MinMatchingPairs is the smallest number of matched pairs.
const MinMatchingPairs = 1

// MinSparseNodes is the smallest vertex count for RandomSparse.
const MinSparseNodes = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0
