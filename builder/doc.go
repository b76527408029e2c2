// SPDX-License-Identifier: MIT

// Package builder populates a core.Graph with deterministic topologies.
//
// A Builder binds a target graph to an ID scheme (IDFn) that maps zero-based
// vertex indices to keys. Topology methods (Path, Cycle, Star, Wheel,
// Complete, CompleteBipartite, Grid, Matching, RandomSparse) add the vertices
// for their index range and then emit edges in a fixed, documented order.
//
// Key components:
//
//   - Builder:     the target graph, ID scheme, payload hooks and options.
//   - Option:      functional options (WithSeed, WithRand, WithLogger).
//   - Constructor: a step composed in order by Build.
//   - IDFn:        IntIDs, DecimalIDs, PrefixIDs, ExcelColumnIDs.
//
// Guarantees:
//
//   - Idempotent vertices: an index whose key already exists is reused and
//     keeps its payload.
//   - Edges follow the graph's first-write-wins rule, so re-running a
//     constructor adds nothing.
//   - Invalid parameters are returned as errors wrapping ErrTooFewVertices,
//     ErrInvalidOffset, ErrInvalidProbability or ErrNeedRandSource.
//     Builders never panic at runtime; option constructors panic on nil input.
//   - Same inputs, same seed and same call order give identical graphs.
package builder
