// SPDX-License-Identifier: MIT

// Package core provides an in-memory, thread-safe undirected Graph with
// generic vertex keys and optional vertex and edge payloads.
//
// The Graph G = (V,E) keeps one insertion-ordered catalog of vertex records.
// Each record carries the vertex payload together with its own
// insertion-ordered neighbor map (neighbor key → edge payload), so a vertex
// and its adjacency can never drift apart. A redundant counter of directed
// adjacency entries keeps EdgeCount O(1).
//
// Semantics:
//
//   - Edges are unordered pairs {u,v} with u != v; self-loops are rejected.
//   - AddEdge auto-creates missing endpoints with the zero vertex payload.
//   - Re-adding an existing edge is a no-op: the first payload wins.
//   - RemoveVertex removes every incident edge before the vertex itself.
//   - Lookups of absent vertices or edges are not errors; they report
//     (zero, false), false, 0 or an empty slice.
//   - Contract violations (duplicate AddVertex, self-loop AddEdge) return
//     errors wrapping ErrVertexExists / ErrSelfLoop. Match with errors.Is.
//   - A key that is not equal to itself (NaN for float keys, or an
//     interface key holding NaN) is rejected with ErrInvalidKey: map lookups
//     could never find it again.
//
// Key order:
//
//	NewOrdered[K cmp.Ordered, V, E]()          natural order (cmp.Compare)
//	NewWithOrder[K, V, E](compare)             caller-supplied total order
//	New[K, V, E]()                             vertex insertion sequence
//
// The key order is used only to pick the canonical direction of each edge in
// EdgeList(true) and EdgesWithData. A comparator must be a strict total order
// consistent with ==; keys that compare equal but are distinct would hide
// their shared edge from the ordered listing.
//
// Enumeration:
//
//	Vertices()/VerticesWithData()   insertion order of vertices
//	Neighbors(u)/NeighborsWithData  insertion order of u's edges
//	EdgeList(true)                  (u,v) with u < v, walking vertices in insertion order
//	EdgeList(false)                 each edge once, oriented as first met in the same walk
//
// Debug mode:
//
//	WithInvariantChecks() re-validates the structure after every mutation and
//	panics with ErrInvariantViolation on failure. Validate() runs the same
//	checks on demand. Neither is on the normal path.
//
// Concurrency:
//
//	A single sync.RWMutex guards the whole structure: mutators take the write
//	lock, queries the read lock. Returned slices are fresh copies.
package core
