// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Degree, Neighbors, NeighborsWithData).
// Determinism:
//   - Neighbors follow the insertion order of the vertex's edges.
// Concurrency:
//   - Read lock only.

package core

// Degree returns the number of edges incident to u, or 0 if u is absent.
// Complexity: O(1).
func (g *Graph[K, V, E]) Degree(u K) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.vertices.Get(u)
	if !ok {
		return 0
	}

	return rec.neighbors.Len()
}

// Neighbors returns the vertices adjacent to u, empty if u is absent.
// Complexity: O(deg(u)).
func (g *Graph[K, V, E]) Neighbors(u K) []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.vertices.Get(u)
	if !ok {
		return []K{}
	}
	out := make([]K, 0, rec.neighbors.Len())
	for p := rec.neighbors.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// NeighborsWithData returns (neighbor, edge payload) entries for u, empty if
// u is absent.
// Complexity: O(deg(u)).
func (g *Graph[K, V, E]) NeighborsWithData(u K) []NeighborEntry[K, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.vertices.Get(u)
	if !ok {
		return []NeighborEntry[K, E]{}
	}
	out := make([]NeighborEntry[K, E], 0, rec.neighbors.Len())
	for p := rec.neighbors.Oldest(); p != nil; p = p.Next() {
		out = append(out, NeighborEntry[K, E]{Vertex: p.Key, Payload: p.Value})
	}

	return out
}
