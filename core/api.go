// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a graph.

package core

// Stats produces a consistent snapshot of vertex/edge counts and degree extremes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan vertex records once, tracking max degree and isolated vertices.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph[K, V, E]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: g.vertices.Len(),
		EdgeCount:   g.entries / 2,
	}
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		d := p.Value.neighbors.Len()
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if d == 0 {
			stats.IsolatedCount++
		}
	}

	return stats
}
