// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Kept vertices and edges retain their source insertion order and sequence numbers.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

import orderedmap "github.com/wk8/go-ordered-map/v2"

// InducedSubgraph returns a new graph containing only the vertices in keep
// that exist in g, and every edge whose endpoints are both kept. Unknown keys
// in keep are ignored. The source graph is not mutated.
//
// Complexity: O(len(keep) + V + E).
func (g *Graph[K, V, E]) InducedSubgraph(keep []K) *Graph[K, V, E] {
	set := make(map[K]struct{}, len(keep))
	for _, k := range keep {
		set[k] = struct{}{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph[K, V, E]{
		cfg:      g.cfg,
		compare:  g.compare,
		nextSeq:  g.nextSeq,
		vertices: orderedmap.New[K, *vertexRecord[K, V, E]](),
	}
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		if _, ok := set[p.Key]; !ok {
			continue
		}
		rec := copyRecord(p.Value, set)
		out.vertices.Set(p.Key, rec)
		out.entries += rec.neighbors.Len()
	}

	return out
}
