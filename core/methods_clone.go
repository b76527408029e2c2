// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning (full or vertices-only) and clearing graph instances.
// Determinism:
//   - Clone keeps vertex and neighbor insertion order and the sequence counter,
//     so listings on the clone match the source.
// Concurrency:
//   - Read lock on the source while snapshotting; Clear takes the write lock.
// AI-HINT (file):
//   - Payloads are copied by value; pointer/map/slice payloads stay shared.

package core

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Clone returns an independent copy of the graph with the same options,
// key order, vertices, edges and payloads.
//
// Complexity: O(V+E).
func (g *Graph[K, V, E]) Clone() *Graph[K, V, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[K, V, E]{
		cfg:      g.cfg,
		compare:  g.compare,
		nextSeq:  g.nextSeq,
		vertices: orderedmap.New[K, *vertexRecord[K, V, E]](),
		entries:  g.entries,
	}
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		clone.vertices.Set(p.Key, copyRecord(p.Value, nil))
	}

	return clone
}

// CloneEmpty returns a graph with the same options, key order and vertices
// (payloads and insertion sequence included) but no edges.
//
// Complexity: O(V).
func (g *Graph[K, V, E]) CloneEmpty() *Graph[K, V, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[K, V, E]{
		cfg:      g.cfg,
		compare:  g.compare,
		nextSeq:  g.nextSeq,
		vertices: orderedmap.New[K, *vertexRecord[K, V, E]](),
	}
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		clone.vertices.Set(p.Key, &vertexRecord[K, V, E]{
			seq:       p.Value.seq,
			payload:   p.Value.payload,
			neighbors: orderedmap.New[K, E](),
		})
	}

	return clone
}

// Clear removes every vertex and edge. Options and key order are preserved;
// the insertion sequence restarts from zero.
//
// Complexity: O(1).
func (g *Graph[K, V, E]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = orderedmap.New[K, *vertexRecord[K, V, E]]()
	g.entries = 0
	g.nextSeq = 0
}

// copyRecord duplicates rec. When keep is non-nil only neighbors in keep are copied.
func copyRecord[K comparable, V, E any](rec *vertexRecord[K, V, E], keep map[K]struct{}) *vertexRecord[K, V, E] {
	out := &vertexRecord[K, V, E]{
		seq:       rec.seq,
		payload:   rec.payload,
		neighbors: orderedmap.New[K, E](),
	}
	for q := rec.neighbors.Oldest(); q != nil; q = q.Next() {
		if keep != nil {
			if _, ok := keep[q.Key]; !ok {
				continue
			}
		}
		out.neighbors.Set(q.Key, q.Value)
	}

	return out
}
