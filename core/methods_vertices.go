// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and VerticesWithData() follow vertex insertion order.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
//
// AI-Hints (file):
//   - AddVertex is NOT idempotent: a duplicate key returns ErrVertexExists.
//   - RemoveVertex of an absent key is a silent no-op reported by ok == false.
package core

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AddVertex inserts key with the given payload.
//
// Implementation:
//   - Stage 1: Reject a key that is not equal to itself (ErrInvalidKey).
//   - Stage 2: Acquire the write lock.
//   - Stage 3: Reject a key that is already present (ErrVertexExists).
//   - Stage 4: Register a record with an empty neighbor map.
//
// Errors:
//   - ErrInvalidKey (wrapped with the key), e.g. a NaN float key.
//   - ErrVertexExists (wrapped with the key): duplicate insertion is a contract violation.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[K, V, E]) AddVertex(key K, payload V) error {
	if !selfEqual(key) {
		return errors.Wrapf(ErrInvalidKey, "AddVertex(%v)", key)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices.Get(key); exists {
		return errors.Wrapf(ErrVertexExists, "AddVertex(%v)", key)
	}
	g.insertVertex(key, payload)
	g.cfg.logger.Debug("vertex added", zap.Any("key", key))
	g.afterMutation("AddVertex")

	return nil
}

// HasVertex reports whether key is a vertex of the graph.
// Complexity: O(1).
func (g *Graph[K, V, E]) HasVertex(key K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices.Get(key)

	return ok
}

// VertexData returns the payload stored for key; ok is false if key is absent.
// Complexity: O(1).
func (g *Graph[K, V, E]) VertexData(key K) (payload V, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.vertices.Get(key)
	if !ok {
		return payload, false
	}

	return rec.payload, true
}

// RemoveVertex deletes key and every edge incident to it, returning the
// former vertex payload.
//
// Implementation:
//   - Stage 1: Acquire the write lock; an absent key returns (zero, false).
//   - Stage 2: Snapshot the current neighbors, then remove each incident edge.
//   - Stage 3: Delete the now-isolated record.
//
// Behavior highlights:
//   - EdgeCount drops by the former degree of key; each former neighbor's
//     Degree drops by one.
//   - Idempotent: a second call reports ok == false and changes nothing.
//
// Complexity:
//   - Time O(deg(key)), Space O(deg(key)) for the neighbor snapshot.
func (g *Graph[K, V, E]) RemoveVertex(key K) (payload V, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.vertices.Get(key)
	if !ok {
		return payload, false
	}

	// Snapshot first: removeEdgeLocked deletes from rec.neighbors.
	nbrs := make([]K, 0, rec.neighbors.Len())
	for p := rec.neighbors.Oldest(); p != nil; p = p.Next() {
		nbrs = append(nbrs, p.Key)
	}
	for _, v := range nbrs {
		g.removeEdgeLocked(key, v)
	}

	g.vertices.Delete(key)
	g.cfg.logger.Debug("vertex removed", zap.Any("key", key), zap.Int("incident_edges", len(nbrs)))
	g.afterMutation("RemoveVertex")

	return rec.payload, true
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[K, V, E]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Len()
}

// Vertices returns all vertex keys in insertion order.
// Complexity: O(V).
func (g *Graph[K, V, E]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, 0, g.vertices.Len())
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// VerticesWithData returns (key, payload) entries in insertion order.
// Complexity: O(V).
func (g *Graph[K, V, E]) VerticesWithData() []VertexEntry[K, V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]VertexEntry[K, V], 0, g.vertices.Len())
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		out = append(out, VertexEntry[K, V]{Key: p.Key, Payload: p.Value.payload})
	}

	return out
}

// selfEqual is false only for keys that break ==, such as NaN.
func selfEqual[K comparable](k K) bool {
	return k == k
}
