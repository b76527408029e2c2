// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/FilterEdges/HasEdge/EdgeData/EdgeCount,
//       plus the edge listings EdgeList and EdgesWithData.
// Determinism:
//   - Listings walk vertices in insertion order, then each vertex's neighbors
//     in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
// AI-HINT (file):
//   - AddEdge(u,u,...) returns ErrSelfLoop; AddEdge on an existing edge keeps the old payload.
//   - EdgeList(true) needs a key order: natural (NewOrdered), custom (NewWithOrder) or insertion (New).

package core

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AddEdge connects u and v with the given payload.
//
// Implementation:
//   - Stage 1: Reject keys not equal to themselves (ErrInvalidKey), then u == v (ErrSelfLoop).
//   - Stage 2: Under the write lock, return early if the edge already exists.
//   - Stage 3: Create missing endpoints with the zero vertex payload.
//   - Stage 4: Store payload in both adjacency directions; entries += 2.
//
// Behavior highlights:
//   - First write wins: an existing edge keeps its payload.
//
// Errors:
//   - ErrInvalidKey (wrapped with both endpoints) for a NaN-like endpoint.
//   - ErrSelfLoop (wrapped with both endpoints).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[K, V, E]) AddEdge(u, v K, payload E) error {
	if !selfEqual(u) || !selfEqual(v) {
		return errors.Wrapf(ErrInvalidKey, "AddEdge(%v,%v)", u, v)
	}
	if u == v {
		return errors.Wrapf(ErrSelfLoop, "AddEdge(%v,%v)", u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ru, okU := g.vertices.Get(u)
	rv, okV := g.vertices.Get(v)
	if okU && okV {
		if _, exists := ru.neighbors.Get(v); exists {
			return nil
		}
	}

	var zero V
	if !okU {
		ru = g.insertVertex(u, zero)
	}
	if !okV {
		rv = g.insertVertex(v, zero)
	}

	ru.neighbors.Set(v, payload)
	rv.neighbors.Set(u, payload)
	g.entries += 2

	g.cfg.logger.Debug("edge added", zap.Any("u", u), zap.Any("v", v),
		zap.Bool("created_u", !okU), zap.Bool("created_v", !okV))
	g.afterMutation("AddEdge")

	return nil
}

// HasEdge reports whether {u,v} is an edge. It is false if either endpoint
// is absent, and HasEdge(u,v) == HasEdge(v,u) always.
// Complexity: O(1).
func (g *Graph[K, V, E]) HasEdge(u, v K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edgeLocked(u, v)

	return ok
}

// EdgeData returns the payload of {u,v}; ok is false if there is no such edge.
// Complexity: O(1).
func (g *Graph[K, V, E]) EdgeData(u, v K) (payload E, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeLocked(u, v)
}

// RemoveEdge deletes {u,v} and returns its payload; ok is false (and
// nothing changes) if there is no such edge.
// Complexity: O(1).
func (g *Graph[K, V, E]) RemoveEdge(u, v K) (payload E, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	payload, ok = g.removeEdgeLocked(u, v)
	if ok {
		g.cfg.logger.Debug("edge removed", zap.Any("u", u), zap.Any("v", v))
		g.afterMutation("RemoveEdge")
	}

	return payload, ok
}

// FilterEdges removes every edge for which keep returns false and reports how
// many were removed. keep sees each edge once, in the EdgeList(true)
// orientation and order, and must not call back into g. Vertices are never
// removed.
//
// Complexity: O(V+E).
func (g *Graph[K, V, E]) FilterEdges(keep func(u, v K, payload E) bool) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	var drop []Pair[K]
	g.walkOrderedLocked(func(u, v K, payload E) {
		if !keep(u, v, payload) {
			drop = append(drop, Pair[K]{U: u, V: v})
		}
	})
	for _, e := range drop {
		g.removeEdgeLocked(e.U, e.V)
	}
	if len(drop) > 0 {
		g.cfg.logger.Debug("edges filtered", zap.Int("removed", len(drop)))
		g.afterMutation("FilterEdges")
	}

	return len(drop)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph[K, V, E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.entries / 2
}

// EdgeList returns every edge exactly once.
//
// With ordered == true each edge is reported as (u,v) with u before v in the
// graph's key order. With ordered == false no key order is consulted: each
// edge is reported in the direction it is first met while walking vertices in
// insertion order.
//
// Complexity: O(V+E) time; O(E) space, plus O(V) for the visited set when unordered.
func (g *Graph[K, V, E]) EdgeList(ordered bool) []Pair[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Pair[K], 0, g.entries/2)
	if ordered {
		g.walkOrderedLocked(func(u, v K, _ E) {
			out = append(out, Pair[K]{U: u, V: v})
		})

		return out
	}

	walked := make(map[K]struct{}, g.vertices.Len())
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		for q := p.Value.neighbors.Oldest(); q != nil; q = q.Next() {
			if _, done := walked[q.Key]; done {
				continue
			}
			out = append(out, Pair[K]{U: p.Key, V: q.Key})
		}
		walked[p.Key] = struct{}{}
	}

	return out
}

// EdgesWithData returns every edge once, in the same order and orientation
// as EdgeList(true), together with its payload.
// Complexity: O(V+E).
func (g *Graph[K, V, E]) EdgesWithData() []Edge[K, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[K, E], 0, g.entries/2)
	g.walkOrderedLocked(func(u, v K, payload E) {
		out = append(out, Edge[K, E]{U: u, V: v, Payload: payload})
	})

	return out
}

// walkOrderedLocked calls fn for every adjacency entry (u,v) with u < v.
func (g *Graph[K, V, E]) walkOrderedLocked(fn func(u, v K, payload E)) {
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		for q := p.Value.neighbors.Oldest(); q != nil; q = q.Next() {
			if g.lessLocked(p.Key, q.Key) {
				fn(p.Key, q.Key, q.Value)
			}
		}
	}
}

// edgeLocked looks up the payload of {u,v}. Symmetry makes one direction enough.
func (g *Graph[K, V, E]) edgeLocked(u, v K) (payload E, ok bool) {
	ru, ok := g.vertices.Get(u)
	if !ok {
		return payload, false
	}

	return ru.neighbors.Get(v)
}

// removeEdgeLocked deletes both directed entries of {u,v}. Caller holds the write lock.
func (g *Graph[K, V, E]) removeEdgeLocked(u, v K) (payload E, ok bool) {
	ru, ok := g.vertices.Get(u)
	if !ok {
		return payload, false
	}
	payload, ok = ru.neighbors.Delete(v)
	if !ok {
		return payload, false
	}
	if rv, found := g.vertices.Get(v); found {
		rv.neighbors.Delete(u)
	}
	g.entries -= 2

	return payload, true
}
