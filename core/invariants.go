// SPDX-License-Identifier: MIT
//
// File: invariants.go
// Role: Structural self-check (Validate) shared by the debug mode.
// Checks:
//   - every record has a neighbor map;
//   - no vertex lists itself as a neighbor;
//   - every neighbor exists and lists the vertex back;
//   - the entry counter equals the sum of adjacency sizes and is even.
// Only key symmetry is checked. Edge payloads are not compared: AddEdge is
// their only writer and stores the same value in both directions.

package core

import "github.com/pkg/errors"

// Validate checks the graph's structural invariants and returns a wrapped
// ErrInvariantViolation describing the first failure, or nil. Edge payloads
// are not compared between the two directions.
// Complexity: O(V+E).
func (g *Graph[K, V, E]) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.validateLocked()
}

func (g *Graph[K, V, E]) validateLocked() error {
	sum := 0
	for p := g.vertices.Oldest(); p != nil; p = p.Next() {
		rec := p.Value
		if rec == nil || rec.neighbors == nil {
			return errors.Wrapf(ErrInvariantViolation, "vertex %v has no adjacency", p.Key)
		}
		for q := rec.neighbors.Oldest(); q != nil; q = q.Next() {
			if q.Key == p.Key {
				return errors.Wrapf(ErrInvariantViolation, "vertex %v is its own neighbor", p.Key)
			}
			other, ok := g.vertices.Get(q.Key)
			if !ok {
				return errors.Wrapf(ErrInvariantViolation, "vertex %v lists missing neighbor %v", p.Key, q.Key)
			}
			if _, back := other.neighbors.Get(p.Key); !back {
				return errors.Wrapf(ErrInvariantViolation, "edge %v→%v has no reverse entry", p.Key, q.Key)
			}
		}
		sum += rec.neighbors.Len()
	}

	if sum != g.entries {
		return errors.Wrapf(ErrInvariantViolation, "entry counter %d != adjacency total %d", g.entries, sum)
	}
	if g.entries%2 != 0 {
		return errors.Wrapf(ErrInvariantViolation, "entry counter %d is odd", g.entries)
	}

	return nil
}
