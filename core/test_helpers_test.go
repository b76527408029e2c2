// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for undigraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Centralize the structural consistency check used after mutations.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/undigraph/core"
)

// Common vertex keys used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"

	VertexBase = "Base"
)

// Common payloads used across core tests (avoid magic strings in test bodies).
const (
	PayloadX = "X"
	PayloadY = "Y"
)

// Common sizes used across core tests.
const (
	NScenario         = 5
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
	NRandomOps        = 2000
	NRandomKeys       = 12
)

// newStringGraph returns a naturally ordered graph with string keys and payloads.
func newStringGraph(opts ...core.GraphOption) *core.Graph[string, string, string] {
	return core.NewOrdered[string, string, string](opts...)
}

// buildScenario reproduces the demo fixture: vertices 0..n-1, then edges
// (i+n, i) for i in [0,n), which auto-create n..2n-1.
func buildScenario(t *testing.T, n int) *core.Graph[int, string, string] {
	t.Helper()

	g := core.NewOrdered[int, string, string](core.WithInvariantChecks())
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i, ""))
	}
	for i := n; i < 2*n; i++ {
		require.NoError(t, g.AddEdge(i, i-n, ""))
	}

	return g
}

// requireConsistent checks every observable invariant of g over the keys in universe:
// symmetric HasEdge/EdgeData, counts matching the pairwise view, and Validate() == nil.
func requireConsistent[K comparable, V, E any](t *testing.T, g *core.Graph[K, V, E], universe []K) {
	t.Helper()

	require.NoError(t, g.Validate())

	present := 0
	for _, k := range universe {
		if g.HasVertex(k) {
			present++
		}
	}
	require.Equal(t, present, g.VertexCount(), "vertex count vs HasVertex")

	pairs := 0
	for i, u := range universe {
		for j := i + 1; j < len(universe); j++ {
			v := universe[j]
			require.Equal(t, g.HasEdge(u, v), g.HasEdge(v, u), "HasEdge symmetry for %v,%v", u, v)
			du, okU := g.EdgeData(u, v)
			dv, okV := g.EdgeData(v, u)
			require.Equal(t, okU, okV, "EdgeData presence symmetry for %v,%v", u, v)
			require.Equal(t, du, dv, "EdgeData payload symmetry for %v,%v", u, v)
			if g.HasEdge(u, v) {
				pairs++
			}
		}
	}
	require.Equal(t, pairs, g.EdgeCount(), "edge count vs distinct pairs")
	require.Len(t, g.EdgeList(true), g.EdgeCount())
	require.Len(t, g.EdgeList(false), g.EdgeCount())
}
