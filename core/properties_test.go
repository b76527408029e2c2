// SPDX-License-Identifier: MIT
// Package core_test checks structural properties under randomized operation sequences.
//
// Purpose:
//   - Drive a graph through seeded random mutations and compare it against a
//     naive reference model after every step.
//   - Cover symmetry, count consistency, idempotent removal, cascade deletion,
//     self-loop rejection, auto-vertex creation and first-write-wins payloads.

package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/undigraph/core"
)

// refModel is a deliberately naive reference: a set of vertices and a map of canonical pairs.
type refModel struct {
	vertices map[int]int
	edges    map[[2]int]int
}

func newRefModel() *refModel {
	return &refModel{vertices: map[int]int{}, edges: map[[2]int]int{}}
}

func canon(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

func (m *refModel) degree(u int) int {
	d := 0
	for k := range m.edges {
		if k[0] == u || k[1] == u {
			d++
		}
	}
	return d
}

// TestProperties_RandomOperations VERIFIES the graph tracks the reference model step by step.
func TestProperties_RandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		rng := rand.New(rand.NewSource(seed))
		g := core.NewOrdered[int, int, int](core.WithInvariantChecks())
		ref := newRefModel()

		universe := make([]int, NRandomKeys)
		for i := range universe {
			universe[i] = i
		}

		for step := 0; step < NRandomOps; step++ {
			u, v := rng.Intn(NRandomKeys), rng.Intn(NRandomKeys)
			payload := rng.Int()

			switch rng.Intn(4) {
			case 0:
				err := g.AddVertex(u, payload)
				if _, exists := ref.vertices[u]; exists {
					require.ErrorIs(t, err, core.ErrVertexExists)
				} else {
					require.NoError(t, err)
					ref.vertices[u] = payload
				}
			case 1:
				err := g.AddEdge(u, v, payload)
				if u == v {
					require.ErrorIs(t, err, core.ErrSelfLoop)
					break
				}
				require.NoError(t, err)
				for _, k := range []int{u, v} {
					if _, ok := ref.vertices[k]; !ok {
						ref.vertices[k] = 0
					}
				}
				if _, ok := ref.edges[canon(u, v)]; !ok {
					ref.edges[canon(u, v)] = payload
				}
			case 2:
				got, ok := g.RemoveEdge(u, v)
				want, exists := ref.edges[canon(u, v)]
				require.Equal(t, exists, ok)
				if exists {
					require.Equal(t, want, got)
					delete(ref.edges, canon(u, v))
				}
				_, again := g.RemoveEdge(u, v)
				require.False(t, again, "second RemoveEdge must be a no-op")
			case 3:
				got, ok := g.RemoveVertex(u)
				want, exists := ref.vertices[u]
				require.Equal(t, exists, ok)
				if exists {
					require.Equal(t, want, got)
					delete(ref.vertices, u)
					for k := range ref.edges {
						if k[0] == u || k[1] == u {
							delete(ref.edges, k)
						}
					}
				}
				before := g.EdgeCount()
				_, again := g.RemoveVertex(u)
				require.False(t, again, "second RemoveVertex must be a no-op")
				require.Equal(t, before, g.EdgeCount())
			}

			require.Equal(t, len(ref.vertices), g.VertexCount(), "seed %d step %d", seed, step)
			require.Equal(t, len(ref.edges), g.EdgeCount(), "seed %d step %d", seed, step)
			for k, want := range ref.edges {
				got, ok := g.EdgeData(k[0], k[1])
				require.True(t, ok)
				require.Equal(t, want, got)
			}
			require.Equal(t, ref.degree(u), g.Degree(u))
		}

		requireConsistent(t, g, universe)
		for k, want := range ref.vertices {
			got, ok := g.VertexData(k)
			require.True(t, ok)
			require.Equal(t, want, got)
		}
	}
}

// TestProperties_EdgeListAgreesWithHasEdge VERIFIES each listed pair is an edge and u < v when ordered.
func TestProperties_EdgeListAgreesWithHasEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := core.NewOrdered[int, struct{}, struct{}]()
	for i := 0; i < 200; i++ {
		u, v := rng.Intn(30), rng.Intn(30)
		if u != v {
			require.NoError(t, g.AddEdge(u, v, struct{}{}))
		}
	}

	seen := map[[2]int]bool{}
	for _, p := range g.EdgeList(true) {
		require.Less(t, p.U, p.V)
		require.True(t, g.HasEdge(p.U, p.V))
		require.False(t, seen[canon(p.U, p.V)], "duplicate %v", p)
		seen[canon(p.U, p.V)] = true
	}
	require.Len(t, seen, g.EdgeCount())

	seen = map[[2]int]bool{}
	for _, p := range g.EdgeList(false) {
		require.True(t, g.HasEdge(p.U, p.V))
		require.False(t, seen[canon(p.U, p.V)], "duplicate %v", p)
		seen[canon(p.U, p.V)] = true
	}
	require.Len(t, seen, g.EdgeCount())

	sum := 0
	for _, v := range g.Vertices() {
		sum += g.Degree(v)
		require.Len(t, g.Neighbors(v), g.Degree(v))
	}
	require.Equal(t, 2*g.EdgeCount(), sum, "handshake lemma")
}
