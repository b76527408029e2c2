// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/undigraph/core"
)

// BenchmarkAddEdge measures inserting fresh edges on a growing star.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewOrdered[int, struct{}, struct{}]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(-1, i, struct{}{})
	}
}

// BenchmarkAddEdge_Checked measures the debug-mode overhead on a small graph.
func BenchmarkAddEdge_Checked(b *testing.B) {
	g := core.NewOrdered[int, struct{}, struct{}](core.WithInvariantChecks())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i%64, 64+i%64, struct{}{})
	}
}

// BenchmarkHasEdge measures symmetric lookups.
func BenchmarkHasEdge(b *testing.B) {
	g := core.NewOrdered[int, struct{}, struct{}]()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge(i, i+1, struct{}{})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(i%1000+1, i%1000)
	}
}

// BenchmarkRemoveVertex measures cascade deletion of a hub with 100 spokes.
func BenchmarkRemoveVertex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewOrdered[int, struct{}, struct{}]()
		for j := 1; j <= 100; j++ {
			_ = g.AddEdge(0, j, struct{}{})
		}
		b.StartTimer()
		g.RemoveVertex(0)
	}
}

// BenchmarkEdgeList measures canonical enumeration of a 1000-edge path.
func BenchmarkEdgeList(b *testing.B) {
	g := core.NewOrdered[int, struct{}, struct{}]()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge(i, i+1, struct{}{})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.EdgeList(true)
	}
}
