// Package undigraph is an in-memory undirected graph with payloads on
// vertices and edges.
//
// What is undigraph?
//
//	A small, thread-safe, generic graph ADT:
//		• Core primitives: add, look up and remove vertices and edges
//		• Enumeration: vertices, neighbors and edge lists in insertion order
//		• Safety: no self-loops, no parallel edges, cascade deletion
//		• Debug mode: structural self-checks after every mutation
//		• Builders: path, cycle, star, wheel, complete, bipartite, grid,
//		  matching and random sparse topologies
//
// Packages:
//
//	core/                 Graph[K, V, E], the ADT and its invariants
//	builder/              deterministic topology constructors over core
//	matrix/               adjacency-matrix snapshot and rebuild
//	internal/config/      demo driver settings (YAML, env, .env, flags)
//	internal/logging/     zap logger construction
//	cmd/undigraph-demo/   cobra CLI running the matched-halves scenario
//
// Quick ASCII example:
//
//	0───5
//	1───6
//	2───7
//
// is what builder.Matching(3, 5) produces with integer IDs.
//
//	go get github.com/katalvlaran/undigraph
package undigraph
