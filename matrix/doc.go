// SPDX-License-Identifier: MIT

// Package matrix provides a dense adjacency-matrix view of a core.Graph.
//
// Rows and columns follow the graph's vertex insertion order. Data[i][j] is 1
// when {Keys[i], Keys[j]} is an edge and 0 otherwise, so the matrix of a valid
// graph is symmetric with a zero diagonal and row sums equal to degrees.
//
// The view is a snapshot: later graph mutations are not reflected. Payloads
// are not carried; ToGraph rebuilds structure only, with zero payloads.
//
// Complexity: building the view costs O(V² + E) time and O(V²) memory.
package matrix
