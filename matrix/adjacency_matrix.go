// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/undigraph/core"
)

// AdjacencyMatrix holds a fixed-size, 2D snapshot of a graph's edges.
//
// Algorithm (construction):
//  1. Keys = g.Vertices(); Index maps key → row/column.
//  2. Allocate Data as an N×N zero-filled slice.
//  3. For every edge {u,v}: Data[i][j] = Data[j][i] = 1.
//
// Use it for O(1) edge checks on dense graphs or to print small graphs.
type AdjacencyMatrix[K comparable] struct {
	// Keys lists vertices in row order.
	Keys []K
	// Index maps key → row/column index in Data.
	Index map[K]int
	// Data[i][j] is 1 when {Keys[i], Keys[j]} is an edge.
	Data [][]int
}

// NewAdjacencyMatrix snapshots g.
//
// Time Complexity: O(V² + E)
// Memory: O(V²)
func NewAdjacencyMatrix[K comparable, V, E any](g *core.Graph[K, V, E]) (*AdjacencyMatrix[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	keys := g.Vertices()
	n := len(keys)
	idx := make(map[K]int, n)
	for i, k := range keys {
		idx[k] = i
	}

	data := make([][]int, n)
	for i := range data {
		data[i] = make([]int, n)
	}
	for _, e := range g.EdgeList(false) {
		i, okU := idx[e.U]
		j, okV := idx[e.V]
		if !okU || !okV {
			// vertex removed between the two snapshots
			continue
		}
		data[i][j], data[j][i] = 1, 1
	}

	return &AdjacencyMatrix[K]{Keys: keys, Index: idx, Data: data}, nil
}

// VertexCount returns the number of rows.
func (m *AdjacencyMatrix[K]) VertexCount() int {
	return len(m.Keys)
}

// EdgeCount counts the non-zero entries above the diagonal.
//
// Time Complexity: O(V²)
func (m *AdjacencyMatrix[K]) EdgeCount() int {
	count := 0
	for i := range m.Data {
		for j := i + 1; j < len(m.Data[i]); j++ {
			if m.Data[i][j] != 0 {
				count++
			}
		}
	}

	return count
}

// HasEdge reports whether {u,v} is set. Unknown keys return ErrUnknownVertex.
//
// Time Complexity: O(1)
func (m *AdjacencyMatrix[K]) HasEdge(u, v K) (bool, error) {
	i, j, err := m.checkVertices(u, v)
	if err != nil {
		return false, err
	}

	return m.Data[i][j] != 0, nil
}

// Neighbors returns the keys adjacent to id in row order.
//
// Time Complexity: O(V)
func (m *AdjacencyMatrix[K]) Neighbors(id K) ([]K, error) {
	i, ok := m.Index[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVertex, "Neighbors(%v)", id)
	}
	out := make([]K, 0)
	for j, cell := range m.Data[i] {
		if cell != 0 {
			out = append(out, m.Keys[j])
		}
	}

	return out, nil
}

// Degree counts the non-zero cells in id's row (the row sum of a valid matrix).
func (m *AdjacencyMatrix[K]) Degree(id K) (int, error) {
	i, ok := m.Index[id]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownVertex, "Degree(%v)", id)
	}
	sum := 0
	for _, cell := range m.Data[i] {
		if cell != 0 {
			sum++
		}
	}

	return sum, nil
}

// Validate checks the shape, that every cell is 0 or 1, the zero diagonal
// and symmetry.
//
// Time Complexity: O(V²)
func (m *AdjacencyMatrix[K]) Validate() error {
	n := len(m.Keys)
	if len(m.Data) != n || len(m.Index) != n {
		return errors.Wrapf(ErrBadShape, "%d keys, %d index entries, %d rows", n, len(m.Index), len(m.Data))
	}
	for i, row := range m.Data {
		if len(row) != n {
			return errors.Wrapf(ErrBadShape, "row %d has %d columns, want %d", i, len(row), n)
		}
		for j, cell := range row {
			if cell != 0 && cell != 1 {
				return errors.Wrapf(ErrNonBinaryCell, "(%v,%v)=%d", m.Keys[i], m.Keys[j], cell)
			}
		}
		if row[i] != 0 {
			return errors.Wrapf(ErrNonZeroDiagonal, "at %v", m.Keys[i])
		}
		for j := i + 1; j < n; j++ {
			if row[j] != m.Data[j][i] {
				return errors.Wrapf(ErrAsymmetry, "(%v,%v)", m.Keys[i], m.Keys[j])
			}
		}
	}

	return nil
}

// String renders one row per line, cells separated by spaces.
func (m *AdjacencyMatrix[K]) String() string {
	var sb strings.Builder
	for _, row := range m.Data {
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(cell))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ToGraph rebuilds a graph from m: vertices in row order, one edge per
// non-zero upper-triangle cell, zero payloads. m must pass Validate.
//
// Time Complexity: O(V²)
func ToGraph[K comparable, V, E any](m *AdjacencyMatrix[K], opts ...core.GraphOption) (*core.Graph[K, V, E], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var (
		vzero V
		ezero E
	)
	g := core.New[K, V, E](opts...)
	for _, k := range m.Keys {
		if err := g.AddVertex(k, vzero); err != nil {
			return nil, errors.Wrap(err, "ToGraph")
		}
	}
	for i, row := range m.Data {
		for j := i + 1; j < len(row); j++ {
			if row[j] == 0 {
				continue
			}
			if err := g.AddEdge(m.Keys[i], m.Keys[j], ezero); err != nil {
				return nil, errors.Wrap(err, "ToGraph")
			}
		}
	}

	return g, nil
}

// checkVertices returns the indices for u and v, or ErrUnknownVertex.
func (m *AdjacencyMatrix[K]) checkVertices(u, v K) (i, j int, err error) {
	var ok bool
	if i, ok = m.Index[u]; !ok {
		return 0, 0, errors.Wrapf(ErrUnknownVertex, "%v", u)
	}
	if j, ok = m.Index[v]; !ok {
		return 0, 0, errors.Wrapf(ErrUnknownVertex, "%v", v)
	}

	return i, j, nil
}
