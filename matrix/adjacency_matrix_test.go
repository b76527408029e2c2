// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/core"
	"github.com/katalvlaran/undigraph/matrix"
)

func triangle(t *testing.T) *core.Graph[string, int, string] {
	t.Helper()

	g := core.New[string, int, string]()
	require.NoError(t, g.AddEdge("A", "B", "ab"))
	require.NoError(t, g.AddEdge("B", "C", "bc"))
	require.NoError(t, g.AddEdge("C", "A", "ca"))
	require.NoError(t, g.AddVertex("D", 4))

	return g
}

func TestAdjacencyMatrix_Snapshot(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(triangle(t))
	require.NoError(t, err)
	require.NoError(t, am.Validate())

	assert.Equal(t, []string{"A", "B", "C", "D"}, am.Keys)
	assert.Equal(t, 4, am.VertexCount())
	assert.Equal(t, 3, am.EdgeCount())
	assert.Equal(t, "0 1 1 0\n1 0 1 0\n1 1 0 0\n0 0 0 0\n", am.String())

	ok, err := am.HasEdge("C", "B")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = am.HasEdge("A", "D")
	require.NoError(t, err)
	assert.False(t, ok)

	nbrs, err := am.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbrs)
	nbrs, err = am.Neighbors("D")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	d, err := am.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestAdjacencyMatrix_UnknownVertex(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(triangle(t))
	require.NoError(t, err)

	_, err = am.HasEdge("A", "Z")
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
	_, err = am.Neighbors("Z")
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
	_, err = am.Degree("Z")
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
}

func TestAdjacencyMatrix_NilInputs(t *testing.T) {
	_, err := matrix.NewAdjacencyMatrix[int, int, int](nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	_, err = matrix.ToGraph[int, int, int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdjacencyMatrix_Validate(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(am *matrix.AdjacencyMatrix[string])
		want    error
	}{
		{"asymmetric", func(am *matrix.AdjacencyMatrix[string]) { am.Data[0][3] = 1 }, matrix.ErrAsymmetry},
		{"self loop", func(am *matrix.AdjacencyMatrix[string]) { am.Data[2][2] = 1 }, matrix.ErrNonZeroDiagonal},
		{"weighted cell", func(am *matrix.AdjacencyMatrix[string]) { am.Data[0][1], am.Data[1][0] = 2, 2 }, matrix.ErrNonBinaryCell},
		{"negative cell", func(am *matrix.AdjacencyMatrix[string]) { am.Data[0][1], am.Data[1][0] = -1, -1 }, matrix.ErrNonBinaryCell},
		{"short row", func(am *matrix.AdjacencyMatrix[string]) { am.Data[1] = am.Data[1][:2] }, matrix.ErrBadShape},
		{"missing row", func(am *matrix.AdjacencyMatrix[string]) { am.Data = am.Data[:3] }, matrix.ErrBadShape},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			am, err := matrix.NewAdjacencyMatrix(triangle(t))
			require.NoError(t, err)
			tc.corrupt(am)

			require.ErrorIs(t, am.Validate(), tc.want)
			_, err = matrix.ToGraph[string, int, string](am)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestToGraph_RoundTrip(t *testing.T) {
	src := core.NewOrdered[int, string, string]()
	b, err := builder.New(src, builder.IntIDs, builder.WithSeed(7))
	require.NoError(t, err)
	require.NoError(t, b.RandomSparse(12, 0.4))

	am, err := matrix.NewAdjacencyMatrix(src)
	require.NoError(t, err)
	for _, k := range am.Keys {
		d, err := am.Degree(k)
		require.NoError(t, err)
		assert.Equal(t, src.Degree(k), d, "row sum equals degree of %d", k)
	}

	dst, err := matrix.ToGraph[int, string, string](am, core.WithInvariantChecks())
	require.NoError(t, err)
	assert.Equal(t, src.Vertices(), dst.Vertices())
	assert.Equal(t, src.EdgeCount(), dst.EdgeCount())
	for _, p := range src.EdgeList(true) {
		assert.True(t, dst.HasEdge(p.U, p.V), "%v", p)
	}
}

func TestAdjacencyMatrix_CountsAgreeWithRebuild(t *testing.T) {
	for _, cell := range []int{2, -1} {
		am := &matrix.AdjacencyMatrix[string]{
			Keys:  []string{"a", "b"},
			Index: map[string]int{"a": 0, "b": 1},
			Data:  [][]int{{0, cell}, {cell, 0}},
		}

		assert.Equal(t, 1, am.EdgeCount(), "cell %d", cell)
		d, err := am.Degree("a")
		require.NoError(t, err)
		assert.Equal(t, 1, d, "cell %d", cell)

		require.ErrorIs(t, am.Validate(), matrix.ErrNonBinaryCell)
		_, err = matrix.ToGraph[string, int, int](am)
		require.ErrorIs(t, err, matrix.ErrNonBinaryCell)

		am.Data[0][1], am.Data[1][0] = 1, 1
		g, err := matrix.ToGraph[string, int, int](am)
		require.NoError(t, err)
		assert.Equal(t, am.EdgeCount(), g.EdgeCount())
	}
}
