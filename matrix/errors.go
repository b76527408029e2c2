// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "github.com/pkg/errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into NewAdjacencyMatrix.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil matrix was passed to ToGraph.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownVertex indicates that a referenced key is not a row of the matrix.
	ErrUnknownVertex = errors.New("matrix: unknown vertex")

	// ErrAsymmetry signals Data[i][j] != Data[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-loop entry on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNonBinaryCell signals a cell other than 0 or 1.
	ErrNonBinaryCell = errors.New("matrix: cell is not 0 or 1")

	// ErrBadShape signals that Data is not Len(Keys)×Len(Keys).
	ErrBadShape = errors.New("matrix: invalid shape")
)
