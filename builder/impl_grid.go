// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is ids(r*cols + c), added in row-major order.
//   - 4-neighborhood: for each cell in row-major order emit the right
//     neighbor (r,c+1), then the lower neighbor (r+1,c).
//
// Complexity: O(R*C) vertices + (R*(C-1) + (R-1)*C) edges.

package builder

import "go.uber.org/zap"

// Grid builds a rows×cols lattice.
func (b *Builder[K, V, E]) Grid(rows, cols int) error {
	if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
		return err
	}
	if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
		return err
	}

	keys, err := b.addRange(MethodGrid, 0, rows*cols)
	if err != nil {
		return err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := keys[r*cols+c]
			if c+1 < cols {
				if err = b.connect(MethodGrid, cell, keys[r*cols+c+1]); err != nil {
					return err
				}
			}
			if r+1 < rows {
				if err = b.connect(MethodGrid, cell, keys[(r+1)*cols+c]); err != nil {
					return err
				}
			}
		}
	}

	b.done(MethodGrid, zap.Int("rows", rows), zap.Int("cols", cols))
	return nil
}
