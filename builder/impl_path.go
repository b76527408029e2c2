// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds ids(0..n-1) in ascending index order.
//   - Emits edges {i-1, i} for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(n) space for the key slice.

package builder

import "go.uber.org/zap"

// Path builds the simple path P_n.
func (b *Builder[K, V, E]) Path(n int) error {
	if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
		return err
	}

	keys, err := b.addRange(MethodPath, 0, n)
	if err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err = b.connect(MethodPath, keys[i-1], keys[i]); err != nil {
			return err
		}
	}

	b.done(MethodPath, zap.Int("n", n))
	return nil
}
