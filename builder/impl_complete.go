// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   - Emits {i, j} for i<j in lexicographic index order.
//
// Complexity: O(n²) edges.

package builder

import "go.uber.org/zap"

// Complete builds the complete graph K_n.
func (b *Builder[K, V, E]) Complete(n int) error {
	if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
		return err
	}

	keys, err := b.addRange(MethodComplete, 0, n)
	if err != nil {
		return err
	}
	if err = b.connectAll(MethodComplete, keys); err != nil {
		return err
	}

	b.done(MethodComplete, zap.Int("n", n))
	return nil
}
