// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side is ids(0..n1-1), right side ids(n1..n1+n2-1).
//   - Emits {left_i, right_j} for i asc, then j asc.
//
// Complexity: O(n1+n2) vertices + O(n1*n2) edges.

package builder

import "go.uber.org/zap"

// CompleteBipartite builds K_{n1,n2}.
func (b *Builder[K, V, E]) CompleteBipartite(n1, n2 int) error {
	if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
		return err
	}

	left, err := b.addRange(MethodCompleteBipartite, 0, n1)
	if err != nil {
		return err
	}
	right, err := b.addRange(MethodCompleteBipartite, n1, n2)
	if err != nil {
		return err
	}
	for _, u := range left {
		for _, v := range right {
			if err = b.connect(MethodCompleteBipartite, u, v); err != nil {
				return err
			}
		}
	}

	b.done(MethodCompleteBipartite, zap.Int("n1", n1), zap.Int("n2", n2))
	return nil
}
