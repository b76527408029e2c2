// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_matching.go - implementation of Matching(n, offset).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); offset ≥ n (else ErrInvalidOffset).
//   - Adds ids(0..n-1) first, then ids(offset..offset+n-1).
//   - Emits {ids(i+offset), ids(i)} for i asc, so each edge is a perfect
//     matching pair between the two ranges.
//
// With IntIDs, Matching(5, 5) gives vertices 0..9 and edges
// (5,0) (6,1) (7,2) (8,3) (9,4).
//
// Complexity: O(n).

package builder

import "go.uber.org/zap"

// Matching builds n disjoint edges pairing index i with index i+offset.
func (b *Builder[K, V, E]) Matching(n, offset int) error {
	if err := validateMin(MethodMatching, "n", n, MinMatchingPairs); err != nil {
		return err
	}
	if err := validateOffset(MethodMatching, n, offset); err != nil {
		return err
	}

	low, err := b.addRange(MethodMatching, 0, n)
	if err != nil {
		return err
	}
	high, err := b.addRange(MethodMatching, offset, n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err = b.connect(MethodMatching, high[i], low[i]); err != nil {
			return err
		}
	}

	b.done(MethodMatching, zap.Int("n", n), zap.Int("offset", offset))
	return nil
}
