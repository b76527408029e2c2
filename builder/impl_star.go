// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is ids(0); leaves are ids(1..n-1).
//   - Emits spokes {hub, leaf} in increasing leaf index.
//
// Complexity: O(n).

package builder

import "go.uber.org/zap"

// Star builds the star S_{n-1}: one hub joined to n-1 leaves.
func (b *Builder[K, V, E]) Star(n int) error {
	if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
		return err
	}

	keys, err := b.addRange(MethodStar, 0, n)
	if err != nil {
		return err
	}
	if err = b.spokes(MethodStar, keys[0], keys[1:]); err != nil {
		return err
	}

	b.done(MethodStar, zap.Int("n", n))
	return nil
}

func (b *Builder[K, V, E]) spokes(method string, hub K, leaves []K) error {
	for _, leaf := range leaves {
		if err := b.connect(method, hub, leaf); err != nil {
			return err
		}
	}

	return nil
}
