// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path edges {i-1, i}, then the closing edge {n-1, 0}.
//
// Complexity: O(n).

package builder

import "go.uber.org/zap"

// Cycle builds the simple cycle C_n.
func (b *Builder[K, V, E]) Cycle(n int) error {
	if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
		return err
	}

	keys, err := b.addRange(MethodCycle, 0, n)
	if err != nil {
		return err
	}
	if err = b.ring(MethodCycle, keys); err != nil {
		return err
	}

	b.done(MethodCycle, zap.Int("n", n))
	return nil
}

// ring connects keys in order and closes the loop back to keys[0].
func (b *Builder[K, V, E]) ring(method string, keys []K) error {
	for i := 1; i < len(keys); i++ {
		if err := b.connect(method, keys[i-1], keys[i]); err != nil {
			return err
		}
	}

	return b.connect(method, keys[len(keys)-1], keys[0])
}
