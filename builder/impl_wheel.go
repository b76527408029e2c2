// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_wheel.go - implementation of Wheel(n).
//
// Canonical definition:
//   • W_n = C_{n-1} + hub: a rim cycle over ids(1..n-1) and the hub ids(0).
//   • n ≥ 4, since the rim must be a valid cycle (n-1 ≥ 3).
//
// Emission order: rim edges first (as Cycle), then spokes in rim index order.
//
// Complexity: O(n) vertices + 2(n-1) edges.

package builder

import "go.uber.org/zap"

// Wheel builds the wheel graph W_n.
func (b *Builder[K, V, E]) Wheel(n int) error {
	if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
		return err
	}

	keys, err := b.addRange(MethodWheel, 0, n)
	if err != nil {
		return err
	}
	if err = b.ring(MethodWheel, keys[1:]); err != nil {
		return err
	}
	if err = b.spokes(MethodWheel, keys[0], keys[1:]); err != nil {
		return err
	}

	b.done(MethodWheel, zap.Int("n", n))
	return nil
}
