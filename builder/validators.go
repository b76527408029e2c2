// SPDX-License-Identifier: MIT

// Package builder provides validation helpers to enforce parameter contracts
// in the topology methods.
//
// Each helper returns "<Method>: <detail>: <sentinel>" so callers can branch
// with errors.Is and still read which constructor failed.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures got ≥ min, else wraps ErrTooFewVertices.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validatePartition checks that both sides of a bipartition are non-empty.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
			method, MinPartition, n1, n2, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateOffset requires the second index range [offset, offset+n) to start
// after the first one [0, n).
func validateOffset(method string, n, offset int) error {
	if offset < n {
		return fmt.Errorf("%s: offset=%d < n=%d: %w", method, offset, n, ErrInvalidOffset)
	}

	return nil
}
