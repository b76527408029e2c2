// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model: Erdős–Rényi G(n,p); each unordered pair {i,j}, i<j, is included
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and runs without one.
//
// Determinism: trials run for i asc, j asc (j>i), so a fixed seed
// reproduces the same edge set.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"go.uber.org/zap"
)

// RandomSparse samples G(n,p) over ids(0..n-1).
func (b *Builder[K, V, E]) RandomSparse(n int, p float64) error {
	if err := validateMin(MethodRandomSparse, "n", n, MinSparseNodes); err != nil {
		return err
	}
	if err := validateProbability(MethodRandomSparse, p); err != nil {
		return err
	}
	rng := b.cfg.rng
	if rng == nil && p > MinProbability && p < MaxProbability {
		return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
	}

	keys, err := b.addRange(MethodRandomSparse, 0, n)
	if err != nil {
		return err
	}
	added := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var hit bool
			if rng == nil {
				hit = p == MaxProbability
			} else {
				// Float64 is in [0,1): p=0 never hits, p=1 always does.
				hit = rng.Float64() < p
			}
			if !hit {
				continue
			}
			if err = b.connect(MethodRandomSparse, keys[i], keys[j]); err != nil {
				return err
			}
			added++
		}
	}

	b.done(MethodRandomSparse, zap.Int("n", n), zap.Float64("p", p), zap.Int("edges", added))
	return nil
}
