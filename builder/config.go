// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for non-generic knobs.
//   • Defaults are deterministic: no RNG (stochastic builders fail fast),
//     no-op logger.

package builder

import (
	"math/rand"

	"go.uber.org/zap"
)

type builderConfig struct {
	rng    *rand.Rand  // nil unless WithSeed/WithRand
	logger *zap.Logger // never nil after newBuilderConfig
}

// newBuilderConfig applies opts over the defaults in order; later options win.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
