// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     topology methods themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// Payload hooks are not options: they depend on the graph's payload types and
// are set with Builder.WithVertexPayload / Builder.WithEdgePayload.

package builder

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a Builder before any topology is emitted.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used to report finished topologies at debug level.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
