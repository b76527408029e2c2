// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Implementations attach method context with %w, e.g.
//     "Path: n=1 < min=2: builder: parameter too small".

package builder

import "github.com/pkg/errors"

// ErrNilGraph indicates New received a nil target graph.
var ErrNilGraph = errors.New("builder: nil graph")

// ErrNilIDFn indicates New received a nil ID scheme.
var ErrNilIDFn = errors.New("builder: nil id function")

// ErrTooFewVertices indicates that a size parameter (n, n1, n2, rows, cols)
// is smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidOffset indicates a Matching offset that would overlap the first
// index range.
var ErrInvalidOffset = errors.New("builder: offset overlaps index range")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was run without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates Build received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
