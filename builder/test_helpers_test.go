// SPDX-License-Identifier: MIT
// Package builder_test contains shared fixtures for the builder tests.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/core"
)

// Sizes used across builder tests.
const (
	NSmall    = 4
	NScenario = 5
	NSparse   = 30
	SeedA     = 42
)

type intBuilder = builder.Builder[int, string, string]

// newIntBuilder returns a builder over a fresh naturally ordered int graph
// with invariant checks on.
func newIntBuilder(t *testing.T, opts ...builder.Option) (*intBuilder, *core.Graph[int, string, string]) {
	t.Helper()

	g := core.NewOrdered[int, string, string](core.WithInvariantChecks())
	b, err := builder.New(g, builder.IntIDs, opts...)
	require.NoError(t, err)

	return b, g
}

// pairs converts [u,v] literals into core pairs for comparison with EdgeList(true).
func pairs(raw ...[2]int) []core.Pair[int] {
	out := make([]core.Pair[int], len(raw))
	for i, r := range raw {
		out[i] = core.Pair[int]{U: r[0], V: r[1]}
	}

	return out
}
