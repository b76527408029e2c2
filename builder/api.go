// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// api.go - Builder type, constructor and the Build orchestrator.
//
// Design contract:
//   • One Builder per target graph; it never creates graphs itself.
//   • Topology methods are declared in impl_*.go, one per file.
//   • Determinism: same inputs/options/seed and call order ⇒ identical graphs.
//   • Safety: never panic at runtime; return wrapped sentinels.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/undigraph/core"
)

// Builder emits topologies into a core.Graph, naming vertices through an IDFn.
//
// A Builder is not safe for concurrent use; the underlying graph is.
type Builder[K comparable, V, E any] struct {
	g      *core.Graph[K, V, E]
	ids    IDFn[K]
	cfg    builderConfig
	vertex func(K) V      // nil ⇒ zero payload
	edge   func(u, v K) E // nil ⇒ zero payload
}

// Constructor is one step run by Build. Topology methods can be adapted with
// a closure, e.g. func(b *Builder[int, V, E]) error { return b.Path(4) }.
type Constructor[K comparable, V, E any] func(b *Builder[K, V, E]) error

// New binds a builder to g with the vertex naming scheme ids.
func New[K comparable, V, E any](g *core.Graph[K, V, E], ids IDFn[K], opts ...Option) (*Builder[K, V, E], error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	if ids == nil {
		return nil, fmt.Errorf("New: %w", ErrNilIDFn)
	}

	return &Builder[K, V, E]{g: g, ids: ids, cfg: newBuilderConfig(opts...)}, nil
}

// WithVertexPayload sets the payload used for vertices the builder creates.
// Vertices that already exist keep their payload. Nil restores zero payloads.
func (b *Builder[K, V, E]) WithVertexPayload(fn func(K) V) *Builder[K, V, E] {
	b.vertex = fn
	return b
}

// WithEdgePayload sets the payload for edges the builder adds, called with
// the endpoints in emission order. Nil restores zero payloads.
func (b *Builder[K, V, E]) WithEdgePayload(fn func(u, v K) E) *Builder[K, V, E] {
	b.edge = fn
	return b
}

// Graph returns the target graph.
func (b *Builder[K, V, E]) Graph() *core.Graph[K, V, E] {
	return b.g
}

// Build runs cons in order and stops at the first error, wrapped as
// "Build: %w". Vertices and edges added before the failure stay in the graph.
//
// Complexity: Σ cost of each constructor.
func (b *Builder[K, V, E]) Build(cons ...Constructor[K, V, E]) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		if err := fn(b); err != nil {
			return fmt.Errorf("%s: %w", MethodBuild, err)
		}
	}

	return nil
}

// done logs a finished topology.
func (b *Builder[K, V, E]) done(method string, fields ...zap.Field) {
	b.cfg.logger.Debug("topology built", append([]zap.Field{zap.String("method", method)}, fields...)...)
}
