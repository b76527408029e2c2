// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, entry types, GraphOption, sentinel errors and constructors.
// Concurrency:
//   - mu guards vertices, nextSeq and entries.
//   - cfg and compare are immutable after construction.

package core

import (
	"cmp"
	"sync"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexExists indicates AddVertex was called for a key already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrSelfLoop indicates an edge operation with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrInvalidKey indicates a key that is not equal to itself (a NaN float
	// or an interface holding one); such a key could never be found again.
	ErrInvalidKey = errors.New("core: key is not equal to itself")

	// ErrInvariantViolation indicates the internal structure lost consistency.
	ErrInvariantViolation = errors.New("core: invariant violated")
)

// Pair is an edge reported by its two endpoints.
type Pair[K comparable] struct {
	U, V K
}

// Edge is an edge together with its payload.
type Edge[K comparable, E any] struct {
	U, V    K
	Payload E
}

// VertexEntry is a vertex key with its payload.
type VertexEntry[K comparable, V any] struct {
	Key     K
	Payload V
}

// NeighborEntry is one adjacency entry: the neighbor and the shared edge payload.
type NeighborEntry[K comparable, E any] struct {
	Vertex  K
	Payload E
}

// GraphStats is a read-only snapshot returned by Stats.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	MaxDegree     int
	IsolatedCount int // vertices with degree 0
}

// vertexRecord keeps everything owned by one vertex.
// seq is the insertion sequence number used as fallback key order.
type vertexRecord[K comparable, V, E any] struct {
	seq       uint64
	payload   V
	neighbors *orderedmap.OrderedMap[K, E]
}

type graphConfig struct {
	checks bool
	logger *zap.Logger
}

// GraphOption configures a Graph at construction time.
type GraphOption func(cfg *graphConfig)

// WithInvariantChecks re-validates every invariant after each mutation and
// panics with a wrapped ErrInvariantViolation on failure. Intended for tests
// and debugging; it costs O(V+E) per mutation.
func WithInvariantChecks() GraphOption {
	return func(cfg *graphConfig) { cfg.checks = true }
}

// WithLogger sets the logger used for debug-level mutation tracing.
// A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) GraphOption {
	return func(cfg *graphConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// Graph is an undirected graph with keys K, vertex payloads V and edge payloads E.
//
// vertices maps key → record in insertion order; entries counts directed
// adjacency entries (two per undirected edge).
type Graph[K comparable, V, E any] struct {
	mu sync.RWMutex

	cfg     graphConfig
	compare func(a, b K) int // nil ⇒ order by vertexRecord.seq

	nextSeq  uint64
	vertices *orderedmap.OrderedMap[K, *vertexRecord[K, V, E]]
	entries  int
}

// New creates an empty Graph whose canonical key order is the vertex
// insertion sequence. Use it for key types without a natural order.
// Complexity: O(len(opts)).
func New[K comparable, V, E any](opts ...GraphOption) *Graph[K, V, E] {
	return newGraph[K, V, E](nil, opts)
}

// NewOrdered creates an empty Graph ordered by the natural order of K.
func NewOrdered[K cmp.Ordered, V, E any](opts ...GraphOption) *Graph[K, V, E] {
	return newGraph[K, V, E](cmp.Compare[K], opts)
}

// NewWithOrder creates an empty Graph ordered by compare, which must return a
// negative, zero or positive value like cmp.Compare and be a strict total
// order consistent with ==. A nil compare falls back to insertion sequence.
func NewWithOrder[K comparable, V, E any](compare func(a, b K) int, opts ...GraphOption) *Graph[K, V, E] {
	return newGraph[K, V, E](compare, opts)
}

func newGraph[K comparable, V, E any](compare func(a, b K) int, opts []GraphOption) *Graph[K, V, E] {
	cfg := graphConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K, V, E]{
		cfg:      cfg,
		compare:  compare,
		vertices: orderedmap.New[K, *vertexRecord[K, V, E]](),
	}
}

// insertVertex registers a fresh record for key. Caller holds the write
// lock and has checked that key is absent.
func (g *Graph[K, V, E]) insertVertex(key K, payload V) *vertexRecord[K, V, E] {
	rec := &vertexRecord[K, V, E]{
		seq:       g.nextSeq,
		payload:   payload,
		neighbors: orderedmap.New[K, E](),
	}
	g.nextSeq++
	g.vertices.Set(key, rec)

	return rec
}

// lessLocked reports whether u precedes v in the graph's key order.
// Both vertices must exist; caller holds at least the read lock.
func (g *Graph[K, V, E]) lessLocked(u, v K) bool {
	if g.compare != nil {
		return g.compare(u, v) < 0
	}
	ru, _ := g.vertices.Get(u)
	rv, _ := g.vertices.Get(v)

	return ru.seq < rv.seq
}

// afterMutation runs the debug invariant checks when enabled.
func (g *Graph[K, V, E]) afterMutation(op string) {
	if !g.cfg.checks {
		return
	}
	if err := g.validateLocked(); err != nil {
		g.cfg.logger.Error("graph invariant violated", zap.String("op", op), zap.Error(err))
		panic(errors.Wrapf(err, "after %s", op))
	}
}
