// SPDX-License-Identifier: MIT

// Package builder provides internal helpers shared by the topology methods.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: every failure carries the calling method name.
package builder

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/undigraph/core"
)

// ensureVertex adds key unless it already exists. An existing vertex keeps
// its payload.
func (b *Builder[K, V, E]) ensureVertex(method string, key K) error {
	var payload V
	if b.vertex != nil {
		payload = b.vertex(key)
	}
	if err := b.g.AddVertex(key, payload); err != nil && !errors.Is(err, core.ErrVertexExists) {
		return fmt.Errorf("%s: AddVertex(%v): %w", method, key, err)
	}

	return nil
}

// addRange ensures vertices ids(from)..ids(from+n-1) in index order and
// returns their keys.
// Complexity: O(n).
func (b *Builder[K, V, E]) addRange(method string, from, n int) ([]K, error) {
	keys := make([]K, n)
	for i := 0; i < n; i++ {
		keys[i] = b.ids(from + i)
		if err := b.ensureVertex(method, keys[i]); err != nil {
			return nil, err
		}
	}

	return keys, nil
}

// connect adds the edge {u,v} with the configured edge payload.
func (b *Builder[K, V, E]) connect(method string, u, v K) error {
	var payload E
	if b.edge != nil {
		payload = b.edge(u, v)
	}
	if err := b.g.AddEdge(u, v, payload); err != nil {
		return fmt.Errorf("%s: AddEdge(%v,%v): %w", method, u, v, err)
	}

	return nil
}

// connectAll adds every unordered pair of keys, i<j in slice order.
// Complexity: O(n²).
func (b *Builder[K, V, E]) connectAll(method string, keys []K) error {
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if err := b.connect(method, keys[i], keys[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
