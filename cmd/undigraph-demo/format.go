// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/undigraph/core"
)

// formatVertices renders keys as "V: {a, b, c}".
func formatVertices[K comparable](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}

	return "V: {" + strings.Join(parts, ", ") + "}"
}

// formatEdges renders pairs as "E: {(a,b), (c,d)}".
func formatEdges[K comparable](pairs []core.Pair[K]) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("(%v,%v)", p.U, p.V)
	}

	return "E: {" + strings.Join(parts, ", ") + "}"
}

// printGraph writes the vertex line and the ordered edge line.
func printGraph[K comparable, V, E any](w io.Writer, g *core.Graph[K, V, E]) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", formatVertices(g.Vertices()), formatEdges(g.EdgeList(true)))
	return err
}
