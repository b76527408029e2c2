// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/core"
	"github.com/katalvlaran/undigraph/matrix"
)

type demoBuilder = builder.Builder[int, struct{}, struct{}]

// topologyOptions holds the topology subcommand flags.
type topologyOptions struct {
	p      float64
	seed   int64
	matrix bool
}

// topologies maps a kind name to a builder call sized by n.
var topologies = map[string]func(b *demoBuilder, n int, opt topologyOptions) error{
	"path":      func(b *demoBuilder, n int, _ topologyOptions) error { return b.Path(n) },
	"cycle":     func(b *demoBuilder, n int, _ topologyOptions) error { return b.Cycle(n) },
	"star":      func(b *demoBuilder, n int, _ topologyOptions) error { return b.Star(n) },
	"wheel":     func(b *demoBuilder, n int, _ topologyOptions) error { return b.Wheel(n) },
	"complete":  func(b *demoBuilder, n int, _ topologyOptions) error { return b.Complete(n) },
	"bipartite": func(b *demoBuilder, n int, _ topologyOptions) error { return b.CompleteBipartite(n, n) },
	"grid":      func(b *demoBuilder, n int, _ topologyOptions) error { return b.Grid(n, n) },
	"matching":  func(b *demoBuilder, n int, _ topologyOptions) error { return b.Matching(n, n) },
	"sparse":    func(b *demoBuilder, n int, opt topologyOptions) error { return b.RandomSparse(n, opt.p) },
}

func topologyKinds() []string {
	kinds := make([]string, 0, len(topologies))
	for k := range topologies {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	return kinds
}

func newTopologyCmd() *cobra.Command {
	var opt topologyOptions

	cmd := &cobra.Command{
		Use:   "topology <kind> <n>",
		Short: "Build one topology and print it",
		Long:  "Kinds: " + strings.Join(topologyKinds(), ", ") + ".\nGrid and bipartite use n for both dimensions.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := topologies[args[0]]
			if !ok {
				return fmt.Errorf("unknown topology %q (want one of %s)", args[0], strings.Join(topologyKinds(), ", "))
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[1], err)
			}

			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			g := core.NewOrdered[int, struct{}, struct{}](rt.graphOptions()...)
			b, err := builder.New(g, builder.IntIDs,
				builder.WithSeed(opt.seed), builder.WithLogger(rt.logger.Named("builder")))
			if err != nil {
				return err
			}
			if err = build(b, n, opt); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err = printGraph(out, g); err != nil {
				return err
			}
			s := g.Stats()
			_, err = fmt.Fprintf(out, "stats: vertices=%d edges=%d max_degree=%d isolated=%d\n",
				s.VertexCount, s.EdgeCount, s.MaxDegree, s.IsolatedCount)
			if err != nil || !opt.matrix {
				return err
			}

			am, err := matrix.NewAdjacencyMatrix(g)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, am)

			return err
		},
	}
	cmd.Flags().Float64Var(&opt.p, "p", 0.3, "edge probability for sparse")
	cmd.Flags().Int64Var(&opt.seed, "seed", 1, "RNG seed for sparse")
	cmd.Flags().BoolVar(&opt.matrix, "matrix", false, "also print the adjacency matrix")

	return cmd
}
