// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/core"
)

func newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Match two index ranges, then remove one vertex twice",
		Long: `Adds vertices 0..n-1, connects i+n to i for every i (creating n..2n-1),
prints the graph, removes --remove, prints, removes it again and prints.
The second removal is a no-op, so the last two listings are identical.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd)
		},
	}
}

func runScenario(cmd *cobra.Command) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	n, victim := rt.cfg.Vertices, rt.cfg.Remove
	g := core.NewOrdered[int, struct{}, struct{}](rt.graphOptions()...)
	b, err := builder.New(g, builder.IntIDs, builder.WithLogger(rt.logger.Named("builder")))
	if err != nil {
		return err
	}
	if err = b.Matching(n, n); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err = printGraph(out, g); err != nil {
		return err
	}
	for attempt := 1; attempt <= 2; attempt++ {
		_, removed := g.RemoveVertex(victim)
		rt.logger.Info("remove vertex",
			zap.Int("vertex", victim), zap.Int("attempt", attempt), zap.Bool("removed", removed))
		if err = printGraph(out, g); err != nil {
			return err
		}
	}

	return g.Validate()
}
