// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/undigraph/core"
	"github.com/katalvlaran/undigraph/internal/config"
	"github.com/katalvlaran/undigraph/internal/logging"
)

// session is what every subcommand needs after flag parsing.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "undigraph-demo",
		Short:         "Exercise the undirected graph",
		Long:          `Runs the matched-halves scenario by default; see "topology" for the builder shapes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newScenarioCmd(),
		newTopologyCmd(),
	)

	return root
}

// setup resolves config (file, env, flags), validates it and builds the logger.
func setup(cmd *cobra.Command) (*session, error) {
	fs := cmd.Flags()
	path, envFile := config.Sources(fs)

	cfg, err := config.Load(path, envFile)
	if err != nil {
		return nil, err
	}
	if err = cfg.ApplyFlags(fs); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &session{cfg: cfg, logger: logger}, nil
}

// graphOptions maps config onto core graph options.
func (rt *session) graphOptions() []core.GraphOption {
	opts := []core.GraphOption{core.WithLogger(rt.logger.Named("graph"))}
	if rt.cfg.InvariantChecks {
		opts = append(opts, core.WithInvariantChecks())
	}

	return opts
}
