// Package app wires the registered solvers and the shortcut sweep into the
// command line interface.
package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reflector/internal/core"
	"reflector/internal/logging"
	"reflector/internal/sweep"
)

// App holds state shared by every command.
type App struct {
	cfg    *Config
	logger *zap.Logger

	// NewLogger builds the logger before a command runs.
	NewLogger func(verbose bool) (*zap.Logger, error)
}

// New returns an App that logs through the production logger.
func New() *App {
	return &App{cfg: NewConfig(), NewLogger: logging.New}
}

// Command builds the root command with one subcommand per registered solver.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "reflector",
		Short:         "Tilting platform and lens library puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.NewLogger(a.cfg.Verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	a.cfg.Bind(root.PersistentFlags())

	for _, name := range core.Names() {
		root.AddCommand(a.solveCommand(core.Solvers()[name](nil)))
	}
	root.AddCommand(a.sweepCommand())
	return root
}

func (a *App) solveCommand(s core.Solver) *cobra.Command {
	return &cobra.Command{
		Use:   s.Name(),
		Short: s.Summary(),
		Long:  s.Summary() + ".\n\nThe puzzle input is read from standard input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			answer, err := s.Solve(cmd.InOrStdin(), a.logger.With(zap.String("solver", s.Name())))
			if err != nil {
				return err
			}
			a.logger.Debug("solved", zap.String("solver", s.Name()), zap.Duration("elapsed", time.Since(start)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}
}

func (a *App) sweepCommand() *cobra.Command {
	cfg := NewSweepConfig()
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Check the spin-cycle shortcut against full runs on random platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sweeping %d platforms of %dx%d (%d workers, %d cycles)\n",
				cfg.Seeds, cfg.Rows, cfg.Cols, cfg.Workers, cfg.Cycles)

			start := time.Now()
			outcomes, err := sweep.Run(cmd.Context(), cfg.Params)
			if err != nil {
				return err
			}
			bad := sweep.Mismatches(outcomes)
			for _, o := range bad {
				a.logger.Warn("shortcut diverged from full run",
					zap.Int64("seed", o.Seed),
					zap.Int("cycle_start", o.CycleStart),
					zap.Int("period", o.Period))
			}

			longest := 0
			for _, o := range outcomes {
				if o.Period > longest {
					longest = o.Period
				}
			}
			fmt.Fprintf(out, "Checked %d platforms in %s: %d mismatches, longest period %d\n",
				len(outcomes), time.Since(start).Round(time.Millisecond), len(bad), longest)
			if len(bad) > 0 {
				return fmt.Errorf("sweep: %d of %d seeds diverged", len(bad), len(outcomes))
			}
			return nil
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}
