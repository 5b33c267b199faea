package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seating-ca/internal/sims/seating"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <layout>",
		Short: "Print the layout after every round under one rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			kinds, err := cfg.RuleKinds()
			if err != nil {
				return err
			}
			if len(kinds) != 1 {
				return fmt.Errorf("show needs a single rule, got %q", cfg.Rule)
			}
			g, err := loadGrid(logger, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			a := seating.New(g, cfg.RuleFor(kinds[0]), seating.WithLogger(logger))
			fmt.Fprintf(w, "Round 0 (%s):\n%s\n", a.Rule(), a.Grid())
			for round := 1; a.State() == seating.Running; round++ {
				if cfg.MaxRounds > 0 && round > cfg.MaxRounds {
					logger.Warn("layout did not stabilize", "rule", a.Rule().String(), "rounds", cfg.MaxRounds)
					break
				}
				if a.Round() {
					fmt.Fprintf(w, "\nStable after %d rounds, %d occupied seats\n", a.Rounds(), a.Grid().Occupied())
					break
				}
				fmt.Fprintf(w, "\nRound %d:\n%s\n", round, a.Grid())
			}
			return nil
		},
	}
}
