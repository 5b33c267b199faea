package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seating-ca/internal/sims/seating"
)

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var (
		from, to int
		workers  int
	)
	cmd := &cobra.Command{
		Use:   "sweep <layout>",
		Short: "Stabilize the layout for a range of thresholds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from < 1 || to > 8 || from > to {
				return fmt.Errorf("threshold range [%d, %d] must lie within [1, 8]", from, to)
			}
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
			g, err := loadGrid(logger, args[0])
			if err != nil {
				return err
			}

			var thresholds []int
			for t := from; t <= to; t++ {
				thresholds = append(thresholds, t)
			}
			results := seating.Sweep(g, kinds, thresholds, cfg.MaxRounds, workers)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RULE\tTHRESHOLD\tOCCUPIED\tROUNDS\tSTATE")
			for _, res := range results {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", res.Rule.Kind, res.Rule.Threshold, res.Occupied, res.Rounds, res.State)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "lowest threshold")
	cmd.Flags().IntVar(&to, "to", 8, "highest threshold")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel simulations")
	return cmd
}
