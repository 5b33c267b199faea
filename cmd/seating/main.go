// Command seating runs the waiting-area seating automaton on a layout file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"seating-ca/internal/input"
	"seating-ca/internal/sims/seating"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
	rule       string
	maxRounds  int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "seating",
		Short:         "Simulate seat occupancy in a waiting area until it stabilizes",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every round")
	flags.StringVar(&opts.rule, "rule", "", "neighbor rule: adjacent, visible or both")
	flags.IntVar(&opts.maxRounds, "max-rounds", 0, "stop after this many rounds (0 = no limit)")

	root.AddCommand(newSolveCmd(opts))
	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newSweepCmd(opts))
	return root
}

// resolve merges the config file, defaults and explicitly set flags.
func (o *rootOptions) resolve(cmd *cobra.Command) (seating.Config, error) {
	cfg := seating.DefaultConfig()
	if o.configPath != "" {
		loaded, err := seating.LoadConfig(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("rule") {
		cfg.Rule = o.rule
	}
	if flags.Changed("max-rounds") {
		cfg.MaxRounds = o.maxRounds
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// loadGrid reads the layout file named by the single positional argument.
func loadGrid(logger *slog.Logger, path string) (*seating.Grid, error) {
	lines, err := input.Lines(path)
	if err != nil {
		return nil, err
	}
	g := seating.Parse(lines)
	size := g.Size()
	logger.Info("layout loaded", "path", path, "width", size.W, "height", size.H, "seats", g.Seats())
	return g, nil
}
