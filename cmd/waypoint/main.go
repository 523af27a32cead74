// Command waypoint solves time-windowed checkpoint routes from an
// instance document: the best-ordered set of checkpoints reachable
// within a day's operating window, or the minimum walking speed that
// makes visiting every checkpoint possible.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/trailmark/waypoint/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "waypoint",
		Short:         "Solve time-windowed hiking checkpoint routes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	cfg, err := config.Load()
	if err != nil {
		cobra.CheckErr(fmt.Errorf("load config: %w", err))
	}

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			parsed = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(parsed)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root.AddCommand(newSolveCmd(cfg, logger))
	root.AddCommand(newMinSpeedCmd(cfg, logger))
	return root
}
