package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/trailmark/waypoint/internal/config"
	"github.com/trailmark/waypoint/internal/instance"
	"github.com/trailmark/waypoint/route"
)

func newMinSpeedCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "min-speed INSTANCE.json",
		Short: "Find the minimum walking speed that visits every non-excluded checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMinSpeed(cmd, args[0], flags, logger)
		},
	}
	flags.register(cmd, cfg)
	return cmd
}

func runMinSpeed(cmd *cobra.Command, path string, flags solveFlags, logger zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	loaded, err := instance.Decode(f)
	if err != nil {
		return err
	}
	doc := flags.overlay(cmd, loaded.Doc)
	loaded, err = instance.Build(doc)
	if err != nil {
		return err
	}

	logger.Info().
		Int("checkpoints", loaded.Instance.N()).
		Float64("lower_bound_kmh", route.MinSpeedLowerBoundKmh).
		Float64("upper_bound_kmh", route.MinSpeedUpperBoundKmh).
		Msg("min-speed: starting bisection")

	res, err := route.MinSpeed(loaded.Instance.Names, loaded.Instance.Schedule, loaded.Dist, loaded.Instance.Config)
	if err != nil {
		return err
	}

	logger.Info().
		Float64("speed_kmh", res.SpeedKmh).
		Int("visited", res.Count).
		Msg("min-speed: converged")

	fmt.Fprintf(cmd.OutOrStdout(), "minimum speed: %.2f km/h (visits %d checkpoint(s), finish at %.1f)\n",
		res.SpeedKmh, res.Count, res.FinishMinute)
	return nil
}
