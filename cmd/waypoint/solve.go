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

func newSolveCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve INSTANCE.json",
		Short: "Find the checkpoint route visiting the most checkpoints within the operating window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], cfg, flags, logger)
		},
	}
	flags.register(cmd, cfg)
	return cmd
}

// solveFlags lets an invocation override any config-layer default for
// this one solve, per spec's "flag beats env beats file beats default"
// precedence.
type solveFlags struct {
	speedKmh      float64
	naismithCoeff float64
	dwellMinutes  float64
	startMinute   float64
	endMinute     float64
}

func (f *solveFlags) register(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().Float64Var(&f.speedKmh, "speed-kmh", cfg.SpeedKmh, "walking speed in km/h")
	cmd.Flags().Float64Var(&f.naismithCoeff, "naismith-coeff", cfg.NaismithCoeff, "metres of ascent per minute-equivalent")
	cmd.Flags().Float64Var(&f.dwellMinutes, "dwell-minutes", cfg.DwellMinutes, "minutes spent at each checkpoint")
	cmd.Flags().Float64Var(&f.startMinute, "start-minute", cfg.StartMinute, "operating window start, minutes since midnight")
	cmd.Flags().Float64Var(&f.endMinute, "end-minute", cfg.EndMinute, "operating window end, minutes since midnight")
}

func runSolve(cmd *cobra.Command, path string, cfg *config.Config, flags solveFlags, logger zerolog.Logger) error {
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
	inst := loaded.Instance

	logger.Info().
		Int("checkpoints", inst.N()).
		Float64("speed_kmh", inst.Config.SpeedKmh).
		Msg("solve: starting")

	res := inst.Solve()

	logger.Info().
		Int("visited", res.Count).
		Float64("finish_minute", res.FinishMinute).
		Msg("solve: finished")

	legs, err := route.BuildRouteCard(inst, loaded.Dist, res.Route)
	if err != nil {
		return err
	}
	printRouteCard(cmd, res, legs)
	return nil
}

// overlay applies only the flags the user actually set, leaving the
// document's own values in place otherwise. The config.Load values serve
// only as the flags' defaults, so an unset flag never replaces a document
// value with a config-file or environment value.
func (f solveFlags) overlay(cmd *cobra.Command, doc instance.Document) instance.Document {
	if cmd.Flags().Changed("speed-kmh") {
		doc.SpeedKmh = f.speedKmh
	}
	if cmd.Flags().Changed("naismith-coeff") {
		doc.NaismithCoeff = f.naismithCoeff
	}
	if cmd.Flags().Changed("dwell-minutes") {
		doc.DwellMinutes = f.dwellMinutes
	}
	if cmd.Flags().Changed("start-minute") {
		doc.StartMinute = f.startMinute
	}
	if cmd.Flags().Changed("end-minute") {
		doc.EndMinute = f.endMinute
	}
	return doc
}

func printRouteCard(cmd *cobra.Command, res route.Result, legs []route.Leg) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "visited %d checkpoint(s), finish at %.1f\n", res.Count, res.FinishMinute)
	for _, leg := range legs {
		fmt.Fprintf(out, "  %2d. %-10s -> %-10s  travel=%.1fm  arrive=%s  depart=%s  slot=%s  open=%v  wait=%.1fm\n",
			leg.Leg, leg.From, leg.To, leg.TravelMin, leg.Arrival, leg.Depart, leg.TimeSlot, leg.IsOpen, leg.WaitMin)
	}
}
