package route

import (
	"github.com/trailmark/waypoint/schedule"
	"github.com/trailmark/waypoint/travelmatrix"
)

// Default bisection bracket and precision for MinSpeed, per the event's
// operating range: a hiker slower than 3.0 km/h or faster than 20.0 km/h
// is outside anything the schedule was built for.
const (
	MinSpeedLowerBoundKmh = 3.0
	MinSpeedUpperBoundKmh = 20.0
	SpeedPrecisionKmh     = 0.01
)

// MinSpeed bisects walking speed over [MinSpeedLowerBoundKmh,
// MinSpeedUpperBoundKmh] to precision SpeedPrecisionKmh, searching for the
// minimum speed at which every non-excluded checkpoint is visitable.
//
// At each midpoint the travel-time matrix is rebuilt from dist and the
// full DP (Solve) is rerun; the midpoint is accepted (hi <- mid) iff the
// solver visits all non-excluded checkpoints, else rejected (lo <- mid).
// Because visiting-all is monotone in speed (a faster hiker can only
// reach more, never fewer, checkpoints within the same window), bisection
// converges to a well-defined threshold.
//
// Returns ErrCannotVisitAll if even MinSpeedUpperBoundKmh cannot visit
// every non-excluded checkpoint.
//
// Complexity: O(log((hi-lo)/precision)) solver calls, each O(2^N * N^2).
func MinSpeed(names []string, sched *schedule.Schedule, dist travelmatrix.DistanceTable, cfg Config) (MinSpeedResult, error) {
	target := len(names) - len(cfg.Excluded)

	project := func(speedKmh float64) (*travelmatrix.Matrix, error) {
		return travelmatrix.Project(dist, speedKmh, cfg.NaismithCoeff)
	}

	hiTravel, err := project(MinSpeedUpperBoundKmh)
	if err != nil {
		return MinSpeedResult{}, err
	}
	hiCfg := cfg
	hiCfg.SpeedKmh = MinSpeedUpperBoundKmh
	probe, err := NewInstance(names, sched, hiTravel, hiCfg)
	if err != nil {
		return MinSpeedResult{}, err
	}

	// Finite-edge reachability (ErrStartFinishUnreachable) depends only on
	// which km entries are +Inf, not on speed: scaling a finite distance
	// by any positive speed keeps it finite. So the bracket's top probe
	// validates the instance once; every other speed reuses that instance
	// shape via withSpeedTravel instead of re-validating from scratch.
	solveAt := func(speedKmh float64, travel *travelmatrix.Matrix) Result {
		return probe.withSpeedTravel(travel, speedKmh).Solve()
	}

	hiResult := solveAt(MinSpeedUpperBoundKmh, hiTravel)
	if hiResult.Count < target {
		return MinSpeedResult{}, ErrCannotVisitAll
	}

	lo, hi := MinSpeedLowerBoundKmh, MinSpeedUpperBoundKmh
	best := hiResult
	for hi-lo > SpeedPrecisionKmh {
		mid := (lo + hi) / 2
		midTravel, err := project(mid)
		if err != nil {
			return MinSpeedResult{}, err
		}
		res := solveAt(mid, midTravel)
		if res.Count >= target {
			hi = mid
			best = res
		} else {
			lo = mid
		}
	}

	return MinSpeedResult{Result: best, SpeedKmh: hi}, nil
}
