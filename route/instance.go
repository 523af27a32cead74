package route

import (
	"math"

	"github.com/trailmark/waypoint/schedule"
	"github.com/trailmark/waypoint/travelmatrix"
)

// Instance bundles the static geometry of a solve: checkpoint names, the
// slot schedule, the ALL×ALL travel-time matrix, and the operating
// configuration. Index space: intermediates occupy [0, N), Start is index
// N, Finish is index N+1; Instance.start and Instance.finish cache those.
type Instance struct {
	// Names holds the N intermediate checkpoint names, in index order.
	// "Start" and "Finish" never appear here.
	Names []string

	Schedule *schedule.Schedule
	Travel   *travelmatrix.Matrix
	Config   Config

	n             int
	start, finish int
	excludedMask  uint32
}

// NewInstance validates names, schedule, travel, and cfg together and
// returns a ready-to-solve Instance.
//
// Malformed-input detection is centralized here: unknown excluded names,
// a travel matrix of the wrong size, an inverted window, negative dwell,
// too many or zero checkpoints, and the "at least Start->i and i->Finish
// must be finite" trivial-feasibility invariant from the data model.
//
// Complexity: O(N) for exclusion/name checks, O(N) for the
// reachability invariant scan.
func NewInstance(names []string, sched *schedule.Schedule, travel *travelmatrix.Matrix, cfg Config) (*Instance, error) {
	n := len(names)
	if n == 0 {
		return nil, ErrNoCheckpoints
	}
	if n > MaxCheckpoints {
		return nil, ErrTooManyCheckpoints
	}
	if cfg.EndMinute < cfg.StartMinute {
		return nil, ErrInvalidWindow
	}
	if cfg.DwellMinutes < 0 {
		return nil, ErrNegativeDwell
	}

	all := n + 2
	if travel == nil || travel.N() != all {
		return nil, ErrTravelMatrixSize
	}

	start, finish := n, n+1

	var excludedMask uint32
	if len(cfg.Excluded) > 0 {
		index := make(map[string]int, n)
		for i, name := range names {
			index[name] = i
		}
		for name := range cfg.Excluded {
			i, ok := index[name]
			if !ok {
				return nil, ErrUnknownExcluded
			}
			excludedMask |= 1 << uint(i)
		}
	}

	for i := 0; i < n; i++ {
		toStart, err := travel.At(start, i)
		if err != nil {
			return nil, err
		}
		fromFinish, err := travel.At(i, finish)
		if err != nil {
			return nil, err
		}
		if math.IsInf(toStart, 1) || math.IsInf(fromFinish, 1) {
			return nil, ErrStartFinishUnreachable
		}
	}

	return &Instance{
		Names:        names,
		Schedule:     sched,
		Travel:       travel,
		Config:       cfg,
		n:            n,
		start:        start,
		finish:       finish,
		excludedMask: excludedMask,
	}, nil
}

// N returns the number of intermediate checkpoints.
func (inst *Instance) N() int { return inst.n }

// Start returns the reserved Start index, N.
func (inst *Instance) Start() int { return inst.start }

// Finish returns the reserved Finish index, N+1.
func (inst *Instance) Finish() int { return inst.finish }

// Excluded reports whether intermediate j is excluded from routing.
func (inst *Instance) Excluded(j int) bool {
	return inst.excludedMask&(1<<uint(j)) != 0
}

// withSpeedTravel returns a shallow copy of the instance with
// Config.SpeedKmh replaced and Travel set to the given matrix, which the
// caller has already projected at that speed. Used by the min-speed
// bisection, which must not mutate the caller's instance between probes.
func (inst *Instance) withSpeedTravel(travel *travelmatrix.Matrix, speedKmh float64) *Instance {
	cp := *inst
	cp.Travel = travel
	cp.Config.SpeedKmh = speedKmh
	return &cp
}
