package route

import (
	"fmt"

	"github.com/trailmark/waypoint/travelmatrix"
)

// Leg is one hop of a route-card replay: the per-leg arrival, wait, and
// depart timing the host surfaces to a hiker.
type Leg struct {
	// Leg is the 1-based sequence number.
	Leg int

	// From and To are node names ("Start", "Finish", or a checkpoint name).
	From, To string

	// DistanceKM and HeightGainM are the raw readings for this leg.
	DistanceKM, HeightGainM float64

	// TravelMin is d/speed*60 + h/naismith, recomputed from the
	// DistanceTable and the instance's current Config rather than read
	// back from the travel-time matrix, so that a Naismith/speed change
	// between solve and replay is visible in the card.
	TravelMin float64

	// Arrival and Depart are "H:MM" clock labels.
	Arrival, Depart string

	// TimeSlot is the "H:MM" label of the resolved slot, or "--" if the
	// arrival fell in a scheduled gap.
	TimeSlot string

	// IsOpen is the slot state at arrival, or after waiting if a wait
	// was needed. False only in the degenerate case where no later open
	// slot exists at all — a diagnostic condition that should not arise
	// from a route the solver itself produced.
	IsOpen bool

	// WaitMin is the time spent waiting for an open slot, >= 0.
	WaitMin float64

	// CumulativeMin is Depart - start_minute.
	CumulativeMin float64
}

// formatClock renders a minute-of-day value as an "H:MM" label.
func formatClock(t float64) string {
	whole := int(t)
	return fmt.Sprintf("%d:%02d", whole/60, whole%60)
}

// BuildRouteCard replays a solved route leg by leg and produces one Leg
// per hop: Start -> r1 -> ... -> rk -> Finish.
//
// Replay must be self-consistent with the DP: for a route returned by
// Solve with the same Instance, the last intermediate leg's Depart equals
// the DP's stored departure time, and the Finish leg's Arrival equals the
// DP-selected actual Finish arrival (see TestBuildRouteCard_MatchesSolverFinish
// in the test suite).
//
// Complexity: O(len(route) * S).
func BuildRouteCard(inst *Instance, dist travelmatrix.DistanceTable, routeNames []string) ([]Leg, error) {
	index := make(map[string]int, len(inst.Names))
	for i, name := range inst.Names {
		index[name] = i
	}

	nodes := make([]int, 0, len(routeNames)+2)
	names := make([]string, 0, len(routeNames)+2)
	nodes = append(nodes, inst.start)
	names = append(names, "Start")
	for _, rn := range routeNames {
		idx, ok := index[rn]
		if !ok {
			return nil, ErrUnknownExcluded
		}
		nodes = append(nodes, idx)
		names = append(names, rn)
	}
	nodes = append(nodes, inst.finish)
	names = append(names, "Finish")

	cfg := inst.Config
	legs := make([]Leg, 0, len(nodes)-1)
	prevDepart := cfg.StartMinute

	for i := 1; i < len(nodes); i++ {
		from, to := nodes[i-1], nodes[i]
		isFinishLeg := to == inst.finish

		km := dist.KM[from][to]
		gain := dist.HeightGainM[from][to]
		travel := (km/cfg.SpeedKmh)*60 + gain/cfg.NaismithCoeff

		arrival := prevDepart + travel
		slotIdx := inst.Schedule.ArrivalToSlotIndex(arrival)
		timeSlotLabel := "--"
		if slotIdx >= 0 {
			timeSlotLabel = formatClock(float64(inst.Schedule.SlotStarts[slotIdx]))
		}

		var openNow bool
		if slotIdx >= 0 {
			if isFinishLeg {
				openNow = inst.Schedule.FinishOpen[slotIdx]
			} else {
				openNow = inst.Schedule.Open[to][slotIdx]
			}
		}

		dwell := cfg.DwellMinutes
		if isFinishLeg {
			dwell = 0
		}

		var (
			wait   float64
			depart float64
			isOpen bool
		)
		switch {
		case openNow:
			wait = 0
			depart = arrival + dwell
			isOpen = true
		default:
			var (
				nextOpen float64
				ok       bool
			)
			if isFinishLeg {
				nextOpen, ok = inst.Schedule.FindNextOpenFinishTime(arrival)
			} else {
				nextOpen, ok = inst.Schedule.FindNextOpenTime(to, arrival)
			}
			if ok {
				wait = nextOpen - arrival
				depart = nextOpen + dwell
				isOpen = true
			} else {
				wait = 0
				depart = arrival + dwell
				isOpen = false
			}
		}

		legs = append(legs, Leg{
			Leg:           i,
			From:          names[i-1],
			To:            names[i],
			DistanceKM:    km,
			HeightGainM:   gain,
			TravelMin:     travel,
			Arrival:       formatClock(arrival),
			Depart:        formatClock(depart),
			TimeSlot:      timeSlotLabel,
			IsOpen:        isOpen,
			WaitMin:       wait,
			CumulativeMin: depart - cfg.StartMinute,
		})

		prevDepart = depart
	}

	return legs, nil
}
