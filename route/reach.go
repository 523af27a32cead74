package route

import "math"

// canReachFinish is the reachability oracle (C2): a pure pruning
// predicate deciding whether departing atNode at departTime can still
// reach Finish, through an open Finish slot, by EndMinute.
//
// It never mutates instance state and performs no allocation.
//
// Complexity: O(S) (one schedule scan for the Finish slot).
func (inst *Instance) canReachFinish(departTime float64, atNode int) bool {
	travelToFinish, err := inst.Travel.At(atNode, inst.finish)
	if err != nil {
		return false
	}
	if math.IsInf(travelToFinish, 1) {
		return false
	}

	finishArrival := departTime + travelToFinish
	if finishArrival > inst.Config.EndMinute {
		return false
	}

	waitUntil, ok := inst.Schedule.FindNextOpenFinishTime(finishArrival)
	if !ok {
		return false
	}

	return waitUntil <= inst.Config.EndMinute
}
