package route

import (
	"math"
	"math/bits"
)

// parentTag distinguishes the three states a (mask, last) parent link can
// be in. A separate validity flag, rather than a sentinel packed into the
// link itself, keeps "undefined" and "came from Start" unambiguous.
type parentTag uint8

const (
	parentUnset parentTag = iota
	parentFromStart
	parentLink
)

// parentRef is the predecessor of a (mask, last) DP state.
type parentRef struct {
	tag      parentTag
	prevMask uint32
	prevLast int
}

// dpState holds the Held-Karp-style bitmask DP tables for one Solve call.
// It is allocated fresh per call and discarded on return; nothing here
// survives across calls.
type dpState struct {
	inst *Instance
	n    int

	dp     []float64  // dp[mask*n+last]
	parent []parentRef // parent[mask*n+last]

	// masksBySize[p] lists every mask with popcount p that received at
	// least one finite dp entry, deduplicated at insertion time. This is
	// the DP's frontier: only masks that actually matter are enumerated.
	masksBySize [][]int
	enrolled    []bool // enrolled[mask]: already present in its bucket
}

func newDPState(inst *Instance) *dpState {
	n := inst.n
	totalMasks := 1 << uint(n)

	dp := make([]float64, totalMasks*n)
	for i := range dp {
		dp[i] = noDeparture
	}

	return &dpState{
		inst:        inst,
		n:           n,
		dp:          dp,
		parent:      make([]parentRef, totalMasks*n),
		masksBySize: make([][]int, n+1),
		enrolled:    make([]bool, totalMasks),
	}
}

func (s *dpState) get(mask, last int) float64 {
	return s.dp[mask*s.n+last]
}

func (s *dpState) set(mask, last int, value float64, p parentRef) {
	s.dp[mask*s.n+last] = value
	s.parent[mask*s.n+last] = p
}

// enroll records mask in its popcount bucket the first time it receives a
// finite dp entry.
func (s *dpState) enroll(mask int) {
	if s.enrolled[mask] {
		return
	}
	s.enrolled[mask] = true
	p := bits.OnesCount(uint(mask))
	s.masksBySize[p] = append(s.masksBySize[p], mask)
}

// solveMasks runs the bitmask DP (C3) to completion and returns the DP
// state for termination/selection and reconstruction.
//
// Complexity: O(2^N * N^2) time, O(2^N * N) memory.
func (inst *Instance) solveMasks() *dpState {
	s := newDPState(inst)
	cfg := inst.Config
	n := inst.n

	// Initial layer: direct Start -> j legs.
	for j := 0; j < n; j++ {
		if inst.Excluded(j) {
			continue
		}
		travelFromStart, err := inst.Travel.At(inst.start, j)
		if err != nil || math.IsInf(travelFromStart, 1) {
			continue
		}
		arrive := cfg.StartMinute + travelFromStart
		openAt, ok := inst.Schedule.FindNextOpenTime(j, arrive)
		if !ok {
			continue
		}
		depart := openAt + cfg.DwellMinutes
		if depart > cfg.EndMinute {
			continue
		}
		if !inst.canReachFinish(depart, j) {
			continue
		}

		mask := 1 << uint(j)
		s.set(mask, j, depart, parentRef{tag: parentFromStart})
		s.enroll(mask)
	}

	// Transitions: grow visited sets in strictly increasing popcount
	// order. Layer p+1 is only ever read after every layer-p extension
	// has been committed.
	for p := 1; p < n; p++ {
		for _, mask := range s.masksBySize[p] {
			for last := 0; last < n; last++ {
				if mask&(1<<uint(last)) == 0 {
					continue
				}
				departFromLast := s.get(mask, last)
				if departFromLast == noDeparture {
					continue
				}

				for j := 0; j < n; j++ {
					jbit := 1 << uint(j)
					if mask&jbit != 0 || inst.Excluded(j) {
						continue
					}
					travel, err := inst.Travel.At(last, j)
					if err != nil || math.IsInf(travel, 1) {
						continue
					}
					arrive := departFromLast + travel
					if arrive > cfg.EndMinute {
						continue
					}
					openAt, ok := inst.Schedule.FindNextOpenTime(j, arrive)
					if !ok {
						continue
					}
					depart := openAt + cfg.DwellMinutes
					if depart > cfg.EndMinute {
						continue
					}
					if !inst.canReachFinish(depart, j) {
						continue
					}

					newMask := mask | jbit
					if depart < s.get(newMask, j) {
						s.set(newMask, j, depart, parentRef{tag: parentLink, prevMask: mask, prevLast: last})
						s.enroll(newMask)
					}
				}
			}
		}
	}

	return s
}

// bestTerminal scans every (mask, last) with a finite dp entry and
// selects the admissible state lexicographically maximizing popcount,
// then minimizing actual Finish arrival. It returns ok=false if no
// admissible state exists.
//
// Complexity: O(2^N * N).
func (s *dpState) bestTerminal() (mask, last int, actualFinish float64, ok bool) {
	bestPopcount := -1
	bestFinish := math.Inf(1)

	for p := 1; p <= s.n; p++ {
		for _, m := range s.masksBySize[p] {
			for l := 0; l < s.n; l++ {
				if m&(1<<uint(l)) == 0 {
					continue
				}
				depart := s.get(m, l)
				if depart == noDeparture {
					continue
				}

				travel, err := s.inst.Travel.At(l, s.inst.finish)
				if err != nil || math.IsInf(travel, 1) {
					continue
				}
				finishArrival := depart + travel
				if finishArrival > s.inst.Config.EndMinute {
					continue
				}
				waitUntil, found := s.inst.Schedule.FindNextOpenFinishTime(finishArrival)
				if !found || waitUntil > s.inst.Config.EndMinute {
					continue
				}

				if p > bestPopcount || (p == bestPopcount && waitUntil < bestFinish) {
					bestPopcount, bestFinish = p, waitUntil
					mask, last, actualFinish, ok = m, l, waitUntil, true
				}
			}
		}
	}

	return mask, last, actualFinish, ok
}

// reconstruct walks parent links from (mask, last) back to the from-Start
// sentinel, returning the visited checkpoint indices in visiting order.
//
// Complexity: O(N).
func (s *dpState) reconstruct(mask, last int) []int {
	path := make([]int, 0, s.n)
	for {
		path = append(path, last)
		p := s.parent[mask*s.n+last]
		if p.tag == parentFromStart {
			break
		}
		mask, last = int(p.prevMask), p.prevLast
	}

	// Reverse in place: path was accumulated from last visited to first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Solve runs the bitmask DP to completion and returns the best
// admissible route: the one visiting the most checkpoints, ties broken
// by earliest Finish arrival. A Result with Count == 0 means no
// admissible route exists; this is not an error.
//
// Complexity: O(2^N * N^2) time, O(2^N * N) memory, freed on return.
func (inst *Instance) Solve() Result {
	s := inst.solveMasks()
	mask, last, finish, ok := s.bestTerminal()
	if !ok {
		return Result{}
	}

	indices := s.reconstruct(mask, last)
	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = inst.Names[idx]
	}

	return Result{Count: len(names), Route: names, FinishMinute: finish}
}
