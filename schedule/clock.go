package schedule

// ArrivalToSlotIndex maps a continuous minute-of-day arrival time to a
// slot index.
//
// Rule: an arrival before the first scheduled slot is too early (-1).
// Otherwise the arrival is floored to a whole minute, split into hour h
// and minute-of-hour m, and rounded down to the slot boundary for that
// hour: :00 through :30 inclusive maps to :00, and anything past :30 maps
// to :30. This is a strict `m > 30`, not `m >= 30`: an arrival at exactly
// :30 maps to the :00 slot, and only :31 onward maps to the :30 slot.
//
// An arrival past the last scheduled slot clamps forward to S-1 rather
// than reporting "too late" — the event window can still be open even
// though no further slots remain. A slot_time that falls in a scheduled
// gap (no slot starts exactly there) reports -1.
//
// Complexity: O(S) worst case (linear scan for the exact slot boundary).
func (s *Schedule) ArrivalToSlotIndex(t float64) int {
	n := len(s.SlotStarts)
	if t < float64(s.SlotStarts[0]) {
		return -1
	}

	whole := int(t)
	h, m := whole/60, whole%60
	slotTime := 60 * h
	if m > 30 {
		slotTime += 30
	}

	if slotTime > s.SlotStarts[n-1] {
		return n - 1
	}
	for idx, st := range s.SlotStarts {
		if st == slotTime {
			return idx
		}
	}

	return -1
}

// FindNextOpenTime returns the earliest instant at or after t when
// checkpoint cp is open, or (0, false) if no later slot is open.
//
// The search starts at max(ArrivalToSlotIndex(t), 0): an arrival before
// the first slot still waits for slot 0 rather than failing outright.
//
// Complexity: O(S).
func (s *Schedule) FindNextOpenTime(cp int, t float64) (float64, bool) {
	if cp < 0 || cp >= len(s.Open) {
		return 0, false
	}

	return s.findNextOpen(s.Open[cp], t)
}

// FindNextOpenFinishTime is FindNextOpenTime specialized to the Finish
// opening table, used by the reachability oracle and the route-card
// replay.
//
// Complexity: O(S).
func (s *Schedule) FindNextOpenFinishTime(t float64) (float64, bool) {
	return s.findNextOpen(s.FinishOpen, t)
}

// findNextOpen scans slots from max(ArrivalToSlotIndex(t), 0) forward for
// the first slot marked open in openAt, returning max(t, slot start).
func (s *Schedule) findNextOpen(openAt []bool, t float64) (float64, bool) {
	start := s.ArrivalToSlotIndex(t)
	if start < 0 {
		start = 0
	}

	for idx := start; idx < len(s.SlotStarts); idx++ {
		if openAt[idx] {
			opened := float64(s.SlotStarts[idx])
			if t > opened {
				return t, true
			}
			return opened, true
		}
	}

	return 0, false
}
