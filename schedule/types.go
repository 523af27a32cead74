package schedule

import "errors"

// Sentinel errors for schedule construction. Do not wrap with fmt.Errorf
// where a sentinel suffices.
var (
	// ErrEmptySlots indicates a zero-length slot_starts table.
	ErrEmptySlots = errors.New("schedule: slot_starts is empty")

	// ErrSlotsNotAscending indicates slot_starts is not strictly ascending.
	ErrSlotsNotAscending = errors.New("schedule: slot_starts is not strictly ascending")

	// ErrOpeningsLengthMismatch indicates an openings row's length does not
	// match len(slot_starts).
	ErrOpeningsLengthMismatch = errors.New("schedule: openings length does not match slot_starts")

	// ErrCheckpointOutOfRange indicates a checkpoint index outside [0, N).
	ErrCheckpointOutOfRange = errors.New("schedule: checkpoint index out of range")
)

// NotFound is a sentinel minute value for "no open slot". FindNextOpenTime
// and FindNextOpenFinishTime do not return it; they report a missing open
// slot as (0, false).
const NotFound = -1.0

// Schedule holds the event's discrete opening-slot table: slot start
// times, per-checkpoint openings, and Finish openings.
//
// SlotStarts must be strictly ascending; the event guarantees consecutive
// entries differ by 30 or 60 minutes, which the half-hour rounding rule in
// ArrivalToSlotIndex is tuned to, but Schedule itself does not enforce the
// granularity — only strict ascent.
type Schedule struct {
	// SlotStarts are minute-of-day opening instants, strictly ascending.
	SlotStarts []int

	// Open[i][s] reports whether intermediate checkpoint i accepts
	// visitors during slot s. len(Open) == N, len(Open[i]) == len(SlotStarts).
	Open [][]bool

	// FinishOpen[s] reports whether Finish accepts arrivals during slot s.
	// len(FinishOpen) == len(SlotStarts).
	FinishOpen []bool
}

// New validates and returns a Schedule over slotStarts, open, and
// finishOpen. It performs no copying; callers must not mutate the slices
// afterward.
//
// Complexity: O(S + N*S).
func New(slotStarts []int, open [][]bool, finishOpen []bool) (*Schedule, error) {
	if len(slotStarts) == 0 {
		return nil, ErrEmptySlots
	}
	for s := 1; s < len(slotStarts); s++ {
		if slotStarts[s] <= slotStarts[s-1] {
			return nil, ErrSlotsNotAscending
		}
	}
	if len(finishOpen) != len(slotStarts) {
		return nil, ErrOpeningsLengthMismatch
	}
	for i := range open {
		if len(open[i]) != len(slotStarts) {
			return nil, ErrOpeningsLengthMismatch
		}
	}

	return &Schedule{SlotStarts: slotStarts, Open: open, FinishOpen: finishOpen}, nil
}

// NumSlots returns S, the number of scheduled slots.
func (s *Schedule) NumSlots() int {
	return len(s.SlotStarts)
}
