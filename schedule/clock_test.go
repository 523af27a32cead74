package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailmark/waypoint/schedule"
)

func mustSchedule(t *testing.T, slots []int, open [][]bool, finishOpen []bool) *schedule.Schedule {
	t.Helper()
	s, err := schedule.New(slots, open, finishOpen)
	require.NoError(t, err)
	return s
}

// TestArrivalToSlotIndex_SlotStarts covers each scheduled slot start: an
// on-the-hour start maps to its own index, while a :30 start maps to the
// same hour's :00 slot under the strict `m > 30` rule.
func TestArrivalToSlotIndex_SlotStarts(t *testing.T) {
	slots := []int{600, 630, 660, 720}
	want := []int{0, 0, 2, 3}
	s := mustSchedule(t, slots, [][]bool{{true, true, true, true}}, []bool{true, true, true, true})

	for idx, start := range slots {
		require.Equal(t, want[idx], s.ArrivalToSlotIndex(float64(start)))
	}
}

// TestArrivalToSlotIndex_TooEarly covers the before-first-slot corner.
func TestArrivalToSlotIndex_TooEarly(t *testing.T) {
	s := mustSchedule(t, []int{600}, [][]bool{{true}}, []bool{true})
	require.Equal(t, -1, s.ArrivalToSlotIndex(599.9))
}

// TestArrivalToSlotIndex_ClampsForward covers the clamp-forward corner:
// an arrival after the last slot maps to S-1, not -1.
func TestArrivalToSlotIndex_ClampsForward(t *testing.T) {
	s := mustSchedule(t, []int{600, 630}, [][]bool{{true, true}}, []bool{true, true})
	require.Equal(t, 1, s.ArrivalToSlotIndex(10000))
}

// TestArrivalToSlotIndex_HalfHourBoundary covers invariant 6: the strict
// `m > 30` rule and its interaction with a missing :30 slot.
func TestArrivalToSlotIndex_HalfHourBoundary(t *testing.T) {
	// Hour 10 has both :00 and :30 slots.
	withHalf := mustSchedule(t, []int{600, 630}, [][]bool{{true, true}}, []bool{true, true})
	require.Equal(t, 0, withHalf.ArrivalToSlotIndex(630)) // :30 exactly -> shares :00's bucket rule
	require.Equal(t, 1, withHalf.ArrivalToSlotIndex(631)) // :31 -> the :30 slot

	// Hour 11 has only :00 (no :30 slot that hour).
	noHalf := mustSchedule(t, []int{600, 660}, [][]bool{{true, true}}, []bool{true, true})
	require.Equal(t, noHalf.ArrivalToSlotIndex(600), noHalf.ArrivalToSlotIndex(630))
}

// TestArrivalToSlotIndex_Gap covers a slot_time falling in a scheduled gap.
func TestArrivalToSlotIndex_Gap(t *testing.T) {
	s := mustSchedule(t, []int{600, 720}, [][]bool{{true, true}}, []bool{true, true})
	// 660 (11:00) has no matching slot_starts entry and is before the last slot.
	require.Equal(t, -1, s.ArrivalToSlotIndex(660))
}

func TestFindNextOpenTime(t *testing.T) {
	s := mustSchedule(t, []int{600, 630, 660}, [][]bool{{false, true, false}}, []bool{true, true, true})

	got, ok := s.FindNextOpenTime(0, 605)
	require.True(t, ok)
	require.Equal(t, 630.0, got)

	_, ok = s.FindNextOpenTime(0, 661)
	require.False(t, ok)
}

func TestFindNextOpenTime_ArrivalAlreadyInsideOpenSlot(t *testing.T) {
	s := mustSchedule(t, []int{600, 630}, [][]bool{{true, true}}, []bool{true, true})
	got, ok := s.FindNextOpenTime(0, 615)
	require.True(t, ok)
	require.Equal(t, 615.0, got)
}

func TestNew_RejectsMalformedInput(t *testing.T) {
	_, err := schedule.New(nil, nil, nil)
	require.ErrorIs(t, err, schedule.ErrEmptySlots)

	_, err = schedule.New([]int{600, 600}, [][]bool{}, []bool{true, true})
	require.ErrorIs(t, err, schedule.ErrSlotsNotAscending)

	_, err = schedule.New([]int{600, 630}, [][]bool{}, []bool{true})
	require.ErrorIs(t, err, schedule.ErrOpeningsLengthMismatch)

	_, err = schedule.New([]int{600, 630}, [][]bool{{true}}, []bool{true, true})
	require.ErrorIs(t, err, schedule.ErrOpeningsLengthMismatch)
}
