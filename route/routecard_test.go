package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailmark/waypoint/route"
	"github.com/trailmark/waypoint/travelmatrix"
)

// TestBuildRouteCard_MatchesSolverFinish covers invariant 4: the replay's
// last-leg depart and Finish arrival agree with the DP's own selection.
func TestBuildRouteCard_MatchesSolverFinish(t *testing.T) {
	names := []string{"CP0"}
	inst := buildInstance(t, names, []int{600, 630}, [][]bool{{false, true}}, []bool{true, true},
		map[[2]int]float64{{1, 0}: 10, {0, 2}: 10},
		baseConfig(600, 1020, 7),
	)

	res := inst.Solve()
	require.Equal(t, 1, res.Count)

	dist := travelmatrix.DistanceTable{
		KM:          [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		HeightGainM: [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	}
	// Distances reproducing the same 10-minute legs at the instance's
	// configured speed (5 km/h, via baseConfig) and zero ascent.
	const tenMinutesAt5Kmh = 5.0 * 10 / 60
	dist.KM[1][0] = tenMinutesAt5Kmh
	dist.KM[0][2] = tenMinutesAt5Kmh

	legs, err := route.BuildRouteCard(inst, dist, res.Route)
	require.NoError(t, err)
	require.Len(t, legs, 2)

	last := legs[len(legs)-1]
	require.Equal(t, "Finish", last.To)
	require.True(t, last.IsOpen)
	require.Equal(t, 647.0, res.FinishMinute)
	// The solver waits at CP0 until 630 and departs at 637 (10:37); the
	// replay's Finish arrival is its FinishMinute, 647 (10:47).
	require.Equal(t, "10:37", legs[0].Depart)
	require.Equal(t, "10:47", last.Arrival)
}

func TestBuildRouteCard_WaitIsRecorded(t *testing.T) {
	names := []string{"CP0"}
	inst := buildInstance(t, names, []int{600, 630}, [][]bool{{false, true}}, []bool{true, true},
		map[[2]int]float64{{1, 0}: 10, {0, 2}: 10},
		baseConfig(600, 1020, 7),
	)
	res := inst.Solve()

	dist := travelmatrix.DistanceTable{
		KM:          [][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}},
		HeightGainM: [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	}
	dist.KM[1][0] = 5.0 / 6 // 10 minutes at speed 5 km/h
	dist.KM[0][2] = 5.0 / 6

	legs, err := route.BuildRouteCard(inst, dist, res.Route)
	require.NoError(t, err)
	require.Len(t, legs, 2)
	require.Greater(t, legs[0].WaitMin, 0.0)
}
