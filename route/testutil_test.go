package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailmark/waypoint/route"
	"github.com/trailmark/waypoint/schedule"
	"github.com/trailmark/waypoint/travelmatrix"
)

// buildInstance assembles a route.Instance from literal fixtures: N
// checkpoint names, a slot table, per-checkpoint/Finish openings, and a
// raw ALL×ALL travel-time table (edges omitted default to +Inf).
func buildInstance(t *testing.T, names []string, slotStarts []int, open [][]bool, finishOpen []bool, travel map[[2]int]float64, cfg route.Config) *route.Instance {
	t.Helper()

	sched, err := schedule.New(slotStarts, open, finishOpen)
	require.NoError(t, err)

	all := len(names) + 2
	m, err := travelmatrix.NewMatrix(all)
	require.NoError(t, err)
	for k, v := range travel {
		require.NoError(t, m.Set(k[0], k[1], v))
	}

	inst, err := route.NewInstance(names, sched, m, cfg)
	require.NoError(t, err)
	return inst
}
