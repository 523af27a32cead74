package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailmark/waypoint/route"
	"github.com/trailmark/waypoint/schedule"
	"github.com/trailmark/waypoint/travelmatrix"
)

func TestNewInstance_RejectsMalformedInput(t *testing.T) {
	sched, err := schedule.New([]int{600}, [][]bool{{true}}, []bool{true})
	require.NoError(t, err)

	m, err := travelmatrix.NewMatrix(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 10))
	require.NoError(t, m.Set(0, 2, 10))

	cfg := baseConfig(600, 1000, 0)

	_, err = route.NewInstance(nil, sched, m, cfg)
	require.ErrorIs(t, err, route.ErrNoCheckpoints)

	badWindow := cfg
	badWindow.EndMinute = 599
	_, err = route.NewInstance([]string{"CP0"}, sched, m, badWindow)
	require.ErrorIs(t, err, route.ErrInvalidWindow)

	badDwell := cfg
	badDwell.DwellMinutes = -1
	_, err = route.NewInstance([]string{"CP0"}, sched, m, badDwell)
	require.ErrorIs(t, err, route.ErrNegativeDwell)

	badExcluded := cfg
	badExcluded.Excluded = map[string]bool{"Nope": true}
	_, err = route.NewInstance([]string{"CP0"}, sched, m, badExcluded)
	require.ErrorIs(t, err, route.ErrUnknownExcluded)

	wrongSize, err := travelmatrix.NewMatrix(2)
	require.NoError(t, err)
	_, err = route.NewInstance([]string{"CP0"}, sched, wrongSize, cfg)
	require.ErrorIs(t, err, route.ErrTravelMatrixSize)

	unreachable, err := travelmatrix.NewMatrix(3)
	require.NoError(t, err)
	_, err = route.NewInstance([]string{"CP0"}, sched, unreachable, cfg)
	require.ErrorIs(t, err, route.ErrStartFinishUnreachable)
}
