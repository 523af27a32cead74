package main

import (
	"errors"

	"github.com/trailmark/waypoint/internal/instance"
	"github.com/trailmark/waypoint/route"
	"github.com/trailmark/waypoint/schedule"
	"github.com/trailmark/waypoint/travelmatrix"
)

// Exit codes distinguish malformed input (2) from a correctly-posed but
// infeasible instance (1) from unexpected failures (3), so scripts
// driving waypoint can tell "fix your document" from "no route exists."
const (
	exitOK          = 0
	exitInfeasible  = 1
	exitBadInstance = 2
	exitInternal    = 3
)

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	switch {
	case errors.Is(err, route.ErrStartFinishUnreachable),
		errors.Is(err, route.ErrCannotVisitAll):
		return exitInfeasible
	case errors.Is(err, route.ErrNoCheckpoints),
		errors.Is(err, route.ErrTooManyCheckpoints),
		errors.Is(err, route.ErrUnknownExcluded),
		errors.Is(err, route.ErrTravelMatrixSize),
		errors.Is(err, route.ErrInvalidWindow),
		errors.Is(err, route.ErrNegativeDwell),
		errors.Is(err, instance.ErrReservedName),
		errors.Is(err, schedule.ErrEmptySlots),
		errors.Is(err, schedule.ErrSlotsNotAscending),
		errors.Is(err, schedule.ErrOpeningsLengthMismatch),
		errors.Is(err, schedule.ErrCheckpointOutOfRange),
		errors.Is(err, travelmatrix.ErrInvalidDimensions),
		errors.Is(err, travelmatrix.ErrNonSquare),
		errors.Is(err, travelmatrix.ErrNegativeInput),
		errors.Is(err, travelmatrix.ErrNonPositiveSpeed),
		errors.Is(err, travelmatrix.ErrNonPositiveNaismith):
		return exitBadInstance
	default:
		return exitInternal
	}
}
