// Package instance is the "external collaborator" that turns an
// on-disk instance document into the types route.Instance consumes:
// checkpoint names, a slot schedule, and a distance table. This mirrors
// the solver entry point's logical signature (spec'd checkpoint_names,
// slot_starts, openings, travel_time, start/end minute, dwell, excluded)
// without pulling CSV ingestion or BNG->WGS84 conversion into the core.
package instance

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/trailmark/waypoint/route"
	"github.com/trailmark/waypoint/schedule"
	"github.com/trailmark/waypoint/travelmatrix"
)

// ErrReservedName indicates a checkpoint document used the reserved name
// "Start" or "Finish".
var ErrReservedName = errors.New("instance: \"Start\" and \"Finish\" are reserved names")

// Document is the on-disk shape of a solve instance: checkpoint names,
// the slot table, per-checkpoint and Finish openings, a directional
// distance/ascent table over [checkpoints..., Start, Finish], and the
// operating configuration.
type Document struct {
	Checkpoints    []string           `json:"checkpoints"`
	SlotStarts     []int              `json:"slot_starts"`
	Openings       map[string][]bool  `json:"openings"`
	FinishOpenings []bool             `json:"finish_openings"`
	DistanceKM     [][]float64        `json:"distance_km"`
	HeightGainM    [][]float64        `json:"height_gain_m"`
	SpeedKmh       float64            `json:"speed_kmh"`
	NaismithCoeff  float64            `json:"naismith_coeff"`
	StartMinute    float64            `json:"start_minute"`
	EndMinute      float64            `json:"end_minute"`
	DwellMinutes   float64            `json:"dwell_minutes"`
	Excluded       []string           `json:"excluded"`
}

// Loaded bundles the instance plus the raw distance table, since the
// route-card replay (route.BuildRouteCard) needs the original km/ascent
// readings alongside the projected travel-time matrix.
type Loaded struct {
	Instance *route.Instance
	Dist     travelmatrix.DistanceTable
	Doc      Document
}

// Decode reads and validates a Document from r, then assembles a route.Instance.
func Decode(r io.Reader) (Loaded, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return Loaded{}, fmt.Errorf("instance: decode: %w", err)
	}

	return Build(doc)
}

// Build assembles a Loaded instance from an already-parsed Document,
// letting a caller (e.g. a CLI flag overlay) mutate fields before
// construction without re-serializing to JSON.
func Build(doc Document) (Loaded, error) {
	for _, name := range doc.Checkpoints {
		if name == "Start" || name == "Finish" {
			return Loaded{}, ErrReservedName
		}
	}

	open := make([][]bool, len(doc.Checkpoints))
	for i, name := range doc.Checkpoints {
		open[i] = doc.Openings[name]
	}

	sched, err := schedule.New(doc.SlotStarts, open, doc.FinishOpenings)
	if err != nil {
		return Loaded{}, fmt.Errorf("instance: schedule: %w", err)
	}

	dist := travelmatrix.DistanceTable{KM: doc.DistanceKM, HeightGainM: doc.HeightGainM}
	travel, err := travelmatrix.Project(dist, doc.SpeedKmh, doc.NaismithCoeff)
	if err != nil {
		return Loaded{}, fmt.Errorf("instance: travel matrix: %w", err)
	}

	excluded := make(map[string]bool, len(doc.Excluded))
	for _, name := range doc.Excluded {
		excluded[name] = true
	}

	cfg := route.Config{
		SpeedKmh:      doc.SpeedKmh,
		NaismithCoeff: doc.NaismithCoeff,
		DwellMinutes:  doc.DwellMinutes,
		StartMinute:   doc.StartMinute,
		EndMinute:     doc.EndMinute,
		Excluded:      excluded,
	}

	inst, err := route.NewInstance(doc.Checkpoints, sched, travel, cfg)
	if err != nil {
		return Loaded{}, fmt.Errorf("instance: %w", err)
	}

	return Loaded{Instance: inst, Dist: dist, Doc: doc}, nil
}
