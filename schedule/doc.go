// Package schedule implements the slot clock: the mapping from a
// continuous arrival time (minutes after midnight) to a discrete
// opening-slot index, and the search for the next open slot at a
// checkpoint.
//
// The event publishes a strictly ascending table of slot start times,
// thirty minutes or an hour apart, together with a per-checkpoint and a
// Finish open/closed bit for every slot. Schedule owns that table and the
// two lookups built on top of it; it holds no knowledge of checkpoints'
// names, travel times, or the optimizer that consumes it.
package schedule
