package breaks

import "routecore/internal/timemodel"

// ReservedTimeDescriptor is an actor-level reserved-time entry to
// materialise into the output tour: its (possibly offset) time span,
// the unavailability duration, and the per-service-time cost rate used
// to price it when it lands inside a Point stop.
type ReservedTimeDescriptor struct {
	Time               timemodel.TimeSpan
	Duration           timemodel.Duration
	PerServiceTimeCost float64

	// Optional, when non-nil, makes this descriptor subject to
	// OptionalBreak.ShouldAssign rather than always being materialised.
	Optional *timemodel.OptionalBreakPolicy
}
