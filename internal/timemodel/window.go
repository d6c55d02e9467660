// Package timemodel provides the time-window and reserved-time primitives
// shared by the scheduling, departure, constraint, and break-materializer
// packages.
package timemodel

// Timestamp is a non-negative point in time, measured in seconds from an
// arbitrary shift-relative epoch (the vehicle's own start of shift, not a
// calendar time). Duration and Distance share the same float64 encoding.
type Timestamp = float64

// Duration is a non-negative span of time in seconds.
type Duration = float64

// Distance is a non-negative travelled distance, in the caller's own unit.
type Distance = float64

// TimeWindow is a closed interval [Start, End] with Start <= End.
type TimeWindow struct {
	Start Timestamp
	End   Timestamp
}

// NewTimeWindow builds a window, clamping a malformed (end < start) input to
// a zero-length window at Start rather than panicking — callers that derive
// windows from arithmetic (anchor + offset) should not crash on transiently
// inverted inputs.
func NewTimeWindow(start, end Timestamp) TimeWindow {
	if end < start {
		end = start
	}
	return TimeWindow{Start: start, End: end}
}

// Duration returns the window's length.
func (w TimeWindow) Duration() Duration {
	return w.End - w.Start
}

// Shift returns the window translated by delta.
func (w TimeWindow) Shift(delta Duration) TimeWindow {
	return TimeWindow{Start: w.Start + delta, End: w.End + delta}
}

// Intersects reports whether the two closed windows share at least one
// instant (touching endpoints count as intersecting).
func (w TimeWindow) Intersects(other TimeWindow) bool {
	return w.Start <= other.End && other.Start <= w.End
}

// IntersectsExclusive reports whether the two windows overlap on more than
// a single shared endpoint — used where a leg ending exactly when a break
// begins must not count as an intersection.
func (w TimeWindow) IntersectsExclusive(other TimeWindow) bool {
	return w.Start < other.End && other.Start < w.End
}

// Overlapping returns the overlapping sub-window of w and other, or ok=false
// if they do not overlap at all.
func (w TimeWindow) Overlapping(other TimeWindow) (TimeWindow, bool) {
	start := w.Start
	if other.Start > start {
		start = other.Start
	}
	end := w.End
	if other.End < end {
		end = other.End
	}
	if start > end {
		return TimeWindow{}, false
	}
	return TimeWindow{Start: start, End: end}, true
}

// Equal reports exact equality of both endpoints.
func (w TimeWindow) Equal(other TimeWindow) bool {
	return w.Start == other.Start && w.End == other.End
}
