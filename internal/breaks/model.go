// Package breaks turns an actor's reserved-time descriptors into break
// activities inserted into a finished tour's output stops, with
// statistics adjusted to match.
package breaks

import (
	"routecore/internal/routemodel"
	"routecore/internal/timemodel"
)

// StopKind distinguishes a Point stop (an activity/location in the
// tour) from a Transit stop (a synthetic stop inserted mid-leg with no
// location of its own, holding only a break).
type StopKind int

const (
	PointStop StopKind = iota
	TransitStop
)

// OutputActivity is one activity recorded at a stop in the emitted
// tour: a job visit, a break, or (for Point stops) the depot markers.
type OutputActivity struct {
	JobID        string
	ActivityType string
	Location     *routemodel.Location
	Time         *timemodel.TimeWindow
	JobTag       string
}

// IsBreak reports whether this activity is a materialised break.
func (a OutputActivity) IsBreak() bool {
	return a.ActivityType == "break"
}

// Stop is one stop in the output tour: a Point stop carries a location
// and its activities; a Transit stop has no location of its own and
// holds only the activities materialised onto it mid-leg (in practice,
// at most one break).
type Stop struct {
	Kind       StopKind
	Location   routemodel.Location
	Schedule   routemodel.Schedule
	Activities []OutputActivity
}

// TimeWindow returns the stop's own arrival/departure as a TimeWindow.
func (s Stop) TimeWindow() timemodel.TimeWindow {
	return timemodel.NewTimeWindow(s.Schedule.Arrival, s.Schedule.Departure)
}

// Statistics accumulates the cost/time adjustments BreakMaterializer
// makes as it inserts breaks.
type Statistics struct {
	Cost      float64
	Driving   timemodel.Duration
	BreakTime timemodel.Duration
}

// OutputTour is the finished tour BreakMaterializer mutates in place:
// its stops and the running statistics.
type OutputTour struct {
	Stops      []Stop
	Statistics Statistics
}
