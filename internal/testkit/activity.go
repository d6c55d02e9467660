package testkit

import (
	"context"

	"routecore/internal/routemodel"
	"routecore/internal/timemodel"
)

// DefaultActivityCost implements the ActivityCost contract literally:
// service starts at max(arrival, window.start); departure is
// service_start + place.duration; an arrival past window.end rejects,
// while a departure after window.end does not. It carries no reserved-time
// extension of its own — reserved time is layered on separately by the
// breaks package's post-hoc materialization, not by this collaborator.
type DefaultActivityCost struct{}

func (DefaultActivityCost) EstimateDeparture(ctx context.Context, route *routemodel.Route, activity *routemodel.Activity, arrival timemodel.Timestamp) (timemodel.Timestamp, bool) {
	window := activity.Place.Time
	if arrival > window.End {
		return arrival + activity.Place.Duration, false
	}
	serviceStart := arrival
	if window.Start > serviceStart {
		serviceStart = window.Start
	}
	departure := serviceStart + activity.Place.Duration
	return departure, true
}

// EstimateArrival is the inverse of EstimateDeparture: the latest
// arrival that still lets the activity depart by latestDeparture. Since
// departure = max(arrival, window.Start) + duration, the latest such
// arrival is latestDeparture-duration when that already clears
// window.Start; below window.Start even the earliest possible
// departure (arriving at window.Start) would miss latestDeparture, so
// the activity is infeasible under that bound.
func (DefaultActivityCost) EstimateArrival(ctx context.Context, route *routemodel.Route, activity *routemodel.Activity, latestDeparture timemodel.Timestamp) (timemodel.Timestamp, bool) {
	window := activity.Place.Time
	latestServiceStart := latestDeparture - activity.Place.Duration

	if latestServiceStart < window.Start {
		return window.Start, false
	}
	if latestServiceStart > window.End {
		return window.End, true
	}
	return latestServiceStart, true
}
