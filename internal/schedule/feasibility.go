package schedule

import (
	"context"

	"routecore/internal/collab"
	"routecore/internal/routemodel"
)

// Feasible runs the same forward walk as Compute without writing any
// schedule back to the tour — a non-mutating probe that tests a route's
// feasibility without committing a schedule. It walks the full
// tour rather than stopping at the first rejection, since a later
// activity's arrival still depends on the running (location, departure)
// chain continuing with ActivityCost's best-effort departure value.
func Feasible(ctx context.Context, route *routemodel.Route, activity collab.ActivityCost, transport collab.TransportCost) bool {
	start := route.Tour.Start()
	if start == nil {
		panic(routemodel.ErrMissingStart)
	}

	loc := start.Place.Location
	dep := start.Schedule.Departure
	feasible := true

	for i := 1; i < route.Tour.Total(); i++ {
		a := route.Tour.Get(i)
		arrival := dep + transport.Duration(ctx, route, loc, a.Place.Location, collab.AtDeparture(dep))

		departure, ok := activity.EstimateDeparture(ctx, route, a, arrival)
		if !ok {
			feasible = false
		}

		loc, dep = a.Place.Location, departure
	}

	return feasible
}
