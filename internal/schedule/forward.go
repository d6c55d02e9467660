package schedule

import (
	"context"
	"log"

	"routecore/internal/collab"
	"routecore/internal/routemodel"
)

// Compute runs the forward pass: for each activity after the
// start, in order, it derives the arrival from the running (location,
// departure) pair and transport's duration, asks activity for the
// resulting departure, and writes the new schedule. It always walks
// the whole tour and writes every activity's schedule, even past a
// rejected arrival — ActivityCost's best-effort departure lets the walk
// continue with feasibility tracked as a side boolean rather than
// stopping the walk. The return value is true only if every activity's
// arrival was accepted.
func Compute(ctx context.Context, route *routemodel.Route, activity collab.ActivityCost, transport collab.TransportCost) bool {
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
			log.Printf("[SCHEDULE] activity %d rejects arrival=%.3f", i, arrival)
		}

		a.Schedule = routemodel.Schedule{Arrival: arrival, Departure: departure}
		loc, dep = a.Place.Location, departure
	}

	return feasible
}
