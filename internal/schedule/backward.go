package schedule

import (
	"context"

	"routecore/internal/collab"
	"routecore/internal/routemodel"
	"routecore/internal/timemodel"
)

// Record runs the backward pass: for every job activity it derives the
// latest arrival that still lets every
// downstream activity meet its window, and the cumulative waiting time
// from the tail back to that activity. It writes both as tour-aligned
// slices on route's RouteState.
//
// The walk starts from the route's hard end time (the actor's end
// VehiclePlace.Latest, if the route has one) and threads a running
// (location, latest-departure) pair backward through EstimateArrival,
// the inverse of EstimateDeparture. Activities with no downstream bound
// fall back to their own place window's end. A route with no job
// activities produces nil state slices.
//
// If the tour ends with a jobless end depot, its zero-valued trailing
// slot is dropped before publishing, so the slices stay aligned with
// the job-carrying prefix the rest of the pipeline addresses by tour
// index.
func Record(ctx context.Context, route *routemodel.Route, activity collab.ActivityCost, transport collab.TransportCost) {
	tour := route.Tour
	total := tour.Total()
	lastJobIdx := tour.LastJobIndex()

	if lastJobIdx < 0 {
		route.State.LatestArrival = nil
		route.State.WaitingTime = nil
		return
	}

	latestArrival := make([]timemodel.Timestamp, total)
	waitingTime := make([]timemodel.Duration, total)

	var boundLoc routemodel.Location
	var boundDeparture timemodel.Timestamp
	haveBound := false

	if end := tour.End(); end != nil {
		if detail := route.Actor.Detail.End; detail != nil && detail.Latest != nil {
			boundLoc = end.Place.Location
			boundDeparture = *detail.Latest
			haveBound = true
		}
	}

	for i := lastJobIdx; i >= 1; i-- {
		a := tour.Get(i)

		var latest timemodel.Timestamp
		if haveBound {
			travel := transport.Duration(ctx, route, a.Place.Location, boundLoc, collab.AtArrival(boundDeparture))
			latestDeparture := boundDeparture - travel
			if arr, ok := activity.EstimateArrival(ctx, route, a, latestDeparture); ok {
				latest = arr
			} else {
				latest = a.Place.Time.End
			}
		} else {
			latest = a.Place.Time.End
		}
		latestArrival[i] = latest

		wait := a.Place.Time.Start - a.Schedule.Arrival
		if wait < 0 {
			wait = 0
		}
		if i < lastJobIdx {
			wait += waitingTime[i+1]
		}
		waitingTime[i] = wait

		boundLoc = a.Place.Location
		boundDeparture = latest
		haveBound = true
	}

	if tour.HasEndDepot() {
		latestArrival = latestArrival[:total-1]
		waitingTime = waitingTime[:total-1]
	}

	route.State.SetSchedule(latestArrival, waitingTime)
}
