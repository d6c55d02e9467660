package departure

import (
	"context"
	"log"
	"math"

	"routecore/internal/collab"
	"routecore/internal/routemodel"
	"routecore/internal/schedule"
	"routecore/internal/timemodel"
)

// Advance tries to move a route's start departure later, shedding
// waiting time. When considerWholeTour is false it only targets
// the first job's window start; when true it considers every
// activity's slack, capped by the tightest remaining window anywhere in
// the tour. It tries the computed upper bound directly first; if that
// leaves the route infeasible it falls back to a critical-candidate
// search from highest to lowest, and restores the original departure
// if nothing works. A tour with fewer than two activities is a no-op.
func Advance(ctx context.Context, route *routemodel.Route, activity collab.ActivityCost, transport collab.TransportCost, considerWholeTour bool) {
	upper, ok := tryAdvance(ctx, route, transport, considerWholeTour)
	if !ok {
		return
	}

	current := route.Tour.Start().Schedule.Departure

	if feasible := schedule.UpdateRouteDeparture(ctx, route, activity, transport, upper); feasible {
		return
	}

	candidates := computeCriticalDepartures(route, current, upper)
	for i := len(candidates) - 1; i >= 0; i-- {
		candidate := candidates[i]
		if candidate <= current || candidate >= upper {
			continue
		}
		if feasible := schedule.UpdateRouteDeparture(ctx, route, activity, transport, candidate); feasible {
			return
		}
	}

	log.Printf("[DEPARTURE] advance to %.3f infeasible, restoring %.3f", upper, current)
	schedule.UpdateRouteDeparture(ctx, route, activity, transport, current)
}

// Recede tries to move a route's start departure earlier, bounded by
// the minimum of three slacks: the first job's own latest-arrival
// margin, the start depot's earliest-allowed departure, and any
// remaining duration budget against route.State.LimitDuration. A
// candidate that turns out infeasible is rolled back to the original
// departure.
func Recede(ctx context.Context, route *routemodel.Route, activity collab.ActivityCost, transport collab.TransportCost) {
	newDeparture, ok := tryRecede(route)
	if !ok {
		return
	}

	current := route.Tour.Start().Schedule.Departure

	if feasible := schedule.UpdateRouteDeparture(ctx, route, activity, transport, newDeparture); feasible {
		return
	}

	log.Printf("[DEPARTURE] recede to %.3f infeasible, restoring %.3f", newDeparture, current)
	schedule.UpdateRouteDeparture(ctx, route, activity, transport, current)
}

func tryAdvance(ctx context.Context, route *routemodel.Route, transport collab.TransportCost, considerWholeTour bool) (timemodel.Timestamp, bool) {
	first := route.Tour.Get(1)
	start := route.Tour.Start()
	if first == nil || start == nil {
		return 0, false
	}

	latestAllowedDeparture := math.MaxFloat64
	if detail := route.Actor.Detail.Start; detail != nil && detail.Latest != nil {
		latestAllowedDeparture = *detail.Latest
	}
	lastDepartureTime := start.Schedule.Departure

	var newDeparture timemodel.Timestamp
	if considerWholeTour {
		totalWaiting := 0.0
		maxShift := math.MaxFloat64
		activities := route.Tour.AllReversed()
		for _, a := range activities {
			waiting := math.Max(0, a.Place.Time.Start-a.Schedule.Arrival)
			remaining := math.Max(0, a.Place.Time.End-a.Schedule.Arrival-waiting)
			totalWaiting += waiting
			maxShift = waiting + math.Min(remaining, maxShift)
		}
		departureShift := math.Min(totalWaiting, maxShift)
		newDeparture = math.Min(start.Schedule.Departure+departureShift, latestAllowedDeparture)
	} else {
		startToFirst := transport.Duration(ctx, route, start.Place.Location, first.Place.Location, collab.AtDeparture(lastDepartureTime))
		newDeparture = math.Min(math.Max(lastDepartureTime, first.Place.Time.Start-startToFirst), latestAllowedDeparture)
	}

	if newDeparture > lastDepartureTime {
		return newDeparture, true
	}
	return 0, false
}

func tryRecede(route *routemodel.Route) (timemodel.Timestamp, bool) {
	first := route.Tour.Get(1)
	start := route.Tour.Start()
	if first == nil || start == nil {
		return 0, false
	}
	if len(route.State.LatestArrival) <= 1 {
		return 0, false
	}

	maxChange := route.State.LatestArrival[1] - first.Schedule.Arrival

	earliestAllowedDeparture := start.Place.Time.Start
	if detail := route.Actor.Detail.Start; detail != nil && detail.Earliest != nil {
		earliestAllowedDeparture = *detail.Earliest
	}
	maxChange = math.Min(start.Schedule.Departure-earliestAllowedDeparture, maxChange)

	if route.State.LimitDuration != nil {
		maxChange = math.Min(*route.State.LimitDuration-route.State.TotalDuration, maxChange)
	}

	if maxChange > 0 {
		return start.Schedule.Departure - maxChange, true
	}
	return 0, false
}
