package schedule

import (
	"context"

	"routecore/internal/collab"
	"routecore/internal/routemodel"
)

// UpdateStatistics recomputes RouteState.TotalDuration and TotalDistance
// from the current schedule, for each of the four RouteCostSpan
// variants. Distance is the sum of the TransportCost.Distance legs
// the cost span's segment range covers; duration is simply the
// difference between the span's two departure/arrival endpoints.
//
// For open tours (no end depot) DepotToDepot collapses to
// DepotToLastJob and FirstJobToDepot collapses to FirstJobToLastJob,
// since there is no end activity to anchor on.
func UpdateStatistics(ctx context.Context, route *routemodel.Route, transport collab.TransportCost) {
	tour := route.Tour
	total := tour.Total()
	lastJobIdx := tour.LastJobIndex()

	if lastJobIdx < 0 {
		route.State.TotalDuration = 0
		route.State.TotalDistance = 0
		return
	}

	start := tour.Start()
	hasEnd := tour.HasEndDepot()
	span := route.Actor.Detail.CostSpan

	anchorsOnFirstJob := span.AnchorsOnFirstJob()
	toDepot := hasEnd && (span == routemodel.DepotToDepot || span == routemodel.FirstJobToDepot)

	var fromDeparture float64
	var fromIdx int
	if anchorsOnFirstJob {
		first, _ := tour.FirstJob()
		fromDeparture = first.Schedule.Arrival
		fromIdx = indexOf(tour, first)
	} else {
		fromDeparture = start.Schedule.Departure
		fromIdx = 0
	}

	var toArrival float64
	var toIdx int
	if toDepot {
		end := tour.End()
		toArrival = end.Schedule.Departure
		toIdx = total - 1
	} else {
		last := tour.Get(lastJobIdx)
		toArrival = last.Schedule.Departure
		toIdx = lastJobIdx
	}

	route.State.TotalDuration = toArrival - fromDeparture

	var distance float64
	for i := fromIdx; i < toIdx; i++ {
		from := tour.Get(i)
		to := tour.Get(i + 1)
		distance += transport.Distance(ctx, route, from.Place.Location, to.Place.Location, collab.AtDeparture(from.Schedule.Departure))
	}
	route.State.TotalDistance = distance
}

func indexOf(tour *routemodel.Tour, target *routemodel.Activity) int {
	for i := 0; i < tour.Total(); i++ {
		if tour.Get(i) == target {
			return i
		}
	}
	return 0
}
