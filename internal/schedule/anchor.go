// Package schedule implements the forward/backward schedule passes, the
// offset-anchor fixed point, and the window-rebind step that couple
// start-departure, first-job arrival, and offset-anchored time windows.
package schedule

import "routecore/internal/routemodel"

// ResolveAnchor returns the timestamp used to materialise this route's
// offset spans:
//
//	DepotToDepot, DepotToLastJob     -> start.Schedule.Departure
//	FirstJobToDepot, FirstJobToLastJob -> first job activity's arrival,
//	                                      or the start departure if the
//	                                      route has no first job yet.
//
// ResolveAnchor is a pure function of the route's current tour state.
func ResolveAnchor(route *routemodel.Route) float64 {
	start := route.Tour.Start()
	if start == nil {
		panic(routemodel.ErrMissingStart)
	}
	startDeparture := start.Schedule.Departure

	if !route.Actor.Detail.CostSpan.AnchorsOnFirstJob() {
		return startDeparture
	}

	first, ok := route.Tour.FirstJob()
	if !ok {
		return startDeparture
	}
	return first.Schedule.Arrival
}
