package routemodel

import "routecore/internal/timemodel"

// RouteNearestDistanceData is the NearestDistance feature's cached
// per-route penalty.
type RouteNearestDistanceData struct {
	Penalty float64
}

// RouteVehicleDistanceData is the VehicleDistance feature's cached
// per-route penalty.
type RouteVehicleDistanceData struct {
	Penalty float64
}

// RouteState is the route's keyed derived state: per-activity latest
// arrival and future waiting time, aligned to the job-carrying prefix of
// the tour, route-wide totals, and the two fixed feature caches.
//
// The set of states is fixed (two schedule vectors, two route totals, one
// optional limit, two feature caches), so RouteState is a plain struct
// with explicit typed fields rather than an untyped dimensions map.
type RouteState struct {
	LatestArrival []timemodel.Timestamp
	WaitingTime   []timemodel.Duration

	TotalDistance timemodel.Distance
	TotalDuration timemodel.Duration
	LimitDuration *timemodel.Duration

	NearestDistance *RouteNearestDistanceData
	VehicleDistance *RouteVehicleDistanceData

	// Stale marks that this route's cached feature state no longer
	// reflects its current schedule/assignments and must be recomputed.
	Stale bool
}

// NewRouteState returns an empty state marked stale; SetSchedule populates
// the vectors.
func NewRouteState() *RouteState {
	return &RouteState{Stale: true}
}

// SetSchedule replaces the per-activity latest-arrival/waiting-time
// vectors. Lengths must match (StateRecorder guarantees this).
func (s *RouteState) SetSchedule(latestArrival []timemodel.Timestamp, waitingTime []timemodel.Duration) {
	s.LatestArrival = latestArrival
	s.WaitingTime = waitingTime
}

// MarkStale flags the route's cached feature state as needing
// recomputation; acceptors clear it once they have recomputed.
func (s *RouteState) MarkStale() {
	s.Stale = true
}

// MarkFresh clears the staleness flag after recomputation.
func (s *RouteState) MarkFresh() {
	s.Stale = false
}
