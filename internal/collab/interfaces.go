// Package collab defines the thin interfaces the scheduling core consumes
// from external collaborators: activity-cost estimation and transport
// duration/distance. Implementations (matrix/geo providers,
// problem-specific activity-cost rules) live outside this module — the
// core only depends on these contracts and never interprets a Location
// or estimates a cost itself.
package collab

import (
	"context"

	"routecore/internal/routemodel"
	"routecore/internal/timemodel"
)

// TravelDirection distinguishes a duration/distance query anchored at a
// known departure time from one anchored at a known arrival time (used by
// the backward pass).
type TravelDirection int

const (
	Departure TravelDirection = iota
	Arrival
)

// TravelTime carries a direction hint and the anchoring timestamp: a
// query is anchored either at a known departure or a known arrival.
type TravelTime struct {
	Direction TravelDirection
	Time      timemodel.Timestamp
}

// AtDeparture builds a Departure-anchored TravelTime.
func AtDeparture(t timemodel.Timestamp) TravelTime { return TravelTime{Direction: Departure, Time: t} }

// AtArrival builds an Arrival-anchored TravelTime.
func AtArrival(t timemodel.Timestamp) TravelTime { return TravelTime{Direction: Arrival, Time: t} }

// ActivityCost estimates the service-time consequences of visiting an
// activity: when service may start, how a reserved time span extends it,
// and whether the window rejects the visit outright.
type ActivityCost interface {
	// EstimateDeparture computes the departure timestamp after serving
	// activity given an arrival time, and ok reports whether the
	// place's window accepts the arrival (false when arrival is after
	// place.Time.End, or a reserved-time extension would push service
	// end past place.Time.End). departure is always a usable best-effort
	// value even when ok is false — callers walking the forward pass
	// keep going with it rather than aborting, so a single infeasible
	// activity doesn't stop the rest of the pass from being computed.
	EstimateDeparture(ctx context.Context, route *routemodel.Route, activity *routemodel.Activity, arrival timemodel.Timestamp) (departure timemodel.Timestamp, ok bool)

	// EstimateArrival is the inverse of EstimateDeparture: the latest
	// arrival timestamp that still allows departing by latestDeparture,
	// or ok=false if no such arrival exists. Used by the backward pass.
	EstimateArrival(ctx context.Context, route *routemodel.Route, activity *routemodel.Activity, latestDeparture timemodel.Timestamp) (arrival timemodel.Timestamp, ok bool)
}

// TransportCost provides travel durations/distances between two
// locations, including any reserved-time-induced extension the
// implementation is responsible for applying.
type TransportCost interface {
	// Duration returns the travel time from -> to, anchored per tt.
	Duration(ctx context.Context, route *routemodel.Route, from, to routemodel.Location, tt TravelTime) timemodel.Duration

	// Distance returns the travelled distance from -> to, anchored at a
	// known departure time.
	Distance(ctx context.Context, route *routemodel.Route, from, to routemodel.Location, tt TravelTime) timemodel.Distance

	// DistanceApprox returns a geometric/static distance estimate with no
	// time dependency, used by the feature hooks for cheap insertion-time
	// penalty estimates.
	DistanceApprox(ctx context.Context, profile string, a, b routemodel.Location) timemodel.Distance
}
