// Package feature provides two objective/state computations —
// NearestDistance and VehicleDistance — demonstrating how a
// route-level penalty is cached on RouteState and rolled up across a
// solution.
package feature

import (
	"context"
	"errors"

	"routecore/internal/routemodel"
)

// ErrTransportRequired, ErrJobTargetFnRequired, ErrActorsRequired, and
// ErrCompatibilityFnRequired are returned by the feature constructors
// when a required collaborator is missing.
var (
	ErrTransportRequired      = errors.New("feature: transport must be set")
	ErrJobTargetFnRequired    = errors.New("feature: job target function must be set")
	ErrActorsRequired         = errors.New("feature: actors must be set")
	ErrCompatibilityFnRequired = errors.New("feature: compatibility function must be set")
)

// MoveContext describes a candidate job insertion being scored by
// Objective.Estimate, before it is committed to a route.
type MoveContext struct {
	Route *routemodel.Route
	Job   *routemodel.Job
}

// Objective scores routes and candidate moves for a single feature.
type Objective interface {
	// Fitness returns the feature's total penalty across every route in
	// the solution, preferring each route's cached state when fresh.
	Fitness(ctx context.Context, routes []*routemodel.Route) float64

	// Estimate returns the penalty contribution of inserting move.Job
	// into move.Route, without mutating anything.
	Estimate(ctx context.Context, move MoveContext) float64
}

// State caches a feature's per-route penalty on RouteState and rolls it
// up whenever a route is marked stale.
type State interface {
	// AcceptRouteState recomputes and caches this feature's penalty on
	// route's state.
	AcceptRouteState(ctx context.Context, route *routemodel.Route)

	// AcceptSolutionState recomputes every stale route's cached penalty
	// and returns the solution-wide total.
	AcceptSolutionState(ctx context.Context, routes []*routemodel.Route) float64
}

// Feature bundles a name with the objective/state pair FeatureHooks
// expects; both fields are populated by this package's constructors.
type Feature struct {
	Name      string
	Objective Objective
	State     State
}
