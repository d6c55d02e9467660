package feature

import (
	"context"

	"github.com/samber/lo"

	"routecore/internal/collab"
	"routecore/internal/routemodel"
)

// JobNearestDistanceFn extracts a job's target_nearest_distance
// threshold, returning ok=false for jobs with no threshold configured.
type JobNearestDistanceFn func(job *routemodel.Job) (target float64, ok bool)

// NewNearestDistance builds the NearestDistance feature: for
// every job activity on a route carrying a target nearest-distance
// threshold, it penalises by how far the nearest other job activity on
// the same route exceeds that threshold.
func NewNearestDistance(name string, transport collab.TransportCost, jobTargetFn JobNearestDistanceFn) (*Feature, error) {
	if transport == nil {
		return nil, ErrTransportRequired
	}
	if jobTargetFn == nil {
		return nil, ErrJobTargetFnRequired
	}

	nd := &nearestDistance{transport: transport, jobTargetFn: jobTargetFn}
	return &Feature{Name: name, Objective: nd, State: nd}, nil
}

type nearestDistance struct {
	transport   collab.TransportCost
	jobTargetFn JobNearestDistanceFn
}

type jobActivityLoc struct {
	loc routemodel.Location
	job *routemodel.Job
}

func (n *nearestDistance) routeJobLocations(route *routemodel.Route) []jobActivityLoc {
	var out []jobActivityLoc
	for _, a := range route.Tour.All() {
		if a.Job != nil {
			out = append(out, jobActivityLoc{a.Place.Location, a.Job})
		}
	}
	return out
}

func (n *nearestDistance) routePenalty(ctx context.Context, route *routemodel.Route) float64 {
	activities := n.routeJobLocations(route)
	if len(activities) <= 1 {
		return 0
	}

	profile := route.Actor.Profile
	total := 0.0
	for i, jl := range activities {
		target, ok := n.jobTargetFn(jl.job)
		if !ok {
			continue
		}

		dists := make([]float64, 0, len(activities)-1)
		for j, other := range activities {
			if j == i {
				continue
			}
			dists = append(dists, n.transport.DistanceApprox(ctx, profile, jl.loc, other.loc))
		}
		if len(dists) == 0 {
			continue
		}

		minDist := lo.Min(dists)
		if minDist > target {
			total += minDist - target
		}
	}
	return total
}

func (n *nearestDistance) Estimate(ctx context.Context, move MoveContext) float64 {
	target, ok := n.jobTargetFn(move.Job)
	if !ok || len(move.Job.Places) == 0 {
		return 0
	}
	jobLoc := move.Job.Places[0].Location

	var existing []routemodel.Location
	for _, a := range move.Route.Tour.All() {
		if a.Job != nil {
			existing = append(existing, a.Place.Location)
		}
	}
	if len(existing) == 0 {
		return 0
	}

	profile := move.Route.Actor.Profile
	dists := make([]float64, len(existing))
	for i, loc := range existing {
		dists[i] = n.transport.DistanceApprox(ctx, profile, jobLoc, loc)
	}
	minDist := lo.Min(dists)

	if minDist > target {
		return minDist - target
	}
	return 0
}

func (n *nearestDistance) Fitness(ctx context.Context, routes []*routemodel.Route) float64 {
	total := 0.0
	for _, route := range routes {
		if route.State.NearestDistance != nil && !route.State.Stale {
			total += route.State.NearestDistance.Penalty
			continue
		}
		total += n.routePenalty(ctx, route)
	}
	return total
}

func (n *nearestDistance) AcceptRouteState(ctx context.Context, route *routemodel.Route) {
	penalty := n.routePenalty(ctx, route)
	route.State.NearestDistance = &routemodel.RouteNearestDistanceData{Penalty: penalty}
}

func (n *nearestDistance) AcceptSolutionState(ctx context.Context, routes []*routemodel.Route) float64 {
	total := 0.0
	for _, route := range routes {
		if route.State.Stale {
			n.AcceptRouteState(ctx, route)
			route.State.MarkFresh()
		}
		if route.State.NearestDistance != nil {
			total += route.State.NearestDistance.Penalty
		}
	}
	return total
}
