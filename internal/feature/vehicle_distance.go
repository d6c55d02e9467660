package feature

import (
	"context"

	"github.com/samber/lo"

	"routecore/internal/collab"
	"routecore/internal/routemodel"
)

// ActorJobCompatibilityFn reports whether actor may serve job, used to
// restrict the fleet-wide nearest-vehicle search to actors capable of
// taking the job.
type ActorJobCompatibilityFn func(job *routemodel.Job, actor *routemodel.Actor) bool

// NewVehicleDistance builds the VehicleDistance feature: for
// every job activity, it penalises by how much farther the job is from
// its assigned vehicle's start than from the nearest compatible
// vehicle's start, fleet-wide.
func NewVehicleDistance(name string, transport collab.TransportCost, actors []*routemodel.Actor, compatibilityFn ActorJobCompatibilityFn) (*Feature, error) {
	if transport == nil {
		return nil, ErrTransportRequired
	}
	if len(actors) == 0 {
		return nil, ErrActorsRequired
	}
	if compatibilityFn == nil {
		return nil, ErrCompatibilityFnRequired
	}

	vd := &vehicleDistance{transport: transport, actors: actors, compatibilityFn: compatibilityFn}
	return &Feature{Name: name, Objective: vd, State: vd}, nil
}

type vehicleDistance struct {
	transport       collab.TransportCost
	actors          []*routemodel.Actor
	compatibilityFn ActorJobCompatibilityFn
}

// nearestCompatibleDistance returns the minimum approximated distance
// from jobLoc to any actor compatible with job that has a start depot,
// or (0, false) if no compatible actor qualifies.
func (v *vehicleDistance) nearestCompatibleDistance(ctx context.Context, profile string, jobLoc routemodel.Location, job *routemodel.Job) (float64, bool) {
	var dists []float64
	for _, actor := range v.actors {
		if !v.compatibilityFn(job, actor) {
			continue
		}
		if actor.Detail.Start == nil {
			continue
		}
		dists = append(dists, v.transport.DistanceApprox(ctx, profile, jobLoc, actor.Detail.Start.Location))
	}
	if len(dists) == 0 {
		return 0, false
	}
	return lo.Min(dists), true
}

func (v *vehicleDistance) routePenalty(ctx context.Context, route *routemodel.Route) float64 {
	if route.Actor.Detail.Start == nil {
		return 0
	}
	assignedStart := route.Actor.Detail.Start.Location
	profile := route.Actor.Profile

	total := 0.0
	for _, a := range route.Tour.All() {
		if a.Job == nil {
			continue
		}
		jobLoc := a.Place.Location
		distAssigned := v.transport.DistanceApprox(ctx, profile, jobLoc, assignedStart)

		distNearest, ok := v.nearestCompatibleDistance(ctx, profile, jobLoc, a.Job)
		if !ok {
			distNearest = distAssigned
		}

		penalty := distAssigned - distNearest
		if penalty > 0 {
			total += penalty
		}
	}
	return total
}

func (v *vehicleDistance) Estimate(ctx context.Context, move MoveContext) float64 {
	if len(move.Job.Places) == 0 || move.Route.Actor.Detail.Start == nil {
		return 0
	}
	jobLoc := move.Job.Places[0].Location
	assignedStart := move.Route.Actor.Detail.Start.Location
	profile := move.Route.Actor.Profile

	distAssigned := v.transport.DistanceApprox(ctx, profile, jobLoc, assignedStart)
	distNearest, ok := v.nearestCompatibleDistance(ctx, profile, jobLoc, move.Job)
	if !ok {
		distNearest = distAssigned
	}

	penalty := distAssigned - distNearest
	if penalty > 0 {
		return penalty
	}
	return 0
}

func (v *vehicleDistance) Fitness(ctx context.Context, routes []*routemodel.Route) float64 {
	total := 0.0
	for _, route := range routes {
		if route.State.VehicleDistance != nil && !route.State.Stale {
			total += route.State.VehicleDistance.Penalty
			continue
		}
		total += v.routePenalty(ctx, route)
	}
	return total
}

func (v *vehicleDistance) AcceptRouteState(ctx context.Context, route *routemodel.Route) {
	penalty := v.routePenalty(ctx, route)
	route.State.VehicleDistance = &routemodel.RouteVehicleDistanceData{Penalty: penalty}
}

func (v *vehicleDistance) AcceptSolutionState(ctx context.Context, routes []*routemodel.Route) float64 {
	total := 0.0
	for _, route := range routes {
		if route.State.Stale {
			v.AcceptRouteState(ctx, route)
			route.State.MarkFresh()
		}
		if route.State.VehicleDistance != nil {
			total += route.State.VehicleDistance.Penalty
		}
	}
	return total
}
