// Package constraint checks a candidate job insertion against an
// actor's hard per-shift earliest-first/latest-last bounds before it is
// committed.
package constraint

import (
	"context"
	"math"

	"routecore/internal/collab"
	"routecore/internal/routemodel"
)

// CodeJobTimeConstraint is the skip code Evaluate returns when an
// insertion violates the actor's earliest-first or latest-last bound.
const CodeJobTimeConstraint = "JOB_TIME_CONSTRAINT"

// Evaluate checks a candidate insertion of target between prev and next
// against the route actor's JobTimeConstraints. It is a no-op (always
// allowed) unless the actor has at least one bound configured and
// target carries a job — the constraint never applies to depot
// activities or actors with no configured bounds.
//
// Returns allow=true with an empty code, or allow=false with
// CodeJobTimeConstraint.
func Evaluate(ctx context.Context, route *routemodel.Route, prev, target, next *routemodel.Activity, activity collab.ActivityCost, transport collab.TransportCost) (allow bool, code string) {
	constraints := route.Actor.Detail.TimeConstraints
	if !constraints.HasAny() || target == nil || target.Job == nil {
		return true, ""
	}

	dep := prev.Schedule.Departure
	arr := dep + transport.Duration(ctx, route, prev.Place.Location, target.Place.Location, collab.AtDeparture(dep))

	isFirstJob := prev.Job == nil
	isLastJob := next == nil || next.Job == nil

	actualArrival := arr

	if e := constraints.EarliestFirst; e != nil && isFirstJob && arr < *e {
		if target.Place.Time.End < *e {
			return false, CodeJobTimeConstraint
		}
		actualArrival = *e
	}

	if l := constraints.LatestLast; l != nil && isLastJob {
		serviceStart := math.Max(actualArrival, target.Place.Time.Start)
		depOut, _ := activity.EstimateDeparture(ctx, route, target, serviceStart)
		if depOut > *l {
			return false, CodeJobTimeConstraint
		}
	}

	return true, ""
}
