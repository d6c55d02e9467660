package schedule

import (
	"context"
	"log"

	"routecore/internal/collab"
	"routecore/internal/routemodel"
)

const maxAnchorIterations = 3
const anchorEpsilon = 1e-6

func withinEpsilon(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= anchorEpsilon
}

// Update runs the full schedule update driver after a structural edit
// to the route: the forward pass, an anchor fixed point when the
// route's cost span anchors on the first job, the backward pass, and
// the statistics recompute. It returns the feasibility of the final
// forward pass; callers decide whether to keep or discard the result.
//
// The anchor loop only applies to FirstJobToDepot/FirstJobToLastJob cost
// spans, which can shift their own offset anchor as arrivals shift. It
// is bounded to K=3 iterations as an engineering safety net; the fixed
// point itself is expected to converge in one or two passes because
// each iteration moves the anchor monotonically with arrival.
func Update(ctx context.Context, route *routemodel.Route, activity collab.ActivityCost, transport collab.TransportCost) bool {
	anchorsOnFirstJob := route.Actor.Detail.CostSpan.AnchorsOnFirstJob()
	var oldAnchor float64
	if anchorsOnFirstJob {
		oldAnchor = ResolveAnchor(route)
	}

	feasible := Compute(ctx, route, activity, transport)

	if anchorsOnFirstJob {
		for i := 0; i < maxAnchorIterations; i++ {
			newAnchor := ResolveAnchor(route)
			log.Printf("[SCHEDULE] anchor iteration %d: %.6f -> %.6f", i, oldAnchor, newAnchor)
			if withinEpsilon(newAnchor, oldAnchor) {
				break
			}
			RebindWindows(route, oldAnchor, newAnchor)
			oldAnchor = newAnchor
			feasible = Compute(ctx, route, activity, transport)
		}
	}

	Record(ctx, route, activity, transport)
	UpdateStatistics(ctx, route, transport)
	return feasible
}

// UpdateRouteDeparture changes the route's start departure and carries
// every anchor-dependent consequence through: it records the old
// anchor, overwrites the start activity's departure, resolves the new
// anchor, rebinds offset windows against it, and re-runs Update so
// schedules, state, and statistics all reflect the new departure. It
// returns the resulting feasibility.
func UpdateRouteDeparture(ctx context.Context, route *routemodel.Route, activity collab.ActivityCost, transport collab.TransportCost, newDeparture float64) bool {
	start := route.Tour.Start()
	if start == nil {
		panic(routemodel.ErrMissingStart)
	}

	oldAnchor := ResolveAnchor(route)
	start.Schedule.Departure = newDeparture
	newAnchor := ResolveAnchor(route)
	RebindWindows(route, oldAnchor, newAnchor)

	return Update(ctx, route, activity, transport)
}
