package testkit

import (
	"math"

	"routecore/internal/routemodel"
	"routecore/internal/timemodel"
)

// NewDepotActivity builds a jobless start/end marker activity at loc
// with the given schedule and an effectively unbounded window, so a
// depot's own arrival never gets rejected by ActivityCost the way a
// job's fixed window would.
func NewDepotActivity(loc routemodel.Location, arrival, departure timemodel.Timestamp) *routemodel.Activity {
	return &routemodel.Activity{
		PlaceIdx: -1,
		Place:    routemodel.ActivityPlace{Location: loc, Time: timemodel.NewTimeWindow(0, math.MaxFloat64)},
		Schedule: routemodel.Schedule{Arrival: arrival, Departure: departure},
	}
}

// NewJobActivity builds a job-carrying activity at the job's first
// place, with its window resolved against anchor using the place's
// first span (falling back to a zero window if the place has none).
func NewJobActivity(job *routemodel.Job, anchor timemodel.Timestamp) *routemodel.Activity {
	def := job.Places[0]
	window := timemodel.NewTimeWindow(0, 0)
	if len(def.Spans) > 0 {
		window = def.Spans[0].Materialize(anchor)
	}
	return &routemodel.Activity{
		Job:      job,
		PlaceIdx: 0,
		Place:    routemodel.ActivityPlace{Location: def.Location, Duration: def.Duration, Time: window},
	}
}

// ClosedTourBuilder assembles a simple closed-tour Route (start depot,
// job activities, end depot) for test fixtures.
type ClosedTourBuilder struct {
	startLoc, endLoc routemodel.Location
	departure        timemodel.Timestamp
	jobs             []*routemodel.Job
	costSpan         routemodel.RouteCostSpan
	constraints      routemodel.JobTimeConstraints
}

// NewClosedTourBuilder starts a builder for a route departing depotLoc
// at departure and returning to the same location.
func NewClosedTourBuilder(depotLoc routemodel.Location, departure timemodel.Timestamp) *ClosedTourBuilder {
	return &ClosedTourBuilder{startLoc: depotLoc, endLoc: depotLoc, departure: departure}
}

func (b *ClosedTourBuilder) WithCostSpan(span routemodel.RouteCostSpan) *ClosedTourBuilder {
	b.costSpan = span
	return b
}

func (b *ClosedTourBuilder) WithConstraints(c routemodel.JobTimeConstraints) *ClosedTourBuilder {
	b.constraints = c
	return b
}

func (b *ClosedTourBuilder) AddJob(job *routemodel.Job) *ClosedTourBuilder {
	b.jobs = append(b.jobs, job)
	return b
}

// Build assembles the route. Job activity windows are resolved against
// b.departure as a first-pass anchor; callers that need first-job
// anchoring should re-run schedule.Update afterward to converge it.
func (b *ClosedTourBuilder) Build() *routemodel.Route {
	activities := make([]*routemodel.Activity, 0, len(b.jobs)+2)
	activities = append(activities, NewDepotActivity(b.startLoc, b.departure, b.departure))
	for _, job := range b.jobs {
		activities = append(activities, NewJobActivity(job, b.departure))
	}
	activities = append(activities, NewDepotActivity(b.endLoc, 0, 0))

	tour := routemodel.NewTour(activities)
	actor := &routemodel.Actor{
		Profile: "default",
		Detail: routemodel.ActorDetail{
			Start:           &routemodel.VehiclePlace{Location: b.startLoc},
			End:             &routemodel.VehiclePlace{Location: b.endLoc},
			TimeConstraints: b.constraints,
			CostSpan:        b.costSpan,
		},
	}
	return routemodel.NewRoute(tour, actor)
}
