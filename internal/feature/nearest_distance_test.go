package feature

import (
	"context"
	"testing"

	"routecore/internal/routemodel"
	"routecore/internal/testkit"
)

func jobWithTarget(loc routemodel.Location, target float64) *routemodel.Job {
	t := target
	job := routemodel.NewJob("job", routemodel.PlaceDef{Location: loc})
	job.TargetNearestDistance = &t
	return job
}

func TestNearestDistancePenalizesIsolatedJob(t *testing.T) {
	transport := testkit.NewFakeTransport(1)
	transport.SetLeg(1, 2, 0, 50)
	transport.SetLeg(2, 1, 0, 50)

	jobTargetFn := func(job *routemodel.Job) (float64, bool) {
		if job.TargetNearestDistance == nil {
			return 0, false
		}
		return *job.TargetNearestDistance, true
	}

	feat, err := NewNearestDistance("nearest_distance", transport, jobTargetFn)
	if err != nil {
		t.Fatalf("NewNearestDistance: %v", err)
	}

	b := testkit.NewClosedTourBuilder(0, 0)
	b.AddJob(jobWithTarget(1, 10))
	b.AddJob(jobWithTarget(2, 10))
	route := b.Build()

	penalty := feat.Objective.Estimate(context.Background(), MoveContext{Route: route, Job: jobWithTarget(3, 10)})
	_ = penalty // the Estimate result is not asserted in this test

	feat.State.AcceptRouteState(context.Background(), route)
	if route.State.NearestDistance == nil {
		t.Fatal("expected cached NearestDistance state")
	}
	// the two jobs are 50 apart, exceeding each one's target of 10 by 40.
	if got, want := route.State.NearestDistance.Penalty, 80.0; got != want {
		t.Errorf("route penalty = %v, want %v", got, want)
	}

	total := feat.Objective.Fitness(context.Background(), []*routemodel.Route{route})
	if total != 80.0 {
		t.Errorf("Fitness = %v, want 80 (the route is still marked stale, so Fitness recomputes the penalty)", total)
	}
}

func TestNewNearestDistanceRequiresCollaborators(t *testing.T) {
	if _, err := NewNearestDistance("x", nil, func(*routemodel.Job) (float64, bool) { return 0, false }); err != ErrTransportRequired {
		t.Errorf("expected ErrTransportRequired, got %v", err)
	}
	if _, err := NewNearestDistance("x", testkit.NewFakeTransport(1), nil); err != ErrJobTargetFnRequired {
		t.Errorf("expected ErrJobTargetFnRequired, got %v", err)
	}
}
