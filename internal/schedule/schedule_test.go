package schedule

import (
	"context"
	"testing"

	"routecore/internal/routemodel"
	"routecore/internal/testkit"
	"routecore/internal/timemodel"
)

func buildSimpleRoute(jobWindows [][2]timemodel.Timestamp, jobDurations []timemodel.Duration, start timemodel.Timestamp) *routemodel.Route {
	b := testkit.NewClosedTourBuilder(0, start)
	for i, w := range jobWindows {
		job := routemodel.NewJob("job", routemodel.PlaceDef{
			Location: routemodel.Location(i + 1),
			Duration: jobDurations[i],
			Spans:    []timemodel.TimeSpan{timemodel.NewAbsoluteSpan(w[0], w[1])},
		})
		b.AddJob(job)
	}
	return b.Build()
}

func TestComputeForwardPass(t *testing.T) {
	route := buildSimpleRoute(
		[][2]timemodel.Timestamp{{10, 100}, {20, 100}},
		[]timemodel.Duration{5, 5},
		0,
	)
	transport := testkit.NewFakeTransport(1)
	transport.SetLeg(0, 1, 10, 10)
	transport.SetLeg(1, 2, 5, 5)
	transport.SetLeg(2, 0, 20, 20)
	activity := testkit.DefaultActivityCost{}

	feasible := Compute(context.Background(), route, activity, transport)
	if !feasible {
		t.Fatalf("expected feasible schedule")
	}

	job1 := route.Tour.Get(1)
	if job1.Schedule.Arrival != 10 {
		t.Errorf("job1 arrival = %v, want 10", job1.Schedule.Arrival)
	}
	if job1.Schedule.Departure != 15 {
		t.Errorf("job1 departure = %v, want 15", job1.Schedule.Departure)
	}

	job2 := route.Tour.Get(2)
	if job2.Schedule.Arrival != 20 {
		t.Errorf("job2 arrival = %v, want 20", job2.Schedule.Arrival)
	}
	if job2.Schedule.Departure != 25 {
		t.Errorf("job2 departure = %v, want 25", job2.Schedule.Departure)
	}

	end := route.Tour.End()
	if end.Schedule.Arrival != 45 {
		t.Errorf("end arrival = %v, want 45", end.Schedule.Arrival)
	}
}

func TestComputeRejectsLateArrival(t *testing.T) {
	route := buildSimpleRoute([][2]timemodel.Timestamp{{0, 5}}, []timemodel.Duration{1}, 0)
	transport := testkit.NewFakeTransport(1)
	transport.SetLeg(0, 1, 50, 50)
	transport.SetLeg(1, 0, 1, 1)
	activity := testkit.DefaultActivityCost{}

	feasible := Compute(context.Background(), route, activity, transport)
	if feasible {
		t.Fatalf("expected infeasible schedule (arrival 50 > window end 5)")
	}
}

func TestFeasibleMatchesComputeWithoutMutating(t *testing.T) {
	route := buildSimpleRoute([][2]timemodel.Timestamp{{10, 100}}, []timemodel.Duration{5}, 0)
	transport := testkit.NewFakeTransport(1)
	transport.SetLeg(0, 1, 10, 10)
	transport.SetLeg(1, 0, 10, 10)
	activity := testkit.DefaultActivityCost{}

	before := route.Tour.Get(1).Schedule
	ok := Feasible(context.Background(), route, activity, transport)
	after := route.Tour.Get(1).Schedule

	if !ok {
		t.Fatalf("expected feasible")
	}
	if before != after {
		t.Fatalf("Feasible must not mutate schedule: before=%v after=%v", before, after)
	}
	if computed := Compute(context.Background(), route, activity, transport); computed != ok {
		t.Errorf("Compute feasibility = %v, Feasible = %v; want equal", computed, ok)
	}
}

func TestRecordBackwardPass(t *testing.T) {
	route := buildSimpleRoute(
		[][2]timemodel.Timestamp{{10, 100}, {20, 200}},
		[]timemodel.Duration{5, 5},
		0,
	)
	transport := testkit.NewFakeTransport(1)
	transport.SetLeg(0, 1, 10, 10)
	transport.SetLeg(1, 2, 5, 5)
	transport.SetLeg(2, 0, 10, 10)
	activity := testkit.DefaultActivityCost{}

	Compute(context.Background(), route, activity, transport)
	Record(context.Background(), route, activity, transport)

	if route.State.LatestArrival == nil {
		t.Fatal("expected latest arrival vector to be set")
	}
	if len(route.State.LatestArrival) != route.Tour.Total()-1 {
		t.Errorf("latest arrival length = %d, want %d (trailing end-depot slot dropped)",
			len(route.State.LatestArrival), route.Tour.Total()-1)
	}
}

func TestUpdateStatisticsDepotToDepot(t *testing.T) {
	route := buildSimpleRoute([][2]timemodel.Timestamp{{10, 100}}, []timemodel.Duration{5}, 0)
	transport := testkit.NewFakeTransport(1)
	transport.SetLeg(0, 1, 10, 10)
	transport.SetLeg(1, 0, 10, 10)
	activity := testkit.DefaultActivityCost{}

	Update(context.Background(), route, activity, transport)

	if route.State.TotalDistance != 20 {
		t.Errorf("total distance = %v, want 20", route.State.TotalDistance)
	}
	if route.State.TotalDuration != route.Tour.End().Schedule.Departure {
		t.Errorf("total duration should equal end departure for a DepotToDepot span starting at 0")
	}
}

func TestResolveAnchorFirstJobToDepot(t *testing.T) {
	route := buildSimpleRoute([][2]timemodel.Timestamp{{10, 100}}, []timemodel.Duration{5}, 0)
	route.Actor.Detail.CostSpan = routemodel.FirstJobToDepot
	transport := testkit.NewFakeTransport(1)
	transport.SetLeg(0, 1, 10, 10)
	transport.SetLeg(1, 0, 10, 10)
	activity := testkit.DefaultActivityCost{}

	Compute(context.Background(), route, activity, transport)
	anchor := ResolveAnchor(route)
	if anchor != route.Tour.Get(1).Schedule.Arrival {
		t.Errorf("anchor = %v, want first job arrival %v", anchor, route.Tour.Get(1).Schedule.Arrival)
	}
}
