package breaks

import (
	"testing"

	"routecore/internal/routemodel"
	"routecore/internal/testkit"
	"routecore/internal/timemodel"
)

func twoPointTour(endArrival timemodel.Timestamp) *OutputTour {
	return &OutputTour{
		Stops: []Stop{
			{Kind: PointStop, Location: 0, Schedule: routemodel.Schedule{Arrival: 0, Departure: 0}},
			{Kind: PointStop, Location: 1, Schedule: routemodel.Schedule{Arrival: endArrival, Departure: endArrival}},
		},
	}
}

func TestMaterializeInsertsTransitBreakMidLeg(t *testing.T) {
	route := testkit.NewClosedTourBuilder(0, 0).Build()
	route.Tour.End().Schedule.Arrival = 20

	tour := twoPointTour(20)
	descriptors := []ReservedTimeDescriptor{
		{Time: timemodel.NewAbsoluteSpan(5, 10), Duration: 3, PerServiceTimeCost: 2},
	}

	Materialize(route, tour, descriptors)

	if len(tour.Stops) != 3 {
		t.Fatalf("expected a transit stop inserted mid-leg, got %d stops", len(tour.Stops))
	}
	mid := tour.Stops[1]
	if mid.Kind != TransitStop {
		t.Errorf("inserted stop kind = %v, want TransitStop", mid.Kind)
	}
	if len(mid.Activities) != 1 || !mid.Activities[0].IsBreak() {
		t.Fatalf("expected exactly one break activity on the transit stop, got %+v", mid.Activities)
	}
	if mid.Activities[0].Time == nil || mid.Activities[0].Time.Start != 10 || mid.Activities[0].Time.End != 13 {
		t.Errorf("break window = %+v, want [10,13]", mid.Activities[0].Time)
	}
	if tour.Statistics.BreakTime != 3 {
		t.Errorf("BreakTime = %v, want 3", tour.Statistics.BreakTime)
	}
	if tour.Statistics.Driving != -3 {
		t.Errorf("Driving adjustment = %v, want -3 (a transit break is carved out of driving time)", tour.Statistics.Driving)
	}
	if tour.Statistics.Cost != 0 {
		t.Errorf("Cost = %v, want 0 (cost only accrues for breaks landing at a Point stop)", tour.Statistics.Cost)
	}
}

func TestMaterializeSkipsBreakTouchingTourEnd(t *testing.T) {
	route := testkit.NewClosedTourBuilder(0, 0).Build()
	route.Tour.End().Schedule.Arrival = 20

	tour := twoPointTour(20)
	descriptors := []ReservedTimeDescriptor{
		// resolved end = 18, duration 2 -> reservedTW = [18,20], touching
		// (not strictly before) the tour's own end: already satisfied.
		{Time: timemodel.NewAbsoluteSpan(15, 18), Duration: 2, PerServiceTimeCost: 1},
	}

	Materialize(route, tour, descriptors)

	if len(tour.Stops) != 2 {
		t.Fatalf("break touching the tour end must not be materialised, got %d stops", len(tour.Stops))
	}
	if tour.Statistics.BreakTime != 0 {
		t.Errorf("BreakTime = %v, want 0", tour.Statistics.BreakTime)
	}
}

func TestMaterializeOptionalBreakAssignedWhenPolicyAllows(t *testing.T) {
	route := testkit.NewClosedTourBuilder(0, 0).Build()
	route.Tour.End().Schedule.Arrival = 20

	tour := twoPointTour(20)
	policy := timemodel.SkipIfNoIntersection
	descriptors := []ReservedTimeDescriptor{
		// resolved window [5,10] starts well before the tour's own
		// arrival (20), so SkipIfNoIntersection still expects it assigned.
		{Time: timemodel.NewAbsoluteSpan(5, 10), Duration: 3, PerServiceTimeCost: 1, Optional: &policy},
	}

	Materialize(route, tour, descriptors)

	if len(tour.Stops) != 3 {
		t.Fatalf("expected the optional break to be materialised, got %d stops", len(tour.Stops))
	}
	if tour.Statistics.BreakTime != 3 {
		t.Errorf("BreakTime = %v, want 3", tour.Statistics.BreakTime)
	}
}
