package feature

import (
	"context"
	"testing"

	"routecore/internal/routemodel"
	"routecore/internal/testkit"
)

func TestVehicleDistancePenalizesFartherAssignedActor(t *testing.T) {
	transport := testkit.NewFakeTransport(1)
	transport.SetLeg(1, 10, 0, 100) // job -> assigned actor's depot
	transport.SetLeg(1, 20, 0, 10)  // job -> a closer compatible actor's depot

	assigned := &routemodel.Actor{Profile: "default", Detail: routemodel.ActorDetail{
		Start: &routemodel.VehiclePlace{Location: 10},
	}}
	closer := &routemodel.Actor{Profile: "default", Detail: routemodel.ActorDetail{
		Start: &routemodel.VehiclePlace{Location: 20},
	}}

	always := func(*routemodel.Job, *routemodel.Actor) bool { return true }

	feat, err := NewVehicleDistance("vehicle_distance", transport, []*routemodel.Actor{assigned, closer}, always)
	if err != nil {
		t.Fatalf("NewVehicleDistance: %v", err)
	}

	job := routemodel.NewJob("job", routemodel.PlaceDef{Location: 1})
	b := testkit.NewClosedTourBuilder(10, 0)
	b.AddJob(job)
	route := b.Build()
	route.Actor = assigned

	penalty := feat.Objective.Estimate(context.Background(), MoveContext{Route: route, Job: job})
	if penalty != 90 {
		t.Errorf("Estimate penalty = %v, want 90 (100 assigned - 10 nearest)", penalty)
	}

	feat.State.AcceptRouteState(context.Background(), route)
	if route.State.VehicleDistance == nil || route.State.VehicleDistance.Penalty != 90 {
		t.Errorf("cached VehicleDistance penalty = %+v, want 90", route.State.VehicleDistance)
	}
}

func TestNewVehicleDistanceRequiresCollaborators(t *testing.T) {
	transport := testkit.NewFakeTransport(1)
	always := func(*routemodel.Job, *routemodel.Actor) bool { return true }

	if _, err := NewVehicleDistance("x", nil, []*routemodel.Actor{{}}, always); err != ErrTransportRequired {
		t.Errorf("expected ErrTransportRequired, got %v", err)
	}
	if _, err := NewVehicleDistance("x", transport, nil, always); err != ErrActorsRequired {
		t.Errorf("expected ErrActorsRequired, got %v", err)
	}
	if _, err := NewVehicleDistance("x", transport, []*routemodel.Actor{{}}, nil); err != ErrCompatibilityFnRequired {
		t.Errorf("expected ErrCompatibilityFnRequired, got %v", err)
	}
}
