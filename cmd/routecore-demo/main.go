// Command routecore-demo builds a small sample route, runs it through
// the scheduling pipeline, materialises its break, and prints the
// resulting schedule and statistics as JSON. It exists to exercise the
// library end to end, not as a production entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"routecore/internal/breaks"
	"routecore/internal/departure"
	"routecore/internal/routemodel"
	"routecore/internal/schedule"
	"routecore/internal/testkit"
	"routecore/internal/timemodel"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	advance := flag.Bool("advance", getEnvBool("ROUTECORE_ADVANCE", true), "advance departure to shed slack before printing")
	flag.Parse()

	route := buildSampleRoute()
	transport := sampleTransport()
	activity := testkit.DefaultActivityCost{}
	ctx := context.Background()

	log.Printf("Initializing schedule for a %d-activity tour", route.Tour.Total())
	feasible := schedule.Update(ctx, route, activity, transport)
	log.Printf("Forward pass feasible=%v", feasible)

	if *advance {
		departure.Advance(ctx, route, activity, transport, true)
		log.Printf("Advanced departure to %.1f", route.Tour.Start().Schedule.Departure)
	}

	tour := materializeOutputTour(route)
	descriptors := []breaks.ReservedTimeDescriptor{
		{Time: timemodel.NewOffsetSpan(120, 180), Duration: 30, PerServiceTimeCost: 0.5},
	}
	breaks.Materialize(route, tour, descriptors)

	result := struct {
		Feasible   bool              `json:"feasible"`
		Start      routemodel.Schedule `json:"start"`
		End        routemodel.Schedule `json:"end"`
		Statistics breaks.Statistics `json:"statistics"`
		Stops      []breaks.Stop     `json:"stops"`
	}{
		Feasible:   feasible,
		Start:      route.Tour.Start().Schedule,
		End:        route.Tour.End().Schedule,
		Statistics: tour.Statistics,
		Stops:      tour.Stops,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// buildSampleRoute assembles a three-job closed tour departing a depot
// at location 0, anchored on the first job's own arrival.
func buildSampleRoute() *routemodel.Route {
	b := testkit.NewClosedTourBuilder(0, 0).
		WithCostSpan(routemodel.FirstJobToDepot).
		WithConstraints(routemodel.JobTimeConstraints{})

	b.AddJob(routemodel.NewJob("pickup-a", routemodel.PlaceDef{
		Location: 1,
		Duration: 10,
		Spans:    []timemodel.TimeSpan{timemodel.NewAbsoluteSpan(0, 600)},
	}))
	b.AddJob(routemodel.NewJob("pickup-b", routemodel.PlaceDef{
		Location: 2,
		Duration: 10,
		Spans:    []timemodel.TimeSpan{timemodel.NewAbsoluteSpan(0, 600)},
	}))
	b.AddJob(routemodel.NewJob("dropoff", routemodel.PlaceDef{
		Location: 3,
		Duration: 15,
		Spans:    []timemodel.TimeSpan{timemodel.NewAbsoluteSpan(200, 900)},
	}))

	return b.Build()
}

func sampleTransport() *testkit.FakeTransport {
	t := testkit.NewFakeTransport(1)
	t.SetLeg(0, 1, 100, 100)
	t.SetLeg(1, 2, 80, 80)
	t.SetLeg(2, 3, 90, 90)
	t.SetLeg(3, 0, 120, 120)
	return t
}

// materializeOutputTour converts route's internal activities into the
// breaks package's output-stop representation, one Point stop per
// activity, ahead of break materialization.
func materializeOutputTour(route *routemodel.Route) *breaks.OutputTour {
	activities := route.Tour.All()
	stops := make([]breaks.Stop, 0, len(activities))
	for _, a := range activities {
		stop := breaks.Stop{Kind: breaks.PointStop, Location: a.Place.Location, Schedule: a.Schedule}
		if a.IsJob() {
			stop.Activities = []breaks.OutputActivity{{
				JobID:        a.Job.ID,
				ActivityType: "job",
				Location:     &a.Place.Location,
				Time:         &a.Place.Time,
				JobTag:       a.Job.Tag,
			}}
		}
		stops = append(stops, stop)
	}
	return &breaks.OutputTour{Stops: stops}
}

func getEnvBool(key string, defaultValue bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return v == "1" || v == "true"
}
