package breaks

import (
	"sort"

	"routecore/internal/routemodel"
	"routecore/internal/schedule"
	"routecore/internal/timemodel"
)

// breakInsertionKind tags how a reserved-time interval was located
// relative to the output tour's stops.
type breakInsertionKind int

const (
	insertWithinStops breakInsertionKind = iota
	insertTransitUsed
	insertTransitMoved
)

type breakInsertion struct {
	kind    breakInsertionKind
	legIdx  int
	breakTW timemodel.TimeWindow
}

// Materialize converts every reserved-time descriptor for route's actor
// into break activities inserted into tour, adjusting tour.Statistics
// to match. Descriptors are resolved against route's current anchor so
// offset spans land correctly.
//
// A descriptor is skipped when its break interval (resolved end to
// resolved end plus duration) does not intersect the tour's shift
// envelope, touching endpoints counting as intersecting, or when that
// interval ends at or after the tour's end arrival, which counts as
// already satisfied rather than a violation requiring assignment.
func Materialize(route *routemodel.Route, tour *OutputTour, descriptors []ReservedTimeDescriptor) {
	start := route.Tour.Start()
	end := route.Tour.End()
	if start == nil || end == nil || len(tour.Stops) == 0 {
		return
	}
	shiftTime := timemodel.NewTimeWindow(start.Schedule.Departure, end.Schedule.Arrival)
	anchor := schedule.ResolveAnchor(route)

	for _, descriptor := range descriptors {
		resolved := descriptor.Time.Materialize(anchor)
		reservedTW := timemodel.NewTimeWindow(resolved.End, resolved.End+descriptor.Duration)

		// A required break is only expected to be assigned if it
		// intersects the shift envelope and its end lands strictly
		// before the tour's own end — one lands on or after tour
		// arrival is already satisfied without an activity (S6b).
		if !shiftTime.Intersects(reservedTW) || reservedTW.End >= shiftTime.End {
			continue
		}
		if descriptor.Optional != nil {
			opt := timemodel.OptionalBreak{Time: descriptor.Time, Duration: descriptor.Duration, Policy: *descriptor.Optional}
			if !opt.ShouldAssign(resolved, shiftTime.End) {
				continue
			}
		}

		insertion := findBreakInsertion(tour, reservedTW)

		if insertion != nil && insertion.kind == insertTransitUsed {
			insertTransitStop(tour, insertion.legIdx, reservedTW)
		}

		breakTime := descriptor.Duration
		breakCost := breakTime * descriptor.PerServiceTimeCost

		if insertion != nil && insertion.kind == insertTransitMoved {
			insertBreakAt(tour, insertion.legIdx, breakTime, breakCost, insertion, reservedTW)
		} else {
			for stopIdx := range tour.Stops {
				stopTW := tour.Stops[stopIdx].TimeWindow()
				if stopTW.IntersectsExclusive(reservedTW) {
					insertBreakAt(tour, stopIdx, breakTime, breakCost, nil, reservedTW)
				}
			}
		}

		tour.Statistics.BreakTime += breakTime
	}
}

// findBreakInsertion scans consecutive stop pairs for a travel leg
// whose window strictly intersects reservedTW, classifying it as
// moved-to-previous-stop or a new transit stop.
func findBreakInsertion(tour *OutputTour, reservedTW timemodel.TimeWindow) *breakInsertion {
	for legIdx := 0; legIdx+1 < len(tour.Stops); legIdx++ {
		prev, next := tour.Stops[legIdx], tour.Stops[legIdx+1]
		travelTW := timemodel.NewTimeWindow(prev.Schedule.Departure, next.Schedule.Arrival)
		if !travelTW.IntersectsExclusive(reservedTW) {
			continue
		}
		if reservedTW.Start < travelTW.Start {
			return &breakInsertion{
				kind:    insertTransitMoved,
				legIdx:  legIdx,
				breakTW: timemodel.NewTimeWindow(travelTW.Start-reservedTW.Duration(), travelTW.Start),
			}
		}
		return &breakInsertion{kind: insertTransitUsed, legIdx: legIdx}
	}
	return nil
}

func insertTransitStop(tour *OutputTour, legIdx int, reservedTW timemodel.TimeWindow) {
	stop := Stop{
		Kind:     TransitStop,
		Schedule: routemodel.Schedule{Arrival: reservedTW.Start, Departure: reservedTW.End},
	}
	stops := make([]Stop, 0, len(tour.Stops)+1)
	stops = append(stops, tour.Stops[:legIdx+1]...)
	stops = append(stops, stop)
	stops = append(stops, tour.Stops[legIdx+1:]...)
	tour.Stops = stops
}

// insertBreakAt places a break activity into tour.Stops[stopIdx],
// applying the moved-break cost/driving adjustment, within-stop
// placement, and boundary alignment.
func insertBreakAt(tour *OutputTour, stopIdx int, breakTime timemodel.Duration, breakCost float64, moved *breakInsertion, reservedTW timemodel.TimeWindow) {
	stop := &tour.Stops[stopIdx]
	stopTW := stop.TimeWindow()

	activityTime := reservedTW
	if moved != nil && moved.kind == insertTransitMoved && moved.legIdx == stopIdx {
		tour.Statistics.Cost -= breakCost
		tour.Statistics.Driving -= breakTime
		activityTime = moved.breakTW
	}

	breakIdx := findBreakIndex(stop.Activities, stopTW, reservedTW)

	if stop.Kind == PointStop {
		activityTime = alignBreakToActivityBoundary(stop.Activities, breakIdx, stopTW, activityTime)
		tour.Statistics.Cost += breakCost
	} else {
		tour.Statistics.Driving -= breakTime
	}

	newActivity := OutputActivity{JobID: "break", ActivityType: "break", Time: &activityTime}

	activities := make([]OutputActivity, 0, len(stop.Activities)+1)
	activities = append(activities, stop.Activities[:breakIdx]...)
	activities = append(activities, newActivity)
	activities = append(activities, stop.Activities[breakIdx:]...)

	extendOverlappingActivities(activities, breakIdx, activityTime)
	sortActivitiesByTime(activities)

	stop.Activities = activities
}

// findBreakIndex selects the insertion index: the first activity
// (skipping existing breaks) whose interval intersects reservedTW,
// inserting after it; otherwise appends.
func findBreakIndex(activities []OutputActivity, stopTW timemodel.TimeWindow, reservedTW timemodel.TimeWindow) int {
	for idx, a := range activities {
		if a.IsBreak() {
			continue
		}
		activityTW := stopTW
		if a.Time != nil {
			activityTW = *a.Time
		}
		if activityTW.Intersects(reservedTW) {
			return idx + 1
		}
	}
	return len(activities)
}

func extendOverlappingActivities(activities []OutputActivity, breakIdx int, activityTime timemodel.TimeWindow) {
	for i := range activities {
		if i == breakIdx {
			continue
		}
		a := &activities[i]
		if a.Time == nil {
			continue
		}
		overlap, ok := a.Time.Overlapping(activityTime)
		if !ok || overlap.Duration() <= 0 {
			continue
		}
		extra := activityTime.End - overlap.End + overlap.Duration()
		extended := timemodel.NewTimeWindow(a.Time.Start, a.Time.End+extra)
		a.Time = &extended
	}
}

func sortActivitiesByTime(activities []OutputActivity) {
	sort.SliceStable(activities, func(i, j int) bool {
		a, b := activities[i].Time, activities[j].Time
		switch {
		case a != nil && b != nil:
			return a.Start < b.Start
		case a != nil:
			return false
		case b != nil:
			return true
		default:
			return false
		}
	})
}

// alignBreakToActivityBoundary slides a break that would overlap a job
// activity at the same Point stop to start at the previous activity's
// end, or failing that end at the next activity's start, preferring
// whichever fits inside the stop's own window.
func alignBreakToActivityBoundary(activities []OutputActivity, breakIdx int, stopTW timemodel.TimeWindow, breakTW timemodel.TimeWindow) timemodel.TimeWindow {
	hasOverlap := false
	for _, a := range activities {
		if a.IsBreak() || a.Time == nil {
			continue
		}
		if overlap, ok := a.Time.Overlapping(breakTW); ok && overlap.Duration() > 0 {
			hasOverlap = true
			break
		}
	}
	if !hasOverlap {
		return breakTW
	}

	duration := breakTW.Duration()

	if breakIdx > 0 && breakIdx-1 < len(activities) {
		if prev := activities[breakIdx-1]; prev.Time != nil {
			start := prev.Time.End
			if start < stopTW.Start {
				start = stopTW.Start
			}
			end := start + duration
			if end <= stopTW.End {
				return timemodel.NewTimeWindow(start, end)
			}
		}
	}

	if breakIdx < len(activities) {
		if next := activities[breakIdx]; next.Time != nil {
			end := next.Time.Start
			if end > stopTW.End {
				end = stopTW.End
			}
			start := end - duration
			if start >= stopTW.Start {
				return timemodel.NewTimeWindow(start, end)
			}
		}
	}

	return breakTW
}
