// Package routemodel holds the route/tour/activity data model: the
// entities scheduling mutates and the state a route carries between
// updates. Plain structs, small accessor methods — built
// around VRP schedule semantics rather than ride-sharing coordinates.
package routemodel

import (
	"github.com/google/uuid"

	"routecore/internal/timemodel"
)

// Location is an opaque handle into the caller's own geo/matrix provider.
// The core never interprets it beyond equality and passing it to a
// collab.TransportCost implementation.
type Location int

// RouteCostSpan selects which portion of a route counts toward its cost
// and which timestamp anchors that route's offset-relative time spans.
// Default is DepotToDepot.
type RouteCostSpan int

const (
	DepotToDepot RouteCostSpan = iota
	DepotToLastJob
	FirstJobToDepot
	FirstJobToLastJob
)

func (s RouteCostSpan) String() string {
	switch s {
	case DepotToLastJob:
		return "depot_to_last_job"
	case FirstJobToDepot:
		return "first_job_to_depot"
	case FirstJobToLastJob:
		return "first_job_to_last_job"
	default:
		return "depot_to_depot"
	}
}

// AnchorsOnFirstJob reports whether this cost span's offset anchor is the
// first job's arrival rather than the start departure.
func (s RouteCostSpan) AnchorsOnFirstJob() bool {
	return s == FirstJobToDepot || s == FirstJobToLastJob
}

// JobTimeConstraints holds the per-shift earliest-first / latest-last hard
// bounds consulted by constraint evaluation. Either field may be unset
// (nil).
type JobTimeConstraints struct {
	EarliestFirst *timemodel.Timestamp
	LatestLast    *timemodel.Timestamp
}

// HasAny reports whether any bound is configured.
func (c JobTimeConstraints) HasAny() bool {
	return c.EarliestFirst != nil || c.LatestLast != nil
}

// PlaceDef is an immutable, shared place definition: a location, the
// service duration required there, and the candidate time spans a job's
// activity at this place may resolve its window from. The owning Activity
// remembers the chosen place via PlaceIdx; the chosen span is not stored,
// and WindowRebinder finds it again by matching the resolved window
// against each offset span.
type PlaceDef struct {
	Location Location
	Duration timemodel.Duration
	Spans    []timemodel.TimeSpan
}

// Job is an immutable, shared job definition. A Job owns the candidate
// PlaceDefs an Activity built against it may pick from: places reference
// shared, immutable place definitions via an index into their job's
// place list.
type Job struct {
	ID     string
	Tag    string
	Places []PlaceDef
	// TargetNearestDistance, when set, is the threshold consulted by the
	// NearestDistance feature.
	TargetNearestDistance *timemodel.Distance
}

// NewJob builds a Job with a generated ID, stamped via google/uuid the
// way a synthetic entity ID is generated for any shared record.
func NewJob(tag string, places ...PlaceDef) *Job {
	return &Job{ID: uuid.New().String(), Tag: tag, Places: places}
}

// Schedule is an activity's resolved arrival/departure pair.
type Schedule struct {
	Arrival   timemodel.Timestamp
	Departure timemodel.Timestamp
}

// CommuteInfo records an auxiliary backward/forward travel leg attached to
// an activity (e.g. parking-to-door walk). The core carries it on the
// Activity but does not read it, and never computes commute legs itself.
type CommuteInfo struct {
	BackwardLocation *Location
	ForwardLocation  *Location
}

// ActivityPlace is the mutable, route-owned resolution of a PlaceDef: the
// currently materialised time window (rewritten by WindowRebinder during
// schedule updates) alongside the immutable location/duration it was
// derived from.
type ActivityPlace struct {
	Location Location
	Duration timemodel.Duration
	Time     timemodel.TimeWindow
}

// Activity is one stop in a Tour: either a job visit (Job non-nil) or a
// depot/start/end marker (Job nil).
type Activity struct {
	Job      *Job
	PlaceIdx int
	Place    ActivityPlace
	Schedule Schedule
	Commute  *CommuteInfo
}

// IsJob reports whether this activity carries a job (as opposed to being
// the tour's start/end depot marker).
func (a *Activity) IsJob() bool {
	return a.Job != nil
}

// PlaceDef returns the immutable place definition this activity's
// resolved window was chosen from, or nil for depot activities.
func (a *Activity) PlaceDef() *PlaceDef {
	if a.Job == nil || a.PlaceIdx < 0 || a.PlaceIdx >= len(a.Job.Places) {
		return nil
	}
	return &a.Job.Places[a.PlaceIdx]
}
