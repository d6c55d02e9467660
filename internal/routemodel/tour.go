package routemodel

// Tour is an ordered sequence [start, a1, ..., aN, end?]. start and end
// carry no job; end is optional (open VRP).
type Tour struct {
	activities []*Activity
}

// NewTour builds a tour from its ordered activities. activities[0] must be
// the start depot (Job == nil); the caller decides whether the last entry
// is an end depot or the last job (open tour).
func NewTour(activities []*Activity) *Tour {
	return &Tour{activities: activities}
}

// Total returns the number of activities in the tour, start and end
// included.
func (t *Tour) Total() int {
	return len(t.activities)
}

// Get returns the activity at idx, or nil if out of range.
func (t *Tour) Get(idx int) *Activity {
	if idx < 0 || idx >= len(t.activities) {
		return nil
	}
	return t.activities[idx]
}

// Start returns the tour's first activity (the start depot), or nil for an
// empty tour.
func (t *Tour) Start() *Activity {
	return t.Get(0)
}

// End returns the tour's last activity, or nil for an empty tour. Whether
// it is a true end depot (Job == nil) or the last job (open tour) is the
// caller's to check via Activity.IsJob.
func (t *Tour) End() *Activity {
	return t.Get(len(t.activities) - 1)
}

// HasEndDepot reports whether the tour's last activity is a jobless depot
// marker (a closed tour) as opposed to ending on the last job (open tour).
func (t *Tour) HasEndDepot() bool {
	end := t.End()
	return end != nil && !end.IsJob() && len(t.activities) > 1
}

// All returns every activity in tour order. The returned slice aliases the
// tour's backing array; callers must not retain it across mutations.
func (t *Tour) All() []*Activity {
	return t.activities
}

// AllReversed returns every activity in reverse tour order (tail to head),
// as a fresh slice.
func (t *Tour) AllReversed() []*Activity {
	out := make([]*Activity, len(t.activities))
	for i, a := range t.activities {
		out[len(t.activities)-1-i] = a
	}
	return out
}

// FirstJob returns the tour's first job activity (index 1 if it carries a
// job) and true, or (nil, false) if the tour has no jobs.
func (t *Tour) FirstJob() (*Activity, bool) {
	first := t.Get(1)
	if first == nil || !first.IsJob() {
		return nil, false
	}
	return first, true
}

// LastJobIndex returns the index of the last job-carrying activity.
// Closed tours (end depot present): total-2. Open tours: total-1. Returns
// -1 if the tour has no job activities.
func (t *Tour) LastJobIndex() int {
	total := t.Total()
	if total <= 1 {
		return -1
	}
	if t.HasEndDepot() {
		if total > 2 {
			return total - 2
		}
		return -1
	}
	return total - 1
}

// HasJobs reports whether the tour contains at least one job activity.
func (t *Tour) HasJobs() bool {
	return t.LastJobIndex() >= 0
}

// VehiclePlace constrains a depot location and its allowed departure/
// arrival interval.
type VehiclePlace struct {
	Location Location
	Earliest *float64 // nil = unconstrained
	Latest   *float64 // nil = unconstrained
}

// ActorDetail describes the actor's depot endpoints and shift-wide time
// bounds.
type ActorDetail struct {
	Start *VehiclePlace
	End   *VehiclePlace // nil => open VRP, no end depot

	TimeConstraints JobTimeConstraints
	CostSpan        RouteCostSpan
}

// Actor is the vehicle/driver combination executing a Route.
type Actor struct {
	Profile string
	Detail  ActorDetail
}

// Route ties a Tour, its executing Actor, and the route's derived state
// together. A Route exclusively owns its Tour and RouteState.
type Route struct {
	Tour  *Tour
	Actor *Actor
	State *RouteState
}

// NewRoute builds a route with a fresh, empty state (see NewRouteState).
func NewRoute(tour *Tour, actor *Actor) *Route {
	return &Route{Tour: tour, Actor: actor, State: NewRouteState()}
}
