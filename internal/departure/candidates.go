// Package departure advances or recedes a route's start departure to
// shave waiting time, with a critical-candidate search as the fallback
// when the straightforward target departure turns out infeasible.
package departure

import (
	"sort"

	"github.com/samber/lo"

	"routecore/internal/routemodel"
	"routecore/internal/timemodel"
)

const candidateEpsilon = 1e-6

// computeCriticalDepartures finds departure timestamps between current
// and upper where a break's offset-materialised boundary lands exactly
// on a job's fixed time-window boundary — the points where advancing
// past one more instant can flip an activity from feasible to
// infeasible. Grounded on compute_critical_departures: for every
// (offset break, job time-window boundary) pair it solves the three
// equations "departure + X = boundary" for the break's offset_end+duration,
// offset_end, and offset_start, and keeps roots (plus an epsilon
// bracket on each side) that fall strictly inside (current, upper).
func computeCriticalDepartures(route *routemodel.Route, current, upper timemodel.Timestamp) []timemodel.Timestamp {
	type breakOffset struct {
		start, end, duration float64
	}

	var breakOffsets []breakOffset
	for _, a := range route.Tour.All() {
		def := a.PlaceDef()
		if def == nil {
			continue
		}
		for _, span := range def.Spans {
			if span.Kind == timemodel.Offset {
				breakOffsets = append(breakOffsets, breakOffset{span.Start, span.End, def.Duration})
				break
			}
		}
	}
	if len(breakOffsets) == 0 {
		return nil
	}

	var jobBoundaries []float64
	for _, a := range route.Tour.All() {
		def := a.PlaceDef()
		if def == nil {
			continue
		}
		hasWindow := false
		for _, span := range def.Spans {
			if span.Kind == timemodel.Absolute {
				hasWindow = true
				break
			}
		}
		if !hasWindow {
			continue
		}
		jobBoundaries = append(jobBoundaries, a.Place.Time.Start, a.Place.Time.End)
	}

	var candidates []timemodel.Timestamp
	for _, b := range breakOffsets {
		for _, boundary := range jobBoundaries {
			pushCandidate(&candidates, boundary-b.end-b.duration, current, upper)
			pushCandidate(&candidates, boundary-b.end, current, upper)
			pushCandidate(&candidates, boundary-b.start, current, upper)
		}
	}

	sort.Float64s(candidates)
	return lo.Uniq(candidates)
}

// pushCandidate appends d-epsilon, d, and d+epsilon to candidates for
// every value that falls strictly inside (current, upper).
func pushCandidate(candidates *[]timemodel.Timestamp, d, current, upper timemodel.Timestamp) {
	for _, offset := range [3]float64{-candidateEpsilon, 0, candidateEpsilon} {
		val := d + offset
		if val > current && val < upper {
			*candidates = append(*candidates, val)
		}
	}
}
