package schedule

import (
	"routecore/internal/routemodel"
	"routecore/internal/timemodel"
)

// RebindWindows walks every activity and, for each whose currently
// resolved window equals some offset span of its place materialised
// against oldAnchor, rewrites it to that same span materialised against
// newAnchor. Activities whose window came from an absolute span, or a
// job-less depot activity, are untouched. When more than one candidate
// span would materialise to the old window, the first matching span
// (in place definition order) wins.
//
// A no-op when oldAnchor == newAnchor (the common case after most forward
// passes).
func RebindWindows(route *routemodel.Route, oldAnchor, newAnchor timemodel.Timestamp) {
	if oldAnchor == newAnchor {
		return
	}

	for _, activity := range route.Tour.All() {
		def := activity.PlaceDef()
		if def == nil {
			continue
		}

		for _, span := range def.Spans {
			if span.Kind != timemodel.Offset {
				continue
			}
			if span.Materialize(oldAnchor) != activity.Place.Time {
				continue
			}
			activity.Place.Time = span.Materialize(newAnchor)
			break
		}
	}
}
