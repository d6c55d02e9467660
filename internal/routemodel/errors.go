package routemodel

import "errors"

// ErrMissingStart is the structural-invariant-failure sentinel the
// scheduling packages panic with when a forward/backward pass is run
// against a route whose tour has no start activity. This should never
// happen for a well-formed route — it exists only to catch internal bugs.
var ErrMissingStart = errors.New("routemodel: route has no start activity")
