package search

import (
	"errors"

	"github.com/DiZ-02/millenium-falcon-challenge/pathstats"
)

// Sentinel errors returned by Solve. Job façades validate these
// conditions up front (spec.md §4.F) but Solve re-checks them itself,
// exactly as the teacher's dijkstra package validates its own
// preconditions rather than trusting the caller.
var (
	// ErrOriginNotFound indicates Params.Origin is absent from the graph.
	ErrOriginNotFound = errors.New("search: origin not found in graph")

	// ErrDestinationNotFound indicates Params.Destination is absent
	// from the graph.
	ErrDestinationNotFound = errors.New("search: destination not found in graph")

	// ErrInvalidAutonomy indicates Params.Autonomy is not positive.
	ErrInvalidAutonomy = errors.New("search: autonomy must be positive")

	// ErrInvalidCountdown indicates Params.Countdown is negative.
	ErrInvalidCountdown = errors.New("search: countdown must be non-negative")
)

// Params bundles the per-job inputs the search engine needs beyond the
// graph and risk table themselves.
type Params struct {
	Origin      string
	Destination string
	Autonomy    int64
	Countdown   int64

	// OnDay, if non-nil, is called once per day of the DP fill with
	// that day's frontier and the running destination bound. It is a
	// cooperative observation hook in the spirit of spec.md §5's
	// permitted cancellation-hook extension: purely informational,
	// never consulted by the algorithm itself, so its presence cannot
	// change the computed result. server uses it to stream per-day
	// reachability snapshots to a browser during a long solve.
	OnDay func(day int64, frontier map[string]pathstats.Stats, best pathstats.Stats)
}
