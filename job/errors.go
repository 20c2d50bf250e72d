package job

import "errors"

// Sentinel errors raised by the job façade, one per error kind named
// in spec.md §7. Callers branch on these with errors.Is.
var (
	// ErrConfigurationRejected covers field-out-of-range, unknown-field,
	// or empty-required-string conditions caught before a search ever
	// starts.
	ErrConfigurationRejected = errors.New("job: configuration rejected")

	// ErrInputTooLarge indicates the graph handed to Solve already
	// has planetgraph.MaxNodes nodes or more; Solve re-checks this even though
	// planetgraph.BuildFromRoutes should have rejected it first.
	ErrInputTooLarge = errors.New("job: input too large")

	// ErrGraphMissingEndpoint indicates origin or destination is absent
	// from the graph.
	ErrGraphMissingEndpoint = errors.New("job: origin or destination missing from graph")

	// ErrRouteStoreFailure indicates the route collaborator could not
	// deliver routes. Solve itself never talks to a store directly —
	// this sentinel exists for hosts (store, batch) to wrap their own
	// failures in a vocabulary Solve's callers already understand.
	ErrRouteStoreFailure = errors.New("job: route store failure")
)
