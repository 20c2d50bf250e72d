package config

import "errors"

// Sentinel errors for configuration decoding. All map to
// job.ErrConfigurationRejected at the caller's discretion — these
// sentinels do not wrap job's own errors. config imports job (for
// MaxAutonomy and Params); job depends on planetgraph/risk/search/odds,
// not on config, so there is no import cycle.
var (
	// ErrUnreadable indicates the input could not be parsed as JSON at
	// all, or contained a field not recognized by the target shape.
	ErrUnreadable = errors.New("config: unreadable or unrecognized input")

	// ErrFieldOutOfRange indicates a recognized field failed its
	// domain check (e.g. autonomy >= MaxAutonomy, a negative day, an
	// empty required string).
	ErrFieldOutOfRange = errors.New("config: field out of range")
)
