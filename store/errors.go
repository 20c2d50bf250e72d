package store

import "errors"

// ErrOpenFailed wraps any failure to open or ping the underlying
// SQLite database. Callers that need job.ErrRouteStoreFailure's
// vocabulary wrap this themselves; store stays independent of job to
// avoid a needless import.
var ErrOpenFailed = errors.New("store: failed to open routes database")

// ErrQueryFailed wraps any failure while reading the routes table.
var ErrQueryFailed = errors.New("store: failed to read routes")
