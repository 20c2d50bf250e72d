// Package batch runs many independent job.Solve calls concurrently.
// spec.md §5 states solves are "embarrassingly parallel" across
// independent inputs; batch is the Go-native expression of that
// property, using golang.org/x/sync/errgroup to run one goroutine per
// request, with no limit on how many run at once. It never parallelizes
// *inside* a single solve — that stays forbidden by spec.md §5's
// single-threaded-core requirement.
package batch
