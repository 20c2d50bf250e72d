// Package job is the thin façade spec.md §4.F describes: validate
// inputs, invoke the search engine and the probability mapper, return
// a float. It holds no state of its own and is safe to call
// concurrently over independent inputs (spec.md §5) — batch relies on
// exactly this property to run many jobs through an errgroup.
package job
