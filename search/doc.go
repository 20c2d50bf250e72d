// Package search implements the time-expanded reachability search that
// is the heart of the courier-scheduling engine (spec.md §4.D).
//
// The state space is (day, planet); each cell holds the single
// non-dominated pathstats.Stats for reaching that planet exactly on
// that day, or is unreached. Solve fills this table day by day from an
// initial condition at the origin, examining — for every planet reached
// on day d — every neighbor (including the planet's own wait
// self-loop) that could have produced it on day d-w, and keeps a
// running best-at-destination value used both as the final answer and
// as a pruning bound during the fill (spec.md §4.D, "global pruning").
//
// Before running the full day-by-day fill, Solve runs a cheap
// Dijkstra-style shortest-hop pass (ignoring autonomy and risk
// entirely) from origin to destination; if that distance alone exceeds
// countdown, no schedule can possibly arrive in time and Solve returns
// the unreachable sentinel without ever allocating the reachability
// table (spec.md §8, testable property 8).
package search
