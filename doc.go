// Package falcon computes the Millennium Falcon's odds of reaching its
// rendezvous before the bounty hunters close in.
//
// The problem is a time-expanded shortest-risk search over a galaxy of
// planets connected by hyperspace routes: each day the ship either
// travels one route or waits on its current planet, autonomy depletes
// per travel day and resets on a wait, and every day spent on a planet
// where hunters are stationed adds one risk point. The countdown caps
// how many days the ship has before the rendezvous; the answer is the
// probability that the ship is not captured along the safest feasible
// route, reported as (1-0.1)^risk (0.0 when no route is feasible).
//
// The module is organized as a small pipeline:
//
//	planetgraph/ — the galaxy: planets and routes, undirected and weighted
//	risk/        — bounty hunter sighting schedules, keyed by planet and day
//	pathstats/   — the (risk, elapsed, autonomy) tuple and its dominance order
//	search/      — the rolling time-expanded DP that finds the best reachable stats
//	odds/        — converts a risk count into a survival probability
//	job/         — validates a request and wires search + odds into one call
//	config/      — parses the job and communication JSON shapes
//	store/       — loads a planet/route graph from a SQLite database
//	batch/       — runs many jobs against one graph concurrently
//	server/      — HTTP and websocket hosting of job.Solve
//	cmd/falcon/  — CLI: solve and batch subcommands
//	cmd/falcond/ — HTTP daemon wrapping server
//
// See SPEC_FULL.md for the full specification this module implements.
package falcon
