// Package planetgraph provides the adjacency-map graph representation used
// by the courier-scheduling search engine, plus the route-ingestion builder
// that turns a stream of route records into one.
//
// Unlike the teacher library's core.Graph, this Graph is deliberately
// narrow: undirected only, unweighted-multi-edges forbidden, exactly one
// weight per (origin, destination) pair, and a mandatory self-loop of
// weight WaitWeight on every node (the "wait a day to refuel" action).
// These restrictions come straight from the domain: interstellar routes
// are symmetric and have one travel time, and every planet is always
// reachable from itself by waiting.
//
// Graph operations are safe for concurrent read access; BuildFromRoutes
// and AddRoute acquire an exclusive lock. A *Graph is treated as immutable
// once handed to the search engine (spec: "the graph ... [is] treated as
// immutable during search").
package planetgraph
