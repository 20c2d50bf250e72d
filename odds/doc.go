// Package odds converts a pathstats.Stats risk count into the
// probability the Falcon makes the rendezvous undetected (spec.md
// §4.E). It is a single pure function with no state, kept as its own
// package because job and server both need to report odds independent
// of which search strategy produced the risk count.
package odds
