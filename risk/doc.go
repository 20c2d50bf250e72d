// Package risk builds and queries the bounty-hunter risk table: the
// mapping from planet to the set of days on which a hunter is present
// there (spec.md §4.B).
//
// A risk Table never validates its planets against a planetgraph.Graph;
// a hunter record naming an unknown planet is simply inert and silently
// ignored at lookup time, per spec.md's explicit policy.
package risk
