package planetgraph

import "errors"

// Sentinel errors returned by planetgraph. Callers branch on these with
// errors.Is; messages are not part of the contract.
var (
	// ErrEmptyNodeID indicates a route record referenced a zero-length
	// origin or destination.
	ErrEmptyNodeID = errors.New("planetgraph: node ID is empty")

	// ErrNonPositiveWeight indicates a route record's travel time was
	// not a positive integer.
	ErrNonPositiveWeight = errors.New("planetgraph: travel time must be positive")

	// ErrTooManyNodes indicates the graph would reach or exceed MaxNodes
	// distinct nodes; construction is aborted.
	ErrTooManyNodes = errors.New("planetgraph: too many nodes")

	// ErrNodeNotFound indicates a query referenced a node absent from
	// the graph.
	ErrNodeNotFound = errors.New("planetgraph: node not found")
)
