package planetgraph

import "fmt"

// ensureNode registers id in the node set if absent and stamps its wait
// self-loop. Callers must hold muVert and muAdj for writing.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = struct{}{}
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
	g.adj[id][id] = WaitWeight
}

// AddRoute inserts the undirected edge (origin, destination) with the
// given weight, overwriting any previously-recorded weight for that
// pair ("last record wins", spec.md §4.A). It auto-registers both
// endpoints as nodes, stamping their wait self-loops, and rejects the
// record outright if it would be malformed or bring the node count to
// MaxNodes.
func (g *Graph) AddRoute(origin, destination string, travelTime int64) error {
	if origin == "" || destination == "" {
		return ErrEmptyNodeID
	}
	if travelTime <= 0 {
		return ErrNonPositiveWeight
	}

	g.muVert.Lock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	defer g.muVert.Unlock()

	_, hasOrigin := g.nodes[origin]
	_, hasDest := g.nodes[destination]
	newNodes := 0
	if !hasOrigin {
		newNodes++
	}
	if !hasDest && destination != origin {
		newNodes++
	}
	if len(g.nodes)+newNodes >= MaxNodes {
		return fmt.Errorf("%w: would reach %d nodes (limit %d)", ErrTooManyNodes, len(g.nodes)+newNodes, MaxNodes)
	}

	g.ensureNode(origin)
	g.ensureNode(destination)

	if _, exists := g.adj[origin][destination]; exists && origin != destination {
		g.duplicateCount++
	}
	g.adj[origin][destination] = travelTime
	g.adj[destination][origin] = travelTime

	// A degenerate route naming a planet as its own destination must
	// never leave the mandatory wait self-loop at anything but
	// WaitWeight, so the stamp is re-asserted after the edge write
	// rather than relying on ensureNode's earlier-in-time stamp.
	g.adj[origin][origin] = WaitWeight
	g.adj[destination][destination] = WaitWeight

	return nil
}

// BuildFromRoutes constructs a fresh Graph from a finite slice of route
// records (spec.md §4.A). It fails fast with ErrTooManyNodes once the
// node count would reach MaxNodes, leaving the returned graph nil.
//
// Duplicate (origin, destination) pairs overwrite the earlier weight;
// the count of such overwrites is available afterward via
// Graph.DuplicateCount for callers that want to log or warn on it.
func BuildFromRoutes(routes []Route) (*Graph, error) {
	g := NewGraph()
	for i, r := range routes {
		if err := g.AddRoute(r.Origin, r.Destination, r.TravelTime); err != nil {
			return nil, fmt.Errorf("planetgraph: route[%d] (%s, %s): %w", i, r.Origin, r.Destination, err)
		}
	}
	return g, nil
}
