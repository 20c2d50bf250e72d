package planetgraph

// SameComponent reports whether destination is reachable from origin by
// any sequence of routes (ignoring weights, autonomy and countdown
// entirely) using a plain breadth-first walk, adapted from the teacher
// library's bfs package. It is a cheap connectivity diagnostic: a "no"
// answer means odds is 0.0 regardless of countdown or autonomy. Neither
// job.Solve nor search.Solve calls it.
//
// Returns ErrNodeNotFound if either endpoint is absent from the graph.
func (g *Graph) SameComponent(origin, destination string) (bool, error) {
	if !g.HasNode(origin) {
		return false, ErrNodeNotFound
	}
	if !g.HasNode(destination) {
		return false, ErrNodeNotFound
	}
	if origin == destination {
		return true, nil
	}

	visited := map[string]bool{origin: true}
	queue := []string{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return false, err
		}
		for next := range nbrs {
			if next == cur || visited[next] {
				continue // skip the wait self-loop and already-seen nodes
			}
			if next == destination {
				return true, nil
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return false, nil
}

// ComponentSizes returns the size of every connected component in the
// graph, ignoring the mandatory wait self-loops. Useful as a one-shot
// diagnostic on a freshly built graph (e.g. logging at Warn when the
// graph is unexpectedly fragmented).
func (g *Graph) ComponentSizes() []int {
	g.muVert.RLock()
	all := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		all = append(all, id)
	}
	g.muVert.RUnlock()

	seen := make(map[string]bool, len(all))
	var sizes []int
	for _, start := range all {
		if seen[start] {
			continue
		}
		size := 0
		queue := []string{start}
		seen[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			size++
			nbrs, _ := g.Neighbors(cur)
			for next := range nbrs {
				if next == cur || seen[next] {
					continue
				}
				seen[next] = true
				queue = append(queue, next)
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}
