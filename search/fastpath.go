package search

import (
	"container/heap"
	"math"

	"github.com/DiZ-02/millenium-falcon-challenge/planetgraph"
)

// shortestHopDistance runs an ordinary Dijkstra over g from origin to
// destination, ignoring autonomy and risk entirely (the wait self-loop
// is a valid, if useless, edge here). It is adapted from the teacher
// library's dijkstra package: same lazy-decrease-key min-heap, same
// visited-set early-stop shape, generalized to operate on
// planetgraph.Graph instead of core.Graph.
//
// Returns math.MaxInt64 if destination is unreachable from origin at
// all.
func shortestHopDistance(g *planetgraph.Graph, origin, destination string) (int64, error) {
	dist := map[string]int64{origin: 0}
	visited := make(map[string]bool)

	pq := make(nodePQ, 0, g.NodeCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: origin, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		if visited[u] {
			continue
		}
		visited[u] = true

		if u == destination {
			return d, nil
		}

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return 0, err
		}
		for v, w := range nbrs {
			if visited[v] {
				continue
			}
			newDist := d + w
			if cur, ok := dist[v]; !ok || newDist < cur {
				dist[v] = newDist
				heap.Push(&pq, &nodeItem{id: v, dist: newDist})
			}
		}
	}

	if d, ok := dist[destination]; ok {
		return d, nil
	}
	return math.MaxInt64, nil
}

// nodeItem and nodePQ are a minimal min-heap of (planet, distance)
// pairs, lifted from dijkstra.nodeItem/nodePQ in the teacher library.
type nodeItem struct {
	id   string
	dist int64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
