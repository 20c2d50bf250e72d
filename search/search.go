package search

import (
	"fmt"

	"github.com/DiZ-02/millenium-falcon-challenge/pathstats"
	"github.com/DiZ-02/millenium-falcon-challenge/planetgraph"
	"github.com/DiZ-02/millenium-falcon-challenge/risk"
)

// Solve computes the best achievable pathstats.Stats for traveling from
// Params.Origin to Params.Destination, subject to Params.Countdown and
// Params.Autonomy, against graph g and risk table rt (spec.md §4.D).
//
// A well-formed but infeasible problem is not an error: Solve returns
// pathstats.Top() (unreachable) with a nil error in that case, exactly
// as spec.md §4.D prescribes ("mathematical result of ⊤ ... is not an
// error").
func Solve(g *planetgraph.Graph, rt *risk.Table, p Params) (pathstats.Stats, error) {
	if !g.HasNode(p.Origin) {
		return pathstats.Top(), ErrOriginNotFound
	}
	if !g.HasNode(p.Destination) {
		return pathstats.Top(), ErrDestinationNotFound
	}
	if p.Autonomy <= 0 {
		return pathstats.Top(), ErrInvalidAutonomy
	}
	if p.Countdown < 0 {
		return pathstats.Top(), ErrInvalidCountdown
	}

	// Fast path: a shortest-hop distance (ignoring autonomy and risk
	// entirely) beyond the countdown makes the job infeasible outright,
	// without ever allocating the reachability table (spec.md §8,
	// property 8).
	hop, err := shortestHopDistance(g, p.Origin, p.Destination)
	if err != nil {
		return pathstats.Top(), fmt.Errorf("search: shortest-hop prefilter: %w", err)
	}
	if hop > p.Countdown {
		return pathstats.Top(), nil
	}

	r := newRunner(g, rt, p)
	r.init()
	if err := r.process(); err != nil {
		return pathstats.Top(), err
	}
	return r.best, nil
}

// runner holds the mutable state of a single Solve call: the graph and
// risk table (read-only), the rolling reachability buffer, and the
// running best-at-destination bound. Modeled on dijkstra.runner in the
// teacher library.
type runner struct {
	g  *planetgraph.Graph
	rt *risk.Table
	p  Params

	ringSize int64
	ring     []map[string]pathstats.Stats

	best pathstats.Stats
}

func newRunner(g *planetgraph.Graph, rt *risk.Table, p Params) *runner {
	ringSize := g.MaxEdgeWeight() + 1
	ring := make([]map[string]pathstats.Stats, ringSize)
	for i := range ring {
		ring[i] = make(map[string]pathstats.Stats)
	}
	return &runner{g: g, rt: rt, p: p, ringSize: ringSize, ring: ring, best: pathstats.Top()}
}

func (r *runner) row(day int64) map[string]pathstats.Stats {
	return r.ring[day%r.ringSize]
}

func (r *runner) setRow(day int64, row map[string]pathstats.Stats) {
	r.ring[day%r.ringSize] = row
}

// init seeds day 0: the ship is at the origin, with full autonomy, and
// has already accrued one risk event if a hunter is present at the
// origin on day 0 (spec.md §9, "day-zero risk at origin" open question,
// resolved as specified).
func (r *runner) init() {
	risk0 := int64(0)
	if r.rt.IsRisky(r.p.Origin, 0) {
		risk0 = 1
	}
	day0 := map[string]pathstats.Stats{
		r.p.Origin: {Risk: risk0, Elapsed: 0, RemainingAutonomy: r.p.Autonomy},
	}
	r.setRow(0, day0)

	if r.p.Destination == r.p.Origin {
		r.best = pathstats.Min(r.best, day0[r.p.Destination])
	}
}

// process runs the day-by-day fill for d = 1..Countdown inclusive,
// updating r.best after each day's destination cell is known.
func (r *runner) process() error {
	var emptyStreak int64

	for day := int64(1); day <= r.p.Countdown; day++ {
		newRow := make(map[string]pathstats.Stats)

		for _, dst := range r.g.Nodes() {
			candidate := r.bestCandidateFor(dst, day)
			if !candidate.Reachable() {
				continue
			}
			if !pathstats.Less(candidate, r.best) {
				continue // cannot improve the running destination bound; prune
			}
			newRow[dst] = candidate
		}

		r.setRow(day, newRow)

		if stats, ok := newRow[r.p.Destination]; ok {
			r.best = pathstats.Min(r.best, stats)
		}

		if r.p.OnDay != nil {
			r.p.OnDay(day, newRow, r.best)
		}

		if len(newRow) == 0 {
			emptyStreak++
			if emptyStreak >= r.ringSize {
				// Nothing reachable in the entire lookback window: no
				// future day can read a non-empty predecessor row.
				break
			}
		} else {
			emptyStreak = 0
		}

		if r.best.Reachable() && r.best.Risk == 0 {
			// No later day can improve on zero risk events; staying
			// longer only increases total_elapsed (spec.md §4.D).
			break
		}
	}

	return nil
}

// bestCandidateFor computes the dominance-min candidate for reaching
// dst exactly on day, examining every neighbor of dst (including dst's
// own wait self-loop) as a possible predecessor.
func (r *runner) bestCandidateFor(dst string, day int64) pathstats.Stats {
	best := pathstats.Top()

	nbrs, err := r.g.Neighbors(dst)
	if err != nil {
		return best
	}

	riskInc := int64(0)
	if r.rt.IsRisky(dst, day) {
		riskInc = 1
	}

	for src, w := range nbrs {
		if day-w < 0 {
			continue
		}
		predecessor, ok := r.row(day - w)[src]
		if !ok {
			continue
		}

		var availableAutonomy int64
		if src == dst {
			// Waiting a day at dst refuels fully; risk/elapsed carry
			// over from the waiting predecessor unchanged.
			availableAutonomy = r.p.Autonomy
		} else {
			if predecessor.RemainingAutonomy < w {
				continue // not enough fuel to make this hop
			}
			availableAutonomy = predecessor.RemainingAutonomy - w
		}

		candidate := pathstats.Stats{
			Risk:              predecessor.Risk + riskInc,
			Elapsed:           predecessor.Elapsed + w,
			RemainingAutonomy: availableAutonomy,
		}
		best = pathstats.Min(best, candidate)
	}

	return best
}
