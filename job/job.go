package job

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/DiZ-02/millenium-falcon-challenge/odds"
	"github.com/DiZ-02/millenium-falcon-challenge/planetgraph"
	"github.com/DiZ-02/millenium-falcon-challenge/risk"
	"github.com/DiZ-02/millenium-falcon-challenge/search"
)

// MaxAutonomy is the declared upper bound on Params.Autonomy (spec.md
// §3). Autonomy must be strictly less than this value.
const MaxAutonomy int64 = 4096

// Params bundles the job-level inputs the façade validates before
// invoking the search engine: spec.md §3's "Job parameters".
type Params struct {
	Autonomy    int64
	Countdown   int64
	Origin      string
	Destination string
}

// validate applies spec.md §3/§7's configuration checks that belong to
// the façade rather than to the search engine (autonomy range, graph
// size), ahead of the origin/destination-presence check the search
// engine also performs on its own.
func (p Params) validate(g *planetgraph.Graph) error {
	if p.Autonomy <= 0 || p.Autonomy >= MaxAutonomy {
		return fmt.Errorf("%w: autonomy %d out of range [1, %d)", ErrConfigurationRejected, p.Autonomy, MaxAutonomy)
	}
	if p.Countdown < 0 {
		return fmt.Errorf("%w: countdown %d must be non-negative", ErrConfigurationRejected, p.Countdown)
	}
	if p.Origin == "" || p.Destination == "" {
		return fmt.Errorf("%w: origin/destination must be non-empty", ErrConfigurationRejected)
	}
	if g.NodeCount() >= planetgraph.MaxNodes {
		return fmt.Errorf("%w: graph has %d nodes", ErrInputTooLarge, g.NodeCount())
	}
	if !g.HasNode(p.Origin) || !g.HasNode(p.Destination) {
		return fmt.Errorf("%w: origin=%q destination=%q", ErrGraphMissingEndpoint, p.Origin, p.Destination)
	}
	return nil
}

// Solve is the single synchronous operation spec.md §4.F describes:
// validate inputs, invoke the search engine (component D), convert the
// result to a probability (component E). It is pure and idempotent
// over its three inputs — safe to call from any number of goroutines
// as long as g and rt are not mutated concurrently (spec.md §5).
func Solve(params Params, g *planetgraph.Graph, rt *risk.Table) (float64, error) {
	requestID := uuid.NewString()
	log := slog.With("request_id", requestID, "origin", params.Origin, "destination", params.Destination)

	if err := params.validate(g); err != nil {
		log.Warn("job rejected", "error", err)
		return 0.0, err
	}

	if n := g.DuplicateCount(); n > 0 {
		log.Warn("graph contains duplicate routes", "duplicate_count", n)
	}

	stats, err := search.Solve(g, rt, search.Params{
		Origin:      params.Origin,
		Destination: params.Destination,
		Autonomy:    params.Autonomy,
		Countdown:   params.Countdown,
	})
	if err != nil {
		log.Error("search failed", "error", err)
		return 0.0, err
	}

	result := odds.FromStats(stats)
	log.Info("job solved", "risk", stats.Risk, "odds", result)
	return result, nil
}
