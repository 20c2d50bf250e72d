package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/DiZ-02/millenium-falcon-challenge/job"
	"github.com/DiZ-02/millenium-falcon-challenge/planetgraph"
	"github.com/DiZ-02/millenium-falcon-challenge/risk"
)

// Request is a single job within a batch: its own parameters and risk
// table, sharing the batch's graph.
type Request struct {
	Params job.Params
	Risk   *risk.Table
}

// Result pairs a Request's position in the batch with its outcome.
type Result struct {
	Index int
	Odds  float64
	Err   error
}

// Solve runs every request in reqs against g concurrently, one
// goroutine per request, and returns results in the same order the
// requests were given (spec.md §5: independent solves are
// "embarrassingly parallel"; g is shared read-only across all of
// them, matching the core's own no-mutation contract).
//
// Unlike errgroup's typical all-or-nothing Wait, a single request's
// failure does not cancel its siblings: each Result carries its own
// error, because one job's ConfigurationRejected should not discard
// the rest of the batch's otherwise-valid answers.
func Solve(ctx context.Context, g *planetgraph.Graph, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				results[i] = Result{Index: i, Err: err}
				return nil
			}
			odds, err := job.Solve(req.Params, g, req.Risk)
			results[i] = Result{Index: i, Odds: odds, Err: err}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
