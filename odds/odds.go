package odds

import (
	"math"

	"github.com/DiZ-02/millenium-falcon-challenge/pathstats"
)

// PFail is the fixed per-risk-event probability of detection (spec.md
// §4.E). It is a domain constant, not configurable per job.
const PFail = 0.1

// FromRisk converts a risk-event count into the probability the
// schedule completes undetected: (1 - PFail) ^ risk.
func FromRisk(risk int64) float64 {
	return math.Pow(1-PFail, float64(risk))
}

// FromStats converts a pathstats.Stats produced by the search engine
// into the final odds figure, mapping the unreachable sentinel to 0.0
// exactly as spec.md §4.E prescribes ("if best_at_destination is ⊤,
// the result is 0.0").
func FromStats(s pathstats.Stats) float64 {
	if !s.Reachable() {
		return 0.0
	}
	return FromRisk(s.Risk)
}
