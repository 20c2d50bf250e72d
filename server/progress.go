package server

import "github.com/DiZ-02/millenium-falcon-challenge/pathstats"

// daySnapshot is one frame pushed to the client per day of the DP
// fill.
type daySnapshot struct {
	Day          int64 `json:"day"`
	FrontierSize int   `json:"frontier_size"`
	BestRisk     int64 `json:"best_risk,omitempty"`
	BestReached  bool  `json:"best_reached"`
	Done         bool  `json:"done"`
}

// finalResult is the last frame of a solve stream, carrying the
// computed odds.
type finalResult struct {
	Done bool    `json:"done"`
	Odds float64 `json:"odds"`
}

func snapshotFromDay(day int64, frontier map[string]pathstats.Stats, best pathstats.Stats) daySnapshot {
	return daySnapshot{
		Day:          day,
		FrontierSize: len(frontier),
		BestRisk:     best.Risk,
		BestReached:  best.Reachable(),
	}
}
