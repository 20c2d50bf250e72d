package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/DiZ-02/millenium-falcon-challenge/job"
	"github.com/DiZ-02/millenium-falcon-challenge/odds"
	"github.com/DiZ-02/millenium-falcon-challenge/pathstats"
	"github.com/DiZ-02/millenium-falcon-challenge/planetgraph"
	"github.com/DiZ-02/millenium-falcon-challenge/risk"
	"github.com/DiZ-02/millenium-falcon-challenge/search"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// solveRequest is the single JSON message a client sends over the
// websocket to start a streamed solve.
type solveRequest struct {
	Autonomy      int64           `json:"autonomy"`
	Countdown     int64           `json:"countdown"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	BountyHunters []risk.Sighting `json:"bounty_hunters"`
}

// Server serves a single websocket endpoint streaming per-day
// reachability snapshots for solves against a fixed graph. The graph
// is supplied once at construction and treated as read-only for the
// server's lifetime, mirroring job.Solve's own no-mutation contract.
type Server struct {
	addr string
	g    *planetgraph.Graph
	log  *slog.Logger
}

// New returns a Server that will answer solve streams against g.
func New(addr string, g *planetgraph.Graph) *Server {
	return &Server{addr: addr, g: g, log: slog.With("component", "server")}
}

// ListenAndServe registers the routes and blocks serving HTTP: a
// plain synchronous "/solve" for clients that just want the number,
// and "/ws/solve" for clients that want to watch the search unfold.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/solve", s.handleSolveSync)
	mux.HandleFunc("/ws/solve", s.handleSolve)

	if err := http.ListenAndServe(s.addr, mux); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// handleSolveSync answers a solve request with a single JSON body,
// reusing job.Solve's validation rather than duplicating it.
func (s *Server) handleSolveSync(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := job.Params{
		Autonomy:    req.Autonomy,
		Countdown:   req.Countdown,
		Origin:      req.Origin,
		Destination: req.Destination,
	}
	result, err := job.Solve(params, s.g, risk.BuildTable(req.BountyHunters))
	if err != nil {
		status := http.StatusBadRequest
		if err.Error() != "" {
			status = statusForJobError(err)
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]float64{"odds": result})
}

// statusForJobError maps job error kinds to HTTP status codes per
// spec.md §7's host-mapping guidance: 4xx for configuration problems,
// 5xx for store failures.
func statusForJobError(err error) int {
	switch {
	case errors.Is(err, job.ErrRouteStoreFailure):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	var req solveRequest
	if err := ws.ReadJSON(&req); err != nil {
		s.log.Warn("bad solve request", "error", err)
		return
	}

	rt := risk.BuildTable(req.BountyHunters)
	params := search.Params{
		Origin:      req.Origin,
		Destination: req.Destination,
		Autonomy:    req.Autonomy,
		Countdown:   req.Countdown,
		OnDay: func(day int64, frontier map[string]pathstats.Stats, best pathstats.Stats) {
			s.push(ws, snapshotFromDay(day, frontier, best))
		},
	}

	stats, err := search.Solve(s.g, rt, params)
	if err != nil {
		s.log.Error("streamed solve failed", "error", err)
		_ = ws.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	s.push(ws, finalResult{Done: true, Odds: odds.FromStats(stats)})
}

func (s *Server) push(ws *websocket.Conn, payload interface{}) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := ws.WriteJSON(payload); err != nil {
		s.log.Warn("write failed, dropping frame", "error", err)
	}
}
