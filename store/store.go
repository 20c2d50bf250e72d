package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/DiZ-02/millenium-falcon-challenge/planetgraph"
)

// RouteStore is a read-only handle onto a SQLite database holding a
// single `routes(origin, destination, travel_time)` table.
type RouteStore struct {
	db *sql.DB
}

// Open opens the SQLite file at path in read-only mode. The core
// never writes through this handle (spec.md §6: "the store is
// read-only, the core does not write").
func Open(path string) (*RouteStore, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", path))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	return &RouteStore{db: db}, nil
}

// Close releases the underlying connection.
func (s *RouteStore) Close() error {
	return s.db.Close()
}

// Routes reads every record from the routes table.
func (s *RouteStore) Routes() ([]planetgraph.Route, error) {
	rows, err := s.db.Query("SELECT origin, destination, travel_time FROM routes")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	var out []planetgraph.Route
	for rows.Next() {
		var r planetgraph.Route
		if err := rows.Scan(&r.Origin, &r.Destination, &r.TravelTime); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return out, nil
}

// BuildGraph reads every route and folds it directly into a
// planetgraph.Graph.
func (s *RouteStore) BuildGraph() (*planetgraph.Graph, error) {
	routes, err := s.Routes()
	if err != nil {
		return nil, err
	}
	return planetgraph.BuildFromRoutes(routes)
}
