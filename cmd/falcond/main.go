// Command falcond hosts the live search dashboard (server package):
// it loads a routes database and serves solve requests over HTTP and
// websocket. This binary has no counterpart in the original Python
// project — see SPEC_FULL.md §6 for why it was added — but follows
// the same .env-loading convention as
// haricheung-agentic-shell/cmd/agsh/main.go.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/DiZ-02/millenium-falcon-challenge/server"
	"github.com/DiZ-02/millenium-falcon-challenge/store"
)

func main() {
	_ = godotenv.Load(".env")

	addr := flag.String("addr", envOr("FALCOND_ADDR", ":8080"), "HTTP listen address")
	routesDB := flag.String("routes", envOr("FALCOND_ROUTES_DB", "routes.db"), "path to the routes SQLite database")
	flag.Parse()

	s, err := store.Open(*routesDB)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer s.Close()

	g, err := s.BuildGraph()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	slog.Info("falcond starting", "addr", *addr, "routes_db", *routesDB, "nodes", g.NodeCount())
	if err := server.New(*addr, g).ListenAndServe(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
