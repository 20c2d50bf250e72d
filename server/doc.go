// Package server hosts a websocket endpoint that streams the search
// engine's per-day reachability snapshots to a browser while a solve
// runs. It has no counterpart in the original Python implementation;
// it is grounded on niceyeti-tabular/server's upgrade-then-publish
// shape (websocket.Upgrader, frames written synchronously from the
// handler, a write deadline on every send) applied to
// search.Params.OnDay instead of a reinforcement-learning training
// loop.
package server
