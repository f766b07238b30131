// Package server exposes the tutor pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz    liveness probe
//	GET  /metrics    Prometheus metrics (per-Server registry)
//	POST /v1/solve   build a graph, run Dijkstra, optionally reconstruct a path
//
// /v1/solve accepts two bodies, selected by Content-Type:
//
//   - application/json: the raw prompt answers plus "source" and an optional
//     "destination" (see SolveRequest).
//   - application/yaml: a graph document (builder.Document); source and
//     destination are taken from the query string.
//
// Distances that are infinite are encoded as JSON null. Every response carries
// a request_id that also appears in the server log.
package server
