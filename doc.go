// Package pathtutor is a step-by-step tutor for Dijkstra's shortest-path
// algorithm on small, user-described weighted graphs.
//
// 🚀 What is pathtutor?
//
//	A library plus a command that:
//		• Builds a graph from raw answers or a YAML document, fail-fast
//		• Symmetrizes on request (conflicting weights resolve to the minimum)
//		• Runs Dijkstra with a full trace of explorations and relaxations
//		• Breaks distance ties by node label, so every run is reproducible
//		• Reconstructs the shortest path to any reachable destination
//		• Narrates each step with distance tables in the terminal
//		• Serves the same pipeline over HTTP
//
// Under the hood, everything is organized under these subpackages:
//
//	core/           thread-safe weighted Graph, edges and symmetrization
//	builder/        parsing and validation of user input and YAML documents
//	dijkstra/       shortest-path engine, trace events and path reconstruction
//	render/         number formatting, narration and lipgloss distance tables
//	server/         chi HTTP adapter (POST /v1/solve)
//	internal/       TOML config and logrus/lumberjack logging
//	cmd/pathtutor   interactive CLI, file mode and service mode
//
// Quick ASCII example:
//
//	    A ──1── B
//	     \      │
//	      5     2
//	       \    │
//	        ─── C
//
//	from "A": B = 1, C = 3 via B (the direct edge costs 5).
//
//	go install github.com/katalvlaran/pathtutor/cmd/pathtutor@latest
package pathtutor
