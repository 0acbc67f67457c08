// Package tubeplanner finds the quickest way between two stations of a
// transit network and describes the journey times of the network as a whole.
//
// 🚀 What is inside?
//
//	• Graph store: named stations joined by undirected, timed connections
//	• Loaders: Excel workbooks, CSV files and Neo4j queries
//	• Route planning: Dijkstra for the fastest route, BFS for the fewest stops
//	• Journey statistics: every ordered station pair, summarised and binned
//	• Front ends: an interactive console and a read-only HTTP API
//
// Packages, leaf first:
//
//	core/       - thread-safe weighted graph primitives
//	bfs/        - breadth-first traversal with hooks and depth limits
//	dijkstra/   - single-source shortest paths over non-negative weights
//	network/    - the station graph store, sealed after loading
//	loader/     - tabular input → network, with a per-row skip report
//	planner/    - FindRoute and FewestStops, optional tree cache
//	journeys/   - all-pairs journey times and their summary
//	histogram/  - PNG/SVG rendering and terminal bars
//	shell/      - the two-prompt console
//	httpapi/    - fiber endpoints over the same planner
//	config/     - TUBE_* environment settings and the process logger
//
// Quick ASCII example:
//
//	A ──4── B ──6── C        D
//
//	FindRoute(A, C) → A -> B -> C, 10 minutes
//	FindRoute(A, D) → ErrNoPath
//
//	go run ./cmd/tubeplanner route
package tubeplanner
