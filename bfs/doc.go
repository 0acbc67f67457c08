// Package bfs explores a core.Graph breadth-first.
//
// What
//
//   - Visits vertices in non-decreasing hop count from a start vertex.
//   - Result carries Order (visit sequence), Depth (hops from start) and
//     Parent (BFS-tree predecessor), plus PathTo for hop-minimal paths.
//   - Hooks: WithOnVisit may abort the walk with an error.
//   - WithMaxDepth bounds the walk; WithContext allows cancellation.
//
// Why
//
//   - Reachability and connected components of the station network.
//   - Fewest-stops routes, where every connection counts as one hop.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues them in that order,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
