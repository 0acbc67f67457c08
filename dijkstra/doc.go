// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core.Graph values with non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap with lazy decrease-key: improved distances are
//     pushed as new entries and stale entries are skipped when popped.
//   - Supports optional path reconstruction, distance caps, and "impassable"
//     edge thresholds.
//
// Determinism:
//
//   - Neighbors are relaxed in Edge.ID order and the heap breaks distance ties
//     by vertex ID, so a fixed graph always yields the same predecessor map.
//     Among several equal-cost paths the first one discovered wins.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
//     ErrNegativeWeight: input validation, in that order.
//   - ErrBadMaxDistance, ErrBadInfThreshold: invalid options.
//   - ErrUnreachable: PathTo asked for a vertex the run never reached.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//	func PathTo(prev map[string]string, source, target string) ([]string, error)
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	path, err := dijkstra.PathTo(prev, "A", "C")
//
// Thread safety:
//
//   - Dijkstra only reads g. Concurrent runs on a graph that is not being
//     mutated are safe.
package dijkstra
