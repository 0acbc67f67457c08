// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/EdgeBetween/SetEdgeWeight/HasEdge/
//       GetEdge/Edges/EdgeCount. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge between from and to and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge on the same (from,to) slot.
//  4. Generate eid atomically, store the edge, link adjacency.
//  5. If undirected and from != to, mirror adjacency to→from.
//
// Errors:
//   - ErrEmptyVertexID: either endpoint is "".
//   - ErrBadWeight: weight is NaN/±Inf, or non-zero on an unweighted graph.
//   - ErrLoopNotAllowed: from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed: an edge already occupies (from,to).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if err := g.checkWeight(weight); err != nil {
		return "", err
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacencyList[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.edges[eid] = e
	ensureAdjacency(g, from)
	g.adjacencyList[from][to] = eid
	if !e.Directed && from != to {
		ensureAdjacency(g, to)
		g.adjacencyList[to][from] = eid
	}

	return eid, nil
}

// EdgeBetween returns the edge occupying the (from,to) slot.
// In undirected graphs the lookup is symmetric: EdgeBetween(a,b) and
// EdgeBetween(b,a) return the same *Edge.
//
// Errors:
//   - ErrEdgeNotFound: no edge connects from→to.
//
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// SetEdgeWeight overwrites the weight of an existing edge in place.
//
// Errors:
//   - ErrBadWeight: same policy as AddEdge.
//   - ErrEdgeNotFound: edgeID is not in the catalog.
//
// Complexity: O(1).
func (g *Graph) SetEdgeWeight(edgeID string, weight float64) error {
	if err := g.checkWeight(weight); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// HasEdge reports whether an edge from→to exists.
// Works both ways for undirected graphs since adjacency is mirrored.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacencyList[from][to]

	return ok
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc.
// IDs are compared numerically so "e2" sorts before "e10".
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges. An undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// checkWeight applies the weight policy shared by AddEdge and SetEdgeWeight.
func (g *Graph) checkWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}

	return nil
}

// nextEdgeID returns a new unique textual edge ID.
// Uses a monotonic uint64 counter incremented atomically.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric part of an edge ID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)

	return n
}

// sortEdges orders edges by insertion sequence.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeSeq(es[i].ID) < edgeSeq(es[j].ID) })
}
