// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns all edges leaving the given vertex.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge, self-loops once.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Map adjacencyList[id] edge IDs to *Edge and sort by Edge.ID.
//
// Returns pointers to live catalog edges; treat them as read-only.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacencyList[id]))
	var eid string
	var e *Edge
	for _, eid = range g.adjacencyList[id] {
		e = g.edges[eid]
		if e.IsNil() {
			continue
		}
		out = append(out, e)
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id,
// sorted lexicographically ascending.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(id)] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency guarantees that adjacencyList[id] is initialized.
// Must be called under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]string)
	}
}
