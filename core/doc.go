// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface. It is the storage layer beneath the
// station network.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted), float64 weights
//   - Self-loops (WithLoops)
//   - Constant-time edge lookup via nested maps: adjacencyList[from][to] = edgeID
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Parallel edges are not stored. An undirected edge A-B and a second write of
// B-A address the same edge; callers that want last-write-wins semantics look
// the edge up with EdgeBetween and overwrite its weight with SetEdgeWeight.
//
// Determinism:
//
//	Vertices()    - sorted lexicographically.
//	Edges()       - sorted by Edge.ID.
//	Neighbors()   - sorted by Edge.ID.
//	NeighborIDs() - unique, sorted lexicographically.
//
// Core Methods:
//
//	AddVertex(id string) error                              // O(1)
//	HasVertex(id string) bool                               // O(1)
//	Vertices() []string                                     // O(V·log V)
//	VertexCount() int                                       // O(1)
//
//	AddEdge(from, to string, weight float64) (string, error) // O(1)
//	EdgeBetween(from, to string) (*Edge, error)             // O(1)
//	SetEdgeWeight(edgeID string, weight float64) error      // O(1)
//	HasEdge(from, to string) bool                           // O(1)
//	GetEdge(edgeID string) (*Edge, error)                   // O(1)
//	Edges() []*Edge                                         // O(E·log E)
//	EdgeCount() int                                         // O(1)
//
//	Neighbors(id string) ([]*Edge, error)                   // O(d·log d)
//	NeighborIDs(id string) ([]string, error)                // O(d·log d)
package core
