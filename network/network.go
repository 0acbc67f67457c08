// Package network is the station graph store: named stations joined by
// undirected, timed connections, kept on top of a weighted core.Graph.
//
// Stations are enumerated in insertion order, which is the stable order the
// journey aggregator relies on. Writing a connection twice replaces its
// duration. Once sealed, the network rejects further mutation.
package network

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/tubeplanner/bfs"
	"github.com/katalvlaran/tubeplanner/core"
)

// Sentinel errors for network mutations.
var (
	// ErrEmptyStation indicates an empty station name.
	ErrEmptyStation = errors.New("network: station name is empty")

	// ErrBadDuration indicates a NaN, infinite or negative duration.
	ErrBadDuration = errors.New("network: duration must be a finite non-negative number")

	// ErrSelfConnection indicates a connection from a station to itself.
	ErrSelfConnection = errors.New("network: connection endpoints must be distinct")

	// ErrSealed indicates a mutation after Seal.
	ErrSealed = errors.New("network: network is sealed")
)

// Connection is an undirected, timed link between two stations.
type Connection struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Duration float64 `json:"duration"`
}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger used for mutation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// Network is the in-memory station graph.
// It is safe for concurrent reads; mutations are serialized by mu.
type Network struct {
	mu     sync.RWMutex
	g      *core.Graph
	order  []string
	sealed bool
	log    *slog.Logger
}

// New returns an empty, unsealed Network.
func New(opts ...Option) *Network {
	n := &Network{
		g:   core.NewGraph(core.WithWeighted()),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// AddStation registers name. Adding an existing station is a no-op.
func (n *Network) AddStation(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.addStationLocked(name)
}

func (n *Network) addStationLocked(name string) error {
	if n.sealed {
		return ErrSealed
	}
	if name == "" {
		return ErrEmptyStation
	}
	if n.g.HasVertex(name) {
		return nil
	}
	if err := n.g.AddVertex(name); err != nil {
		return fmt.Errorf("network: add station %q: %w", name, err)
	}
	n.order = append(n.order, name)

	return nil
}

// AddConnection links a and b with the given duration in minutes.
// Missing stations are registered first, a before b. If the pair is already
// connected (in either direction) the duration is replaced.
func (n *Network) AddConnection(a, b string, duration float64) error {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return fmt.Errorf("%w: %v", ErrBadDuration, duration)
	}
	if a == "" || b == "" {
		return ErrEmptyStation
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfConnection, a)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.addStationLocked(a); err != nil {
		return err
	}
	if err := n.addStationLocked(b); err != nil {
		return err
	}

	if e, err := n.g.EdgeBetween(a, b); err == nil {
		n.log.Debug("connection overwritten",
			slog.String("a", a), slog.String("b", b),
			slog.Float64("old", e.Weight), slog.Float64("new", duration))
		return n.g.SetEdgeWeight(e.ID, duration)
	}
	if _, err := n.g.AddEdge(a, b, duration); err != nil {
		return fmt.Errorf("network: connect %q-%q: %w", a, b, err)
	}

	return nil
}

// Seal freezes the network. Subsequent mutations return ErrSealed.
func (n *Network) Seal() {
	n.mu.Lock()
	n.sealed = true
	n.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (n *Network) Sealed() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.sealed
}

// Stations returns all station names in insertion order.
func (n *Network) Stations() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, len(n.order))
	copy(out, n.order)

	return out
}

// HasStation reports whether name is a registered station.
func (n *Network) HasStation(name string) bool {
	return n.g.HasVertex(name)
}

// StationCount returns the number of stations.
func (n *Network) StationCount() int {
	return n.g.VertexCount()
}

// ConnectionCount returns the number of undirected connections.
func (n *Network) ConnectionCount() int {
	return n.g.EdgeCount()
}

// Duration returns the duration of the direct connection a-b, if any.
func (n *Network) Duration(a, b string) (float64, bool) {
	e, err := n.g.EdgeBetween(a, b)
	if err != nil {
		return 0, false
	}

	return e.Weight, true
}

// Connections returns every connection in the order it was first added.
func (n *Network) Connections() []Connection {
	edges := n.g.Edges()
	out := make([]Connection, 0, len(edges))
	for _, e := range edges {
		out = append(out, Connection{A: e.From, B: e.To, Duration: e.Weight})
	}

	return out
}

// Graph exposes the underlying weighted graph for read-only algorithms.
// Callers must not mutate it.
func (n *Network) Graph() *core.Graph {
	return n.g
}

// Components partitions the stations into connected islands.
// Islands are ordered by their first station's insertion position, and
// stations inside an island follow insertion order too.
func (n *Network) Components() ([][]string, error) {
	stations := n.Stations()
	index := make(map[string]int, len(stations))
	for i, s := range stations {
		index[s] = i
	}

	seen := make(map[string]bool, len(stations))
	var out [][]string
	for _, s := range stations {
		if seen[s] {
			continue
		}
		res, err := bfs.BFS(n.g, s)
		if err != nil {
			return nil, fmt.Errorf("network: components from %q: %w", s, err)
		}
		island := make([]string, 0, len(res.Order))
		for _, id := range res.Order {
			seen[id] = true
			island = append(island, id)
		}
		sort.Slice(island, func(i, j int) bool { return index[island[i]] < index[island[j]] })
		out = append(out, island)
	}

	return out, nil
}
