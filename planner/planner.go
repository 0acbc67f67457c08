// Package planner answers "how do I get from A to B" over a station network.
//
// FindRoute minimises total journey time with Dijkstra; FewestStops
// minimises the number of connections with BFS. Both return the full
// station sequence plus per-leg durations, and both report failures with two
// sentinels: ErrUnknownStation and ErrNoPath.
//
// Shortest-path trees can be memoised per source with WithCache. The cache
// is consulted only once the network is sealed, so a tree never outlives the
// graph it was computed on.
package planner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/tubeplanner/bfs"
	"github.com/katalvlaran/tubeplanner/dijkstra"
	"github.com/katalvlaran/tubeplanner/network"
)

var (
	// ErrUnknownStation indicates the start or destination is not in the network.
	ErrUnknownStation = errors.New("planner: invalid station names")

	// ErrNoPath indicates the destination is unreachable from the start.
	ErrNoPath = errors.New("planner: no path found between the specified stations")
)

// Leg is one connection travelled along a Route.
type Leg struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Duration float64 `json:"duration"`
}

// Route is an ordered station sequence from start to destination inclusive.
// Duration is the sum of the leg durations.
type Route struct {
	Stations []string `json:"stations"`
	Legs     []Leg    `json:"legs"`
	Duration float64  `json:"duration"`
}

// String joins the stations with arrows: "A -> B -> C".
func (r Route) String() string {
	return strings.Join(r.Stations, " -> ")
}

// Option configures a Planner.
type Option func(*Planner)

// WithCache memoises shortest-path trees per source station for ttl.
// A ttl of zero or less keeps trees until the process exits.
func WithCache(ttl time.Duration) Option {
	return func(p *Planner) {
		if ttl <= 0 {
			p.trees = cache.New(cache.NoExpiration, 0)
			return
		}
		p.trees = cache.New(ttl, 2*ttl)
	}
}

// WithLogger sets the logger for query diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// Planner computes routes over a network. It holds no per-query state and
// is safe for concurrent use once the network is sealed.
type Planner struct {
	net   *network.Network
	trees *cache.Cache
	log   *slog.Logger
}

// New returns a Planner over net.
func New(net *network.Network, opts ...Option) *Planner {
	p := &Planner{
		net: net,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// CachedTrees returns the number of memoised shortest-path trees.
func (p *Planner) CachedTrees() int {
	if p.trees == nil {
		return 0
	}

	return p.trees.ItemCount()
}

// tree is one single-source shortest-path result.
type tree struct {
	dist map[string]float64
	prev map[string]string
}

// FindRoute returns the minimum-duration route from start to destination.
//
// Errors:
//   - ErrUnknownStation: start and/or destination is not a station.
//   - ErrNoPath: destination is unreachable from start.
//
// start == destination yields a single-station route with zero duration.
func (p *Planner) FindRoute(start, destination string) (Route, error) {
	if err := p.checkStations(start, destination); err != nil {
		return Route{}, err
	}
	if start == destination {
		return Route{Stations: []string{start}, Legs: []Leg{}}, nil
	}

	t, err := p.tree(start)
	if err != nil {
		return Route{}, err
	}
	if math.IsInf(t.dist[destination], 1) {
		return Route{}, fmt.Errorf("%w: %q -> %q", ErrNoPath, start, destination)
	}

	path, err := dijkstra.PathTo(t.prev, start, destination)
	if err != nil {
		return Route{}, fmt.Errorf("planner: rebuild path %q -> %q: %w", start, destination, err)
	}

	return p.route(path)
}

// FewestStops returns the route with the fewest connections, ignoring
// durations. Ties are broken by station name.
func (p *Planner) FewestStops(start, destination string) (Route, error) {
	if err := p.checkStations(start, destination); err != nil {
		return Route{}, err
	}

	res, err := bfs.BFS(p.net.Graph(), start)
	if err != nil {
		return Route{}, fmt.Errorf("planner: walk from %q: %w", start, err)
	}
	path, err := res.PathTo(destination)
	if errors.Is(err, bfs.ErrNoPath) {
		return Route{}, fmt.Errorf("%w: %q -> %q", ErrNoPath, start, destination)
	}
	if err != nil {
		return Route{}, err
	}

	return p.route(path)
}

func (p *Planner) checkStations(start, destination string) error {
	var missing []string
	if !p.net.HasStation(start) {
		missing = append(missing, fmt.Sprintf("%q", start))
	}
	if destination != start && !p.net.HasStation(destination) {
		missing = append(missing, fmt.Sprintf("%q", destination))
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not in network", ErrUnknownStation, strings.Join(missing, ", "))
	}

	return nil
}

// tree returns the shortest-path tree rooted at source, from cache if allowed.
func (p *Planner) tree(source string) (*tree, error) {
	cacheable := p.trees != nil && p.net.Sealed()
	if cacheable {
		if v, ok := p.trees.Get(source); ok {
			return v.(*tree), nil
		}
	}

	dist, prev, err := dijkstra.Dijkstra(p.net.Graph(), dijkstra.Source(source), dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("planner: shortest paths from %q: %w", source, err)
	}
	t := &tree{dist: dist, prev: prev}
	if cacheable {
		p.trees.SetDefault(source, t)
		p.log.Debug("shortest-path tree cached", slog.String("source", source))
	}

	return t, nil
}

// route turns a station sequence into a Route, summing leg durations.
func (p *Planner) route(path []string) (Route, error) {
	r := Route{Stations: path, Legs: make([]Leg, 0, len(path)-1)}
	for i := 0; i+1 < len(path); i++ {
		d, ok := p.net.Duration(path[i], path[i+1])
		if !ok {
			return Route{}, fmt.Errorf("planner: no connection %q -> %q on computed path", path[i], path[i+1])
		}
		r.Legs = append(r.Legs, Leg{From: path[i], To: path[i+1], Duration: d})
		r.Duration += d
	}

	return r, nil
}
