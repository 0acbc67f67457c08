// Package journeys aggregates shortest journey times over every ordered pair
// of stations.
//
// The output of Durations is the raw distribution the histogram consumes:
// one entry per reachable ordered pair (s1, s2) with s1 != s2, stations
// walked in the order given to New with s1 as the outer loop. A connected
// pair therefore contributes two equal entries. Unreachable pairs add
// nothing.
package journeys

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/tubeplanner/planner"
)

// ErrNoData indicates a summary over an empty distribution.
var ErrNoData = errors.New("journeys: no journey times to summarize")

// RouteFinder is the planner surface the aggregator needs.
type RouteFinder interface {
	FindRoute(start, destination string) (planner.Route, error)
}

// Report is the outcome of one aggregation run.
type Report struct {
	// Durations holds one total duration per reachable ordered pair.
	Durations []float64 `json:"durations"`
	// Pairs is the number of ordered pairs attempted.
	Pairs int `json:"pairs"`
	// Unreachable is the number of pairs skipped with planner.ErrNoPath.
	Unreachable int `json:"unreachable"`
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger for run diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.log = l
		}
	}
}

// Aggregator walks all ordered station pairs through a RouteFinder.
type Aggregator struct {
	planner  RouteFinder
	stations []string
	log      *slog.Logger
}

// New returns an Aggregator over stations. The slice is copied; its order
// fixes the order of the output.
func New(planner RouteFinder, stations []string, opts ...Option) *Aggregator {
	a := &Aggregator{
		planner:  planner,
		stations: append([]string(nil), stations...),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Durations returns the journey time of every reachable ordered pair.
func (a *Aggregator) Durations(ctx context.Context) ([]float64, error) {
	rep, err := a.Run(ctx)
	if err != nil {
		return nil, err
	}

	return rep.Durations, nil
}

// Run performs the aggregation and reports pair counts alongside the
// durations.
//
// Errors:
//   - ctx.Err() if the context is cancelled; checked between pairs.
//   - any planner error other than planner.ErrNoPath, wrapped with the pair.
//
// Complexity: O(V²) planner queries.
func (a *Aggregator) Run(ctx context.Context) (*Report, error) {
	n := len(a.stations)
	rep := &Report{Durations: make([]float64, 0, n*(n-1))}

	for _, s1 := range a.stations {
		for _, s2 := range a.stations {
			if s1 == s2 {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			rep.Pairs++
			r, err := a.planner.FindRoute(s1, s2)
			if errors.Is(err, planner.ErrNoPath) {
				rep.Unreachable++
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("journeys: %q -> %q: %w", s1, s2, err)
			}
			rep.Durations = append(rep.Durations, r.Duration)
		}
	}

	a.log.Info("journey times aggregated",
		slog.Int("stations", n),
		slog.Int("pairs", rep.Pairs),
		slog.Int("reachable", len(rep.Durations)),
		slog.Int("unreachable", rep.Unreachable))

	return rep, nil
}
