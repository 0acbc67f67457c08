package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound indicates the start vertex is absent from the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil indicates a nil graph was passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath indicates PathTo was called for a vertex the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures a BFS run.
type Option func(*Options)

// Options holds the BFS configuration.
type Options struct {
	// Ctx allows cancellation between dequeues.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued; a non-nil error aborts the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth limits the walk to vertices at most MaxDepth hops away (0 = no limit).
	MaxDepth int

	err error
}

// DefaultOptions returns no-op hooks, background context and unlimited depth.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets the context checked between dequeues.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk depth. Negative values are rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result is the outcome of a BFS walk.
type Result struct {
	// Order is the visit sequence.
	Order []string
	// Depth maps each reached vertex to its hop count from the start.
	Depth map[string]int
	// Parent maps each reached vertex (except the start) to its BFS-tree parent.
	Parent map[string]string
}

// PathTo returns the hop-minimal path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
