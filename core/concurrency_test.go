// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubeplanner/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadersAndWriters mixes weight updates with reads.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(w int) {
			defer wg.Done()
			_ = g.SetEdgeWeight(eid, float64(w))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors("A")
			_ = g.Edges()
		}()
	}
	wg.Wait()
	require.Equal(t, 1, g.EdgeCount())
}
