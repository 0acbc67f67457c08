package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubeplanner/network"
	"github.com/katalvlaran/tubeplanner/planner"
)

// abc builds A -4- B -6- C plus an isolated D.
func abc(t *testing.T) *network.Network {
	t.Helper()
	n := network.New()
	require.NoError(t, n.AddConnection("A", "B", 4))
	require.NoError(t, n.AddConnection("B", "C", 6))
	require.NoError(t, n.AddStation("D"))

	return n
}

func TestFindRoute_Line(t *testing.T) {
	p := planner.New(abc(t))

	r, err := p.FindRoute("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, r.Stations)
	assert.Equal(t, 10.0, r.Duration)
	assert.Equal(t, []planner.Leg{
		{From: "A", To: "B", Duration: 4},
		{From: "B", To: "C", Duration: 6},
	}, r.Legs)
	assert.Equal(t, "A -> B -> C", r.String())

	back, err := p.FindRoute("C", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, back.Stations)
	assert.Equal(t, r.Duration, back.Duration)
}

func TestFindRoute_PrefersCheaperDetour(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddConnection("Bank", "Waterloo", 12))
	require.NoError(t, n.AddConnection("Bank", "London Bridge", 2))
	require.NoError(t, n.AddConnection("London Bridge", "Waterloo", 3.5))

	r, err := planner.New(n).FindRoute("Bank", "Waterloo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bank", "London Bridge", "Waterloo"}, r.Stations)
	assert.Equal(t, 5.5, r.Duration)

	hops, err := planner.New(n).FewestStops("Bank", "Waterloo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bank", "Waterloo"}, hops.Stations)
	assert.Equal(t, 12.0, hops.Duration)
}

func TestFindRoute_Errors(t *testing.T) {
	p := planner.New(abc(t))

	_, err := p.FindRoute("A", "D")
	require.ErrorIs(t, err, planner.ErrNoPath)

	_, err = p.FindRoute("A", "Nowhere")
	require.ErrorIs(t, err, planner.ErrUnknownStation)
	assert.Contains(t, err.Error(), `"Nowhere"`)

	_, err = p.FindRoute("Here", "There")
	require.ErrorIs(t, err, planner.ErrUnknownStation)
	assert.Contains(t, err.Error(), `"Here", "There"`)

	_, err = p.FindRoute("", "A")
	require.ErrorIs(t, err, planner.ErrUnknownStation)

	_, err = p.FewestStops("D", "C")
	require.ErrorIs(t, err, planner.ErrNoPath)
	_, err = p.FewestStops("A", "Nowhere")
	require.ErrorIs(t, err, planner.ErrUnknownStation)
}

func TestFindRoute_SameStation(t *testing.T) {
	p := planner.New(abc(t))
	for _, s := range []string{"A", "D"} {
		r, err := p.FindRoute(s, s)
		require.NoError(t, err)
		assert.Equal(t, []string{s}, r.Stations)
		assert.Zero(t, r.Duration)
		assert.Empty(t, r.Legs)

		h, err := p.FewestStops(s, s)
		require.NoError(t, err)
		assert.Equal(t, []string{s}, h.Stations)
	}
}

// TestFindRoute_DurationIsLegSum checks every reachable pair of a small mesh:
// the route runs start..destination and its duration is the sum of the
// connection durations along it.
func TestFindRoute_DurationIsLegSum(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddConnection("A", "B", 1.5))
	require.NoError(t, n.AddConnection("B", "C", 2))
	require.NoError(t, n.AddConnection("A", "C", 4))
	require.NoError(t, n.AddConnection("C", "D", 0))
	require.NoError(t, n.AddConnection("D", "E", 7.25))
	require.NoError(t, n.AddConnection("B", "E", 9.5))

	p := planner.New(n)
	for _, from := range n.Stations() {
		for _, to := range n.Stations() {
			r, err := p.FindRoute(from, to)
			require.NoError(t, err)
			require.Equal(t, from, r.Stations[0])
			require.Equal(t, to, r.Stations[len(r.Stations)-1])

			var sum float64
			for i := 0; i+1 < len(r.Stations); i++ {
				d, ok := n.Duration(r.Stations[i], r.Stations[i+1])
				require.True(t, ok, "%s-%s is not a connection", r.Stations[i], r.Stations[i+1])
				sum += d
			}
			require.Equal(t, sum, r.Duration)
		}
	}

	r, err := p.FindRoute("A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, r.Stations)
	assert.Equal(t, 10.75, r.Duration)
}

func TestFindRoute_Deterministic(t *testing.T) {
	// Two equal-cost paths A-B-D and A-C-D.
	n := network.New()
	require.NoError(t, n.AddConnection("A", "B", 1))
	require.NoError(t, n.AddConnection("A", "C", 1))
	require.NoError(t, n.AddConnection("B", "D", 1))
	require.NoError(t, n.AddConnection("C", "D", 1))

	first, err := planner.New(n).FindRoute("A", "D")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		r, err := planner.New(n).FindRoute("A", "D")
		require.NoError(t, err)
		require.Equal(t, first, r)
	}
}

func TestWithCache_OnlyWhenSealed(t *testing.T) {
	n := abc(t)
	p := planner.New(n, planner.WithCache(time.Minute))

	_, err := p.FindRoute("A", "C")
	require.NoError(t, err)
	assert.Zero(t, p.CachedTrees(), "unsealed network is never cached")

	n.Seal()
	first, err := p.FindRoute("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CachedTrees())

	again, err := p.FindRoute("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CachedTrees(), "same source reuses its tree")
	assert.Equal(t, []string{"A", "B"}, again.Stations)

	_, err = p.FindRoute("C", "A")
	require.NoError(t, err)
	assert.Equal(t, 2, p.CachedTrees())

	uncached, err := planner.New(n).FindRoute("A", "C")
	require.NoError(t, err)
	assert.Equal(t, uncached, first)
}

func TestWithCache_NoExpiration(t *testing.T) {
	n := abc(t)
	n.Seal()
	p := planner.New(n, planner.WithCache(0))

	_, err := p.FindRoute("B", "C")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CachedTrees())
	assert.Zero(t, planner.New(n).CachedTrees())
}
