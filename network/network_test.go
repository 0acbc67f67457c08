package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tubeplanner/network"
)

type NetworkSuite struct {
	suite.Suite
	n *network.Network
}

func (s *NetworkSuite) SetupTest() {
	s.n = network.New()
}

func (s *NetworkSuite) TestAddStationIdempotent() {
	require := require.New(s.T())
	require.NoError(s.n.AddStation("Oxford Circus"))
	require.NoError(s.n.AddStation("Oxford Circus"))
	require.Equal(1, s.n.StationCount())
	require.True(s.n.HasStation("Oxford Circus"))
	require.False(s.n.HasStation("oxford circus"), "names are case-sensitive")

	require.ErrorIs(s.n.AddStation(""), network.ErrEmptyStation)
}

func (s *NetworkSuite) TestConnectionIsSymmetric() {
	require := require.New(s.T())
	require.NoError(s.n.AddConnection("A", "B", 4))

	ab, ok := s.n.Duration("A", "B")
	require.True(ok)
	ba, ok := s.n.Duration("B", "A")
	require.True(ok)
	require.Equal(4.0, ab)
	require.Equal(ab, ba)
	require.Equal(1, s.n.ConnectionCount())
}

func (s *NetworkSuite) TestLastWriteWins() {
	require := require.New(s.T())
	require.NoError(s.n.AddConnection("A", "B", 4))
	require.NoError(s.n.AddConnection("B", "A", 2.5))
	require.NoError(s.n.AddConnection("A", "B", 3))

	d, ok := s.n.Duration("B", "A")
	require.True(ok)
	require.Equal(3.0, d)
	require.Equal(1, s.n.ConnectionCount(), "no multi-edges")
}

func (s *NetworkSuite) TestRejectsBadConnections() {
	require := require.New(s.T())
	for _, d := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.ErrorIs(s.n.AddConnection("A", "B", d), network.ErrBadDuration)
	}
	require.ErrorIs(s.n.AddConnection("A", "A", 1), network.ErrSelfConnection)
	require.ErrorIs(s.n.AddConnection("", "A", 1), network.ErrEmptyStation)
	require.Zero(s.n.StationCount(), "rejected connections register nothing")

	require.NoError(s.n.AddConnection("A", "B", 0), "zero duration is valid")
}

func (s *NetworkSuite) TestStationsInsertionOrder() {
	require := require.New(s.T())
	require.NoError(s.n.AddConnection("Waterloo", "Bank", 4))
	require.NoError(s.n.AddStation("Angel"))
	require.NoError(s.n.AddConnection("Bank", "Angel", 6))

	require.Equal([]string{"Waterloo", "Bank", "Angel"}, s.n.Stations())

	// The returned slice is a copy.
	st := s.n.Stations()
	st[0] = "mutated"
	require.Equal("Waterloo", s.n.Stations()[0])
}

func (s *NetworkSuite) TestConnectionsInFirstWriteOrder() {
	require := require.New(s.T())
	require.NoError(s.n.AddConnection("A", "B", 4))
	require.NoError(s.n.AddConnection("B", "C", 6))
	require.NoError(s.n.AddConnection("B", "A", 5))

	require.Equal([]network.Connection{
		{A: "A", B: "B", Duration: 5},
		{A: "B", B: "C", Duration: 6},
	}, s.n.Connections())
}

func (s *NetworkSuite) TestSeal() {
	require := require.New(s.T())
	require.NoError(s.n.AddConnection("A", "B", 1))
	s.n.Seal()
	require.True(s.n.Sealed())

	require.ErrorIs(s.n.AddStation("C"), network.ErrSealed)
	require.ErrorIs(s.n.AddConnection("A", "B", 2), network.ErrSealed)

	d, _ := s.n.Duration("A", "B")
	require.Equal(1.0, d, "sealed network keeps its data")
}

func (s *NetworkSuite) TestComponents() {
	require := require.New(s.T())
	require.NoError(s.n.AddConnection("C", "B", 6))
	require.NoError(s.n.AddStation("D"))
	require.NoError(s.n.AddConnection("A", "B", 4))
	require.NoError(s.n.AddConnection("X", "Y", 1))

	comps, err := s.n.Components()
	require.NoError(err)
	require.Equal([][]string{{"C", "B", "A"}, {"D"}, {"X", "Y"}}, comps)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}
