package shell_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubeplanner/network"
	"github.com/katalvlaran/tubeplanner/planner"
	"github.com/katalvlaran/tubeplanner/shell"
)

func tube(t *testing.T) *planner.Planner {
	t.Helper()
	n := network.New()
	require.NoError(t, n.AddConnection("A", "B", 4))
	require.NoError(t, n.AddConnection("B", "C", 6.5))
	require.NoError(t, n.AddStation("D"))
	n.Seal()

	return planner.New(n)
}

func run(t *testing.T, input string) (string, error) {
	t.Helper()
	var out strings.Builder
	err := shell.New(tube(t), strings.NewReader(input), &out).Run()

	return out.String(), err
}

func TestRun_Route(t *testing.T) {
	out, err := run(t, "  A \nC\n")
	require.NoError(t, err)
	assert.Equal(t,
		"Enter the starting station: Enter the destination station: "+
			"Route: A -> B -> C\nTotal duration: 10.5 minutes\n", out)
}

func TestRun_IntegralDuration(t *testing.T) {
	out, err := run(t, "A\nB")
	require.NoError(t, err)
	assert.Contains(t, out, "Total duration: 4 minutes\n")
}

func TestRun_PlannerErrors(t *testing.T) {
	out, err := run(t, "A\nD\n")
	require.NoError(t, err, "planner errors are printed, not returned")
	assert.Contains(t, out, "Error: no path found between the specified stations")
	assert.NotContains(t, out, "Route:")

	out, err = run(t, "A\nNowhere\n")
	require.NoError(t, err)
	assert.Contains(t, out, `Error: invalid station names: "Nowhere" not in network`)
}

func TestRun_MissingInput(t *testing.T) {
	for _, in := range []string{"", "A\n"} {
		out, err := run(t, in)
		require.ErrorIs(t, err, shell.ErrNoInput)
		assert.True(t, strings.HasSuffix(out, "\nError: missing input\n"), "output %q", out)
	}
}

type fixed struct{ err error }

func (f fixed) FindRoute(string, string) (planner.Route, error) { return planner.Route{}, f.err }

func TestRun_ForeignError(t *testing.T) {
	var out strings.Builder
	err := shell.New(fixed{errors.New("database is down")}, strings.NewReader("A\nB\n"), &out).Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Error: database is down\n")
}
