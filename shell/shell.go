// Package shell is the console front end of the route planner: two prompts,
// one answer.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tubeplanner/planner"
)

// ErrNoInput indicates the input closed before both stations were read.
var ErrNoInput = errors.New("shell: missing input")

const (
	promptStart       = "Enter the starting station: "
	promptDestination = "Enter the destination station: "
)

// RouteFinder is the planner surface the shell needs.
type RouteFinder interface {
	FindRoute(start, destination string) (planner.Route, error)
}

// Shell reads a start and a destination and prints the planned route.
type Shell struct {
	planner RouteFinder
	in      *bufio.Scanner
	out     io.Writer
}

// New returns a Shell reading from in and writing to out.
func New(planner RouteFinder, in io.Reader, out io.Writer) *Shell {
	return &Shell{planner: planner, in: bufio.NewScanner(in), out: out}
}

// Run performs one query. A planner failure is reported on out as
// "Error: <message>" and is not returned; only closed input or a failed
// write is.
func (s *Shell) Run() error {
	start, err := s.ask(promptStart)
	if err != nil {
		return err
	}
	destination, err := s.ask(promptDestination)
	if err != nil {
		return err
	}

	route, err := s.planner.FindRoute(start, destination)
	if err != nil {
		return s.printError(err)
	}

	_, err = fmt.Fprintf(s.out, "Route: %s\nTotal duration: %s minutes\n",
		route, strconv.FormatFloat(route.Duration, 'f', -1, 64))

	return err
}

// ask prints prompt and returns the next trimmed line.
func (s *Shell) ask(prompt string) (string, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", err
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("shell: read: %w", err)
		}
		// The prompt is still open on this line.
		if _, err := io.WriteString(s.out, "\n"); err != nil {
			return "", err
		}
		if err := s.printError(ErrNoInput); err != nil {
			return "", err
		}

		return "", ErrNoInput
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) printError(err error) error {
	_, werr := fmt.Fprintf(s.out, "Error: %s\n", message(err))

	return werr
}

// message strips the package prefix from sentinel errors for display.
func message(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 && !strings.Contains(msg[:i], " ") {
		msg = msg[i+2:]
	}

	return msg
}
