// Package httpapi serves the planner over read-only HTTP endpoints.
//
//	GET /healthz                  liveness plus network size
//	GET /stations                 station names in insertion order
//	GET /route?from=&to=[&mode=]  shortest route; mode=fewest for fewest stops
//	GET /journeys/summary         statistics over all reachable ordered pairs
//	GET /journeys/histogram.png   the journey-time histogram
package httpapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/katalvlaran/tubeplanner/histogram"
	"github.com/katalvlaran/tubeplanner/journeys"
	"github.com/katalvlaran/tubeplanner/network"
	"github.com/katalvlaran/tubeplanner/planner"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for handler diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAccessLog writes one line per request to w.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) { s.access = w }
}

// WithBins sets the default histogram bin count.
func WithBins(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.bins = n
		}
	}
}

// Server wraps a fiber app bound to one sealed network.
type Server struct {
	app     *fiber.App
	net     *network.Network
	planner *planner.Planner
	log     *slog.Logger
	access  io.Writer
	bins    int

	mu        sync.Mutex
	durations []float64
}

// New builds the server and registers its routes.
func New(net *network.Network, p *planner.Planner, opts ...Option) *Server {
	s := &Server{
		net:     net,
		planner: p,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		access:  io.Discard,
		bins:    histogram.DefaultBins,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "tubeplanner",
		DisableStartupMessage: true,
	})
	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{Output: s.access}))

	s.app.Get("/healthz", s.health)
	s.app.Get("/stations", s.stations)
	s.app.Get("/route", s.route)
	s.app.Get("/journeys/summary", s.summary)
	s.app.Get("/journeys/histogram.png", s.histogram)

	return s
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.log.Info("http listening", slog.String("addr", addr))

	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ok",
		"stations":    s.net.StationCount(),
		"connections": s.net.ConnectionCount(),
	})
}

func (s *Server) stations(c *fiber.Ctx) error {
	return c.JSON(s.net.Stations())
}

func (s *Server) route(c *fiber.Ctx) error {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		return fail(c, fiber.StatusBadRequest, errors.New("query parameters from and to are required"))
	}

	var (
		r   planner.Route
		err error
	)
	switch mode := c.Query("mode", "fastest"); mode {
	case "fastest":
		r, err = s.planner.FindRoute(from, to)
	case "fewest":
		r, err = s.planner.FewestStops(from, to)
	default:
		return fail(c, fiber.StatusBadRequest, errors.New("mode must be fastest or fewest"))
	}

	switch {
	case errors.Is(err, planner.ErrUnknownStation):
		return fail(c, fiber.StatusNotFound, err)
	case errors.Is(err, planner.ErrNoPath):
		return fail(c, fiber.StatusUnprocessableEntity, err)
	case err != nil:
		s.log.Error("route failed", slog.String("from", from), slog.String("to", to), slog.Any("err", err))
		return fail(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(r)
}

func (s *Server) summary(c *fiber.Ctx) error {
	d, err := s.journeyTimes(c.UserContext())
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err)
	}
	sum, err := journeys.Summarize(d)
	if errors.Is(err, journeys.ErrNoData) {
		return fail(c, fiber.StatusUnprocessableEntity, err)
	}
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(sum)
}

func (s *Server) histogram(c *fiber.Ctx) error {
	bins := c.QueryInt("bins", s.bins)
	if bins <= 0 {
		return fail(c, fiber.StatusBadRequest, histogram.ErrBadBins)
	}
	d, err := s.journeyTimes(c.UserContext())
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err)
	}

	var buf bytes.Buffer
	err = histogram.Render(d, &buf, histogram.WithBins(bins))
	if errors.Is(err, histogram.ErrNoData) {
		return fail(c, fiber.StatusUnprocessableEntity, err)
	}
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err)
	}

	c.Type("png")

	return c.Send(buf.Bytes())
}

// journeyTimes aggregates on first use and keeps the result; the network is
// sealed so the distribution cannot change. Failed runs are not kept.
func (s *Server) journeyTimes(ctx context.Context) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.durations != nil {
		return s.durations, nil
	}
	d, err := journeys.New(s.planner, s.net.Stations(), journeys.WithLogger(s.log)).Durations(ctx)
	if err != nil {
		return nil, err
	}
	s.durations = d

	return d, nil
}

func fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
