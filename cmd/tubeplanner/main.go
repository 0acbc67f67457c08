// Command tubeplanner plans journeys over a transit network.
//
// Usage:
//
//	tubeplanner [route] [-data file] [-sheet name]
//	tubeplanner journeys [-out file] [-bins n]
//	tubeplanner serve [-addr host:port]
//
// Settings come from TUBE_* environment variables (or a .env file); flags
// override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/katalvlaran/tubeplanner/config"
	"github.com/katalvlaran/tubeplanner/histogram"
	"github.com/katalvlaran/tubeplanner/httpapi"
	"github.com/katalvlaran/tubeplanner/journeys"
	"github.com/katalvlaran/tubeplanner/loader"
	"github.com/katalvlaran/tubeplanner/network"
	"github.com/katalvlaran/tubeplanner/planner"
	"github.com/katalvlaran/tubeplanner/shell"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cmd := "route"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet("tubeplanner "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.DataFile, "data", cfg.DataFile, "connection data file (.xlsx, .xlsm or .csv)")
	fs.StringVar(&cfg.Sheet, "sheet", cfg.Sheet, "workbook sheet (default first)")
	fs.StringVar(&cfg.Source, "source", cfg.Source, "input source: file or neo4j")
	switch cmd {
	case "route":
	case "journeys":
		fs.StringVar(&cfg.HistogramFile, "out", cfg.HistogramFile, "histogram image path")
		fs.IntVar(&cfg.HistogramBins, "bins", cfg.HistogramBins, "histogram bin count")
	case "serve":
		fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "listen address")
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q (want route, journeys or serve)\n", cmd)
		return 2
	}
	if err = fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := config.Logger(cfg, stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	net, err := load(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	p := planner.New(net, planner.WithCache(cfg.CacheTTL), planner.WithLogger(log))

	switch cmd {
	case "journeys":
		err = runJourneys(ctx, cfg, net, p, log, stdout)
	case "serve":
		err = runServe(ctx, cfg, net, p, log, stderr)
	default:
		err = shell.New(p, stdin, stdout).Run()
		if errors.Is(err, shell.ErrNoInput) {
			err = nil
		}
	}
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	return 0
}

func load(ctx context.Context, cfg config.Config, log *slog.Logger) (*network.Network, error) {
	opts := []loader.Option{loader.WithLogger(log)}

	if cfg.Source == config.SourceNeo4j {
		driver, err := neo4j.NewDriverWithContext(cfg.Neo4j.URI,
			neo4j.BasicAuth(cfg.Neo4j.User, cfg.Neo4j.Password, ""))
		if err != nil {
			return nil, fmt.Errorf("neo4j driver: %w", err)
		}
		defer driver.Close(ctx)
		if err = driver.VerifyConnectivity(ctx); err != nil {
			return nil, fmt.Errorf("%w: neo4j %s: %w", loader.ErrIO, cfg.Neo4j.URI, err)
		}

		net, _, err := loader.LoadNeo4j(ctx, driver, append(opts, loader.WithDatabase(cfg.Neo4j.Database))...)
		return net, err
	}

	if cfg.Sheet != "" {
		opts = append(opts, loader.WithSheet(cfg.Sheet))
	}
	net, _, err := loader.LoadFile(ctx, cfg.DataFile, opts...)

	return net, err
}

func runJourneys(ctx context.Context, cfg config.Config, net *network.Network, p *planner.Planner, log *slog.Logger, out io.Writer) error {
	rep, err := journeys.New(p, net.Stations(), journeys.WithLogger(log)).Run(ctx)
	if err != nil {
		return err
	}
	sum, err := journeys.Summarize(rep.Durations)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Journeys: %d of %d pairs reachable\n", sum.Count, rep.Pairs)
	fmt.Fprintf(out, "Min %.2f  Max %.2f  Mean %.2f  Median %.2f  StdDev %.2f minutes\n",
		sum.Min, sum.Max, sum.Mean, sum.Median, sum.StdDev)

	bins, err := histogram.Bins(rep.Durations, cfg.HistogramBins)
	if err != nil {
		return err
	}
	if err = histogram.Text(out, bins, 40); err != nil {
		return err
	}
	if err = histogram.Save(rep.Durations, cfg.HistogramFile, histogram.WithBins(cfg.HistogramBins)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Histogram saved to %s\n", cfg.HistogramFile)

	return nil
}

func runServe(ctx context.Context, cfg config.Config, net *network.Network, p *planner.Planner, log *slog.Logger, access io.Writer) error {
	srv := httpapi.New(net, p,
		httpapi.WithLogger(log),
		httpapi.WithAccessLog(access),
		httpapi.WithBins(cfg.HistogramBins))

	errc := make(chan error, 1)
	go func() { errc <- srv.Listen(cfg.HTTPAddr) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errc
}
