// Package loader populates a network.Network from tabular connection data.
//
// Three sources share one row policy: spreadsheets (.xlsx/.xlsm through
// excelize), CSV files, and Neo4j via a Cypher query. Each row names two
// stations and a duration in minutes. A fourth column is required to be
// present and then ignored.
//
// Row policy:
//   - either station name empty: the row is skipped;
//   - duration missing, non-numeric, NaN, ±Inf or negative: both stations are
//     registered, the connection is skipped;
//   - both names equal: the station is registered, the connection is skipped.
//
// Skipped rows are collected in Report.Skipped and never abort a load.
// Structural problems do: ErrSchema for missing columns or an empty table,
// ErrIO for unreadable or malformed input. The returned network is sealed.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/tubeplanner/network"
)

var (
	// ErrSchema indicates the input lacks the expected columns.
	ErrSchema = errors.New("loader: invalid file structure")

	// ErrIO indicates the input could not be read or parsed.
	ErrIO = errors.New("loader: cannot read input")
)

// Schema names the columns the loader reads.
type Schema struct {
	From     string
	To       string
	Duration string
	// Ignored must be present but its values are never read.
	Ignored string
}

// DefaultSchema returns the headers of the London Underground workbook:
// its first data row doubles as the header, and the two blank header cells
// are named by position.
func DefaultSchema() Schema {
	return Schema{
		From:     "Bakerloo",
		To:       "Harrow & Wealdstone",
		Duration: "Unnamed: 2",
		Ignored:  "Unnamed: 3",
	}
}

func (s Schema) columns() []string {
	return []string{s.From, s.To, s.Duration, s.Ignored}
}

// SkippedRow records a row whose connection was not added.
type SkippedRow struct {
	Line   int    `json:"line"`
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

// Report summarises one load.
type Report struct {
	// Rows is the number of data rows read, header excluded.
	Rows        int          `json:"rows"`
	Connections int          `json:"connections"`
	Stations    int          `json:"stations"`
	Skipped     []SkippedRow `json:"skipped"`
}

// Option configures a load.
type Option func(*options)

type options struct {
	schema   Schema
	sheet    string
	query    string
	database string
	log      *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		schema: DefaultSchema(),
		query:  DefaultQuery,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSchema overrides the expected column names.
func WithSchema(s Schema) Option {
	return func(o *options) { o.schema = s }
}

// WithSheet selects a workbook sheet by name. The default is the first sheet.
func WithSheet(name string) Option {
	return func(o *options) { o.sheet = name }
}

// WithLogger sets the logger for load diagnostics. The network built by the
// load logs through it too.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// LoadFile reads path, choosing the format by extension: .xlsx and .xlsm
// are workbooks, .csv is comma-separated text.
func LoadFile(ctx context.Context, path string, opts ...Option) (*network.Network, *Report, error) {
	o := newOptions(opts)

	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	var (
		header []string
		rows   [][]string
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		header, rows, err = readWorkbook(path, o.sheet)
	case ".csv":
		header, rows, err = readCSV(path)
	default:
		return nil, nil, fmt.Errorf("%w: unsupported file type %q", ErrIO, ext)
	}
	if err != nil {
		return nil, nil, err
	}

	o.log.Debug("input read", slog.String("path", path), slog.Int("rows", len(rows)))

	return loadTable(ctx, header, rows, o)
}

// LoadTable builds a network from an in-memory table: header is the first
// row, rows the data below it.
func LoadTable(ctx context.Context, header []string, rows [][]string, opts ...Option) (*network.Network, *Report, error) {
	return loadTable(ctx, header, rows, newOptions(opts))
}
