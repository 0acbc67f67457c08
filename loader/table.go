package loader

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/tubeplanner/network"
)

// record is one data row reduced to the three columns that matter.
type record struct {
	line     int
	from, to string
	duration any
}

// normalizeHeader names blank cells "Unnamed: <index>" and suffixes repeated
// names with ".1", ".2", ... Rows wider than the header extend it with
// positional names.
func normalizeHeader(header []string, width int) []string {
	out := make([]string, max(len(header), width))
	seen := make(map[string]int, len(out))
	for i := range out {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n+1)
		}
		seen[name] = 0
		out[i] = name
	}

	return out
}

func loadTable(ctx context.Context, header []string, rows [][]string, o options) (*network.Network, *Report, error) {
	if len(header) == 0 && len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: empty table", ErrSchema)
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	cols := normalizeHeader(header, width)
	o.log.Info("column names", slog.Any("columns", cols))

	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c] = i
	}
	var missing []string
	for _, want := range o.schema.columns() {
		if _, ok := index[want]; !ok {
			missing = append(missing, strconv.Quote(want))
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: missing columns %s", ErrSchema, strings.Join(missing, ", "))
	}

	fi, ti, di := index[o.schema.From], index[o.schema.To], index[o.schema.Duration]
	recs := make([]record, 0, len(rows))
	for i, r := range rows {
		recs = append(recs, record{
			line:     i + 2,
			from:     cell(r, fi),
			to:       cell(r, ti),
			duration: cell(r, di),
		})
	}

	return ingest(ctx, recs, o)
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}

	return ""
}

// ingest applies the row policy to recs and seals the resulting network.
func ingest(ctx context.Context, recs []record, o options) (*network.Network, *Report, error) {
	net := network.New(network.WithLogger(o.log))
	rep := &Report{Rows: len(recs), Skipped: []SkippedRow{}}

	skip := func(r record, reason string) {
		rep.Skipped = append(rep.Skipped, SkippedRow{Line: r.line, From: r.from, To: r.to, Reason: reason})
		o.log.Debug("row skipped",
			slog.Int("line", r.line), slog.String("from", r.from),
			slog.String("to", r.to), slog.String("reason", reason))
	}

	for _, r := range recs {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		r.from, r.to = strings.TrimSpace(r.from), strings.TrimSpace(r.to)
		if r.from == "" || r.to == "" {
			skip(r, "missing station name")
			continue
		}
		if err := net.AddStation(r.from); err != nil {
			return nil, nil, fmt.Errorf("loader: line %d: %w", r.line, err)
		}
		if err := net.AddStation(r.to); err != nil {
			return nil, nil, fmt.Errorf("loader: line %d: %w", r.line, err)
		}

		d, reason := coerceDuration(r.duration)
		if reason != "" {
			skip(r, reason)
			continue
		}
		if r.from == r.to {
			skip(r, "self-connection")
			continue
		}
		if err := net.AddConnection(r.from, r.to, d); err != nil {
			return nil, nil, fmt.Errorf("loader: line %d: %w", r.line, err)
		}
	}

	net.Seal()
	rep.Stations = net.StationCount()
	rep.Connections = net.ConnectionCount()
	o.log.Info("network loaded",
		slog.Int("rows", rep.Rows),
		slog.Int("stations", rep.Stations),
		slog.Int("connections", rep.Connections),
		slog.Int("skipped", len(rep.Skipped)))

	return net, rep, nil
}

// coerceDuration turns a cell into minutes. A non-empty reason means the
// value is unusable.
func coerceDuration(v any) (float64, string) {
	var d float64
	switch x := v.(type) {
	case nil:
		return 0, "missing duration"
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, "missing duration"
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Sprintf("non-numeric duration %q", x)
		}
		d = f
	case float64:
		d = x
	case float32:
		d = float64(x)
	case int64:
		d = float64(x)
	case int:
		d = float64(x)
	default:
		return 0, fmt.Sprintf("unsupported duration type %T", v)
	}

	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0, fmt.Sprintf("invalid duration %v", d)
	}

	return d, ""
}
