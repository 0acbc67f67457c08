package loader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/katalvlaran/tubeplanner/network"
)

// DefaultQuery reads every CONNECTS relationship once. The first three
// returned columns are taken as from, to and duration.
const DefaultQuery = `MATCH (a:Station)-[c:CONNECTS]->(b:Station)
RETURN a.name AS from, b.name AS to, c.duration AS duration`

// WithQuery overrides the Cypher query used by LoadNeo4j.
func WithQuery(cypher string) Option {
	return func(o *options) { o.query = cypher }
}

// WithDatabase selects the Neo4j database. Empty means the server default.
func WithDatabase(name string) Option {
	return func(o *options) { o.database = name }
}

// LoadNeo4j builds a network from the rows of a read query. The row policy
// is the same as for files; durations may arrive as integers or floats.
func LoadNeo4j(ctx context.Context, driver neo4j.DriverWithContext, opts ...Option) (*network.Network, *Report, error) {
	o := newOptions(opts)

	res, err := neo4j.ExecuteQuery(ctx, driver, o.query, nil, neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(o.database),
		neo4j.ExecuteQueryWithReadersRouting())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: neo4j query: %w", ErrIO, err)
	}

	recs, err := fromRecords(res.Keys, res.Records)
	if err != nil {
		return nil, nil, err
	}
	o.log.Info("column names", slog.Any("columns", res.Keys))

	return ingest(ctx, recs, o)
}

// fromRecords maps query rows positionally onto records. Line numbers count
// from 1.
func fromRecords(keys []string, rows []*neo4j.Record) ([]record, error) {
	if len(keys) < 3 {
		return nil, fmt.Errorf("%w: query returns %d columns, need from, to and duration", ErrSchema, len(keys))
	}

	out := make([]record, 0, len(rows))
	for i, r := range rows {
		if r == nil || len(r.Values) < 3 {
			continue
		}
		out = append(out, record{
			line:     i + 1,
			from:     name(r.Values[0]),
			to:       name(r.Values[1]),
			duration: r.Values[2],
		})
	}

	return out, nil
}

func name(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
