package cudf

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DonnieKim411/cudf/codec"
	"github.com/DonnieKim411/cudf/column"
	"github.com/DonnieKim411/cudf/compute"
	"github.com/DonnieKim411/cudf/types"
)

// Table is an ordered collection of named columns of equal length.
//
// A Table is not safe for concurrent mutation; the read paths (Describe,
// Snapshot, accessors) may run concurrently with each other.
type Table struct {
	opts  options
	names []string
	cols  map[string]*column.Column
}

// NewTable creates an empty table.
func NewTable(opts ...Option) *Table {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Table{
		opts: o,
		cols: make(map[string]*column.Column),
	}
}

// AddColumn appends a named column. Every column after the first must match
// the table's row count.
func (t *Table) AddColumn(name string, c *column.Column) error {
	if _, ok := t.cols[name]; ok {
		return fmt.Errorf("%w: %q", ErrColumnExists, name)
	}
	if len(t.names) > 0 && c.Len() != t.NumRows() {
		return &ErrRowCountMismatch{Expected: t.NumRows(), Actual: c.Len()}
	}
	t.names = append(t.names, name)
	t.cols[name] = c
	return nil
}

// Column returns the named column.
func (t *Table) Column(name string) (*column.Column, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return c, nil
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.names) }

// NumRows returns the table's row count; zero for an empty table.
func (t *Table) NumRows() int {
	if len(t.names) == 0 {
		return 0
	}
	return t.cols[t.names[0]].Len()
}

// ColumnNames returns the column names in insertion order.
func (t *Table) ColumnNames() []string {
	return slices.Clone(t.names)
}

// ColumnSummary is the per-column result of Describe.
type ColumnSummary struct {
	Name  string
	Type  types.TypeID
	Rows  int
	Nulls int
	Width int
	Stats compute.Stats
}

// Describe summarizes every column. Columns are processed concurrently,
// bounded by WithParallelism.
func (t *Table) Describe(ctx context.Context) ([]ColumnSummary, error) {
	start := time.Now()
	out, err := t.describe(ctx)
	t.opts.metrics.RecordDescribe(len(t.names), time.Since(start), err)
	t.opts.logger.LogDescribe(ctx, len(t.names), err)
	return out, err
}

func (t *Table) describe(ctx context.Context) ([]ColumnSummary, error) {
	out := make([]ColumnSummary, len(t.names))

	g, _ := errgroup.WithContext(ctx)
	if t.opts.parallelism > 0 {
		g.SetLimit(t.opts.parallelism)
	}
	for i, name := range t.names {
		g.Go(func() error {
			c := t.cols[name]

			stats, err := compute.Summarize(c)
			if err != nil {
				return translateError(err)
			}
			width, err := compute.SizeOf(c.DataType())
			if err != nil {
				return translateError(err)
			}

			out[i] = ColumnSummary{
				Name:  name,
				Type:  c.DataType().ID(),
				Rows:  c.Len(),
				Nulls: c.NullCount(),
				Width: width,
				Stats: stats,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Snapshot holds the encoded chunks of a table, one per column, in column
// order.
type Snapshot struct {
	Names  []string
	Chunks [][]byte
}

// Snapshot encodes every column into a compressed chunk. Columns are encoded
// concurrently, bounded by WithParallelism.
func (t *Table) Snapshot(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	snap, bytes, err := t.snapshot(ctx)
	t.opts.metrics.RecordSnapshot(len(t.names), bytes, time.Since(start), err)
	t.opts.logger.LogSnapshot(ctx, len(t.names), bytes, err)
	return snap, err
}

func (t *Table) snapshot(ctx context.Context) (*Snapshot, int, error) {
	snap := &Snapshot{
		Names:  t.ColumnNames(),
		Chunks: make([][]byte, len(t.names)),
	}

	g, _ := errgroup.WithContext(ctx)
	if t.opts.parallelism > 0 {
		g.SetLimit(t.opts.parallelism)
	}
	for i, name := range t.names {
		g.Go(func() error {
			chunk, err := codec.Encode(t.cols[name], t.opts.compression)
			if err != nil {
				return translateError(err)
			}
			snap.Chunks[i] = chunk
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	total := 0
	for _, chunk := range snap.Chunks {
		total += len(chunk)
	}
	return snap, total, nil
}

// FromSnapshot rebuilds a table from a snapshot. Chunks are decoded
// concurrently, bounded by WithParallelism.
func FromSnapshot(ctx context.Context, snap *Snapshot, opts ...Option) (*Table, error) {
	start := time.Now()
	t, err := fromSnapshot(ctx, snap, opts...)

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.metrics.RecordRestore(len(snap.Names), time.Since(start), err)
	return t, err
}

func fromSnapshot(ctx context.Context, snap *Snapshot, opts ...Option) (*Table, error) {
	if len(snap.Names) != len(snap.Chunks) {
		return nil, fmt.Errorf("snapshot has %d names but %d chunks", len(snap.Names), len(snap.Chunks))
	}

	t := NewTable(opts...)
	cols := make([]*column.Column, len(snap.Chunks))

	g, _ := errgroup.WithContext(ctx)
	if t.opts.parallelism > 0 {
		g.SetLimit(t.opts.parallelism)
	}
	for i := range snap.Chunks {
		g.Go(func() error {
			c, err := codec.Decode(snap.Chunks[i])
			if err != nil {
				return translateError(err)
			}
			cols[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, name := range snap.Names {
		if err := t.AddColumn(name, cols[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}
