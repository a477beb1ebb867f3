package decimate

import (
	"fmt"

	"github.com/arloliu/decimate/algorithm"
	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/internal/pool"
	"github.com/arloliu/decimate/series"
)

// Operation downsamples tables according to a Config.
//
// An Operation holds no mutable state and is safe for concurrent use.
type Operation struct {
	cfg Config
}

// Selection is the outcome of Operation.Select.
type Selection struct {
	// Table is the input after the x-range filter.
	Table series.Table

	// Indices are the selected rows of Table; nil when ShortCircuited is true.
	Indices []int

	// ShortCircuited reports that Table already fit within the width.
	ShortCircuited bool
}

// New creates an Operation for cfg.
func New(cfg Config) *Operation {
	return &Operation{cfg: cfg}
}

// Config returns the operation's configuration.
func (op *Operation) Config() Config {
	return op.cfg
}

// Select filters t by the configured x-range and computes the rows to keep.
//
// When the filtered table has at most Width rows the selection short-circuits and no
// algorithm runs. Boolean y columns are encoded as 0/1 before area computation.
func (op *Operation) Select(t series.Table) (Selection, error) {
	if err := op.cfg.validate(); err != nil {
		return Selection{}, err
	}
	if t == nil {
		return Selection{}, fmt.Errorf("%w: nil table", errs.ErrPreconditionViolation)
	}

	if r, ok := op.cfg.XRange(); ok {
		filtered, err := t.SliceX(r)
		if err != nil {
			return Selection{}, fmt.Errorf("x-range filter %s: %w", r, err)
		}
		t = filtered
	}

	if t.Len() <= op.cfg.width {
		return Selection{Table: t, ShortCircuited: true}, nil
	}

	if t.NumDimensions() < 2 {
		return Selection{}, fmt.Errorf("%w: downsampling needs x and y dimensions, table has %d",
			errs.ErrPreconditionViolation, t.NumDimensions())
	}

	xCol, err := t.Dimension(0)
	if err != nil {
		return Selection{}, err
	}
	yCol, err := t.Dimension(1)
	if err != nil {
		return Selection{}, err
	}

	xs := xCol.Float64s()
	ys := yCol.Float64s()
	if yCol.IsBool() {
		buf, cleanup := pool.GetFloat64Slice(yCol.Len())
		defer cleanup()
		ys = series.AppendBoolsAsFloat64(buf[:0], yCol.Bools())
	}

	indices, err := algorithm.Select(op.cfg.algorithm, xs, ys, op.cfg.width)
	if err != nil {
		return Selection{}, fmt.Errorf("%s over %d rows: %w", op.cfg.algorithm, t.Len(), err)
	}

	return Selection{Table: t, Indices: indices}, nil
}

// Apply downsamples t and returns the selected rows of the range-filtered table.
//
// The table is returned unchanged when it already fits within the width. All columns,
// including boolean ones, keep their original values.
func (op *Operation) Apply(t series.Table) (series.Table, error) {
	sel, err := op.Select(t)
	if err != nil {
		return nil, err
	}
	if sel.ShortCircuited {
		return sel.Table, nil
	}

	return sel.Table.SelectRows(sel.Indices)
}
