package series

import (
	"fmt"

	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/internal/pool"
)

// Table is the data-access contract the downsampling operation consumes.
type Table interface {
	// Len returns the number of rows.
	Len() int

	// NumDimensions returns the number of columns.
	NumDimensions() int

	// Dimension returns column i. Dimension 0 is x and dimension 1 is y.
	Dimension(i int) (Column, error)

	// SliceX returns the rows whose x value lies in the half-open range r, in order.
	SliceX(r Range) (Table, error)

	// SelectRows returns the rows at the given indices, in the given order.
	SelectRows(rows []int) (Table, error)
}

// Frame is an in-memory Table backed by columns of equal length.
type Frame struct {
	columns []Column
	length  int
}

var _ Table = (*Frame)(nil)

// NewFrame builds a frame from columns. The first column is x.
//
// Returns ErrPreconditionViolation when no column is given and ErrLengthMismatch when
// columns differ in length.
func NewFrame(columns ...Column) (*Frame, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: frame needs at least one column", errs.ErrPreconditionViolation)
	}

	length := columns[0].Len()
	for i, c := range columns[1:] {
		if c.Len() != length {
			return nil, fmt.Errorf("%w: column %d (%q) has %d rows, want %d",
				errs.ErrLengthMismatch, i+1, c.Name(), c.Len(), length)
		}
	}

	cols := make([]Column, len(columns))
	copy(cols, columns)

	return &Frame{columns: cols, length: length}, nil
}

// NewXY is a shorthand for a frame with float64 "x" and "y" columns.
func NewXY(x, y []float64) (*Frame, error) {
	return NewFrame(Float64Column("x", x), Float64Column("y", y))
}

// Len implements Table.
func (f *Frame) Len() int { return f.length }

// NumDimensions implements Table.
func (f *Frame) NumDimensions() int { return len(f.columns) }

// Columns returns a copy of the column list.
func (f *Frame) Columns() []Column {
	cols := make([]Column, len(f.columns))
	copy(cols, f.columns)

	return cols
}

// Dimension implements Table.
func (f *Frame) Dimension(i int) (Column, error) {
	if i < 0 || i >= len(f.columns) {
		return Column{}, fmt.Errorf("%w: dimension %d, frame has %d", errs.ErrDimensionOutOfRange, i, len(f.columns))
	}

	return f.columns[i], nil
}

// SliceX implements Table. The frame is returned as-is for an unbounded range.
func (f *Frame) SliceX(r Range) (Table, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.Unbounded() {
		return f, nil
	}

	x := f.columns[0]
	scratch, cleanup := pool.GetIntSlice(f.length)
	defer cleanup()

	rows := scratch[:0]
	for i := range f.length {
		if r.Contains(x.Float64At(i)) {
			rows = append(rows, i)
		}
	}

	return f.take(rows), nil
}

// SelectRows implements Table.
func (f *Frame) SelectRows(rows []int) (Table, error) {
	if err := checkRows(rows, f.length); err != nil {
		return nil, err
	}

	return f.take(rows), nil
}

func (f *Frame) take(rows []int) *Frame {
	cols := make([]Column, len(f.columns))
	for i, c := range f.columns {
		cols[i] = c.take(rows)
	}

	return &Frame{columns: cols, length: len(rows)}
}
