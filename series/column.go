package series

import (
	"fmt"

	"github.com/arloliu/decimate/errs"
)

// Kind is the element type of a Column.
type Kind uint8

const (
	KindFloat64 Kind = iota + 1 // KindFloat64 holds float64 values.
	KindBool                    // KindBool holds boolean values.
)

func (k Kind) String() string {
	switch k {
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Column is a named, typed, read-only sequence of values.
//
// The zero Column is an empty float64 column with no name.
type Column struct {
	name   string
	kind   Kind
	floats []float64
	bools  []bool
}

// Float64Column returns a float64 column. The slice is not copied and must not be
// modified afterwards.
func Float64Column(name string, values []float64) Column {
	return Column{name: name, kind: KindFloat64, floats: values}
}

// BoolColumn returns a boolean column. The slice is not copied and must not be
// modified afterwards.
func BoolColumn(name string, values []bool) Column {
	return Column{name: name, kind: KindBool, bools: values}
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Kind returns the element type, KindFloat64 for the zero Column.
func (c Column) Kind() Kind {
	if c.kind == 0 {
		return KindFloat64
	}

	return c.kind
}

// IsBool reports whether the column holds booleans.
func (c Column) IsBool() bool { return c.kind == KindBool }

// Len returns the number of values.
func (c Column) Len() int {
	if c.kind == KindBool {
		return len(c.bools)
	}

	return len(c.floats)
}

// Float64s returns the values as float64.
//
// For float64 columns the backing slice is returned as-is and must be treated as
// read-only. Boolean columns are widened into a new slice (false=0, true=1).
func (c Column) Float64s() []float64 {
	if c.kind != KindBool {
		return c.floats
	}

	out := make([]float64, len(c.bools))
	AppendBoolsAsFloat64(out[:0], c.bools)

	return out
}

// Bools returns the backing slice of a boolean column, or nil for other kinds.
func (c Column) Bools() []bool {
	return c.bools
}

// Int8s returns the small-integer encoding of a boolean column (false=0, true=1),
// or nil for other kinds.
func (c Column) Int8s() []int8 {
	if c.kind != KindBool {
		return nil
	}

	out := make([]int8, len(c.bools))
	for i, b := range c.bools {
		if b {
			out[i] = 1
		}
	}

	return out
}

// Float64At returns the value at row i widened to float64.
func (c Column) Float64At(i int) float64 {
	if c.kind == KindBool {
		if c.bools[i] {
			return 1
		}

		return 0
	}

	return c.floats[i]
}

// take returns a new column holding the given rows. Indices must be valid.
func (c Column) take(rows []int) Column {
	out := Column{name: c.name, kind: c.kind}
	if c.kind == KindBool {
		out.bools = make([]bool, len(rows))
		for i, r := range rows {
			out.bools[i] = c.bools[r]
		}

		return out
	}

	out.floats = make([]float64, len(rows))
	for i, r := range rows {
		out.floats[i] = c.floats[r]
	}

	return out
}

// AppendBoolsAsFloat64 appends the int8 encoding of bools (false=0, true=1), widened to
// float64, to dst and returns the extended slice.
func AppendBoolsAsFloat64(dst []float64, bools []bool) []float64 {
	for _, b := range bools {
		var v int8
		if b {
			v = 1
		}
		dst = append(dst, float64(v))
	}

	return dst
}

func checkRows(rows []int, n int) error {
	for i, r := range rows {
		if r < 0 || r >= n {
			return fmt.Errorf("%w: rows[%d]=%d, table has %d rows", errs.ErrRowOutOfRange, i, r, n)
		}
	}

	return nil
}
