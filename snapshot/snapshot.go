package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/series"
)

// MaxNameLength is the longest series name a snapshot can carry.
const MaxNameLength = 64 * 1024

// Snapshot is a downsampled series ready for serialization.
type Snapshot struct {
	// Name identifies the series.
	Name string

	// X and Y are the selected points.
	X []float64
	Y []float64

	// BoolY marks Y as a boolean series stored as 0/1.
	BoolY bool

	// Indices are the source row of each point, strictly increasing.
	Indices []int
}

// Len returns the number of points.
func (s Snapshot) Len() int {
	return len(s.X)
}

// Validate checks that the columns line up and the indices are usable.
func (s Snapshot) Validate() error {
	if len(s.Name) > MaxNameLength {
		return fmt.Errorf("%w: name of %d bytes exceeds %d", errs.ErrPreconditionViolation, len(s.Name), MaxNameLength)
	}

	n := len(s.X)
	if len(s.Y) != n || len(s.Indices) != n {
		return fmt.Errorf("%w: x=%d, y=%d, indices=%d", errs.ErrLengthMismatch, n, len(s.Y), len(s.Indices))
	}
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: %d points exceed the snapshot limit", errs.ErrPreconditionViolation, n)
	}

	for i, idx := range s.Indices {
		if idx < 0 || uint64(idx) > math.MaxUint32 {
			return fmt.Errorf("%w: index %d out of range", errs.ErrRowOutOfRange, idx)
		}
		if i > 0 && idx <= s.Indices[i-1] {
			return fmt.Errorf("%w: indices not strictly increasing at position %d", errs.ErrPreconditionViolation, i)
		}
	}

	return nil
}

// Table returns the snapshot as a two-column series.Frame named "x" and the snapshot's
// name (or "y" when unnamed). Boolean snapshots get a boolean y column.
func (s Snapshot) Table() (*series.Frame, error) {
	yName := s.Name
	if yName == "" {
		yName = "y"
	}

	yCol := series.Float64Column(yName, s.Y)
	if s.BoolY {
		bools := make([]bool, len(s.Y))
		for i, v := range s.Y {
			bools[i] = v != 0
		}
		yCol = series.BoolColumn(yName, bools)
	}

	return series.NewFrame(series.Float64Column("x", s.X), yCol)
}

// FromTable captures the rows of t at indices as a Snapshot.
//
// Pass nil indices to capture every row, as after a short-circuited selection.
func FromTable(name string, t series.Table, indices []int) (Snapshot, error) {
	if t == nil {
		return Snapshot{}, fmt.Errorf("%w: nil table", errs.ErrPreconditionViolation)
	}
	if t.NumDimensions() < 2 {
		return Snapshot{}, fmt.Errorf("%w: snapshot needs x and y dimensions, table has %d",
			errs.ErrPreconditionViolation, t.NumDimensions())
	}

	if indices == nil {
		indices = make([]int, t.Len())
		for i := range indices {
			indices[i] = i
		}
	}

	xCol, err := t.Dimension(0)
	if err != nil {
		return Snapshot{}, err
	}
	yCol, err := t.Dimension(1)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Name:    name,
		X:       make([]float64, len(indices)),
		Y:       make([]float64, len(indices)),
		BoolY:   yCol.IsBool(),
		Indices: append([]int(nil), indices...),
	}
	for i, idx := range indices {
		if idx < 0 || idx >= t.Len() {
			return Snapshot{}, fmt.Errorf("%w: rows[%d]=%d, table has %d rows", errs.ErrRowOutOfRange, i, idx, t.Len())
		}
		snap.X[i] = xCol.Float64At(idx)
		snap.Y[i] = yCol.Float64At(idx)
	}

	if err := snap.Validate(); err != nil {
		return Snapshot{}, err
	}

	return snap, nil
}
