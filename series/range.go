package series

import (
	"fmt"
	"math"

	"github.com/arloliu/decimate/errs"
)

// Range is a half-open x interval [Start, End).
//
// An infinite Start or End leaves that side unbounded; an unbounded End also admits +Inf.
type Range struct {
	Start float64
	End   float64
}

// NewRange returns the half-open range [start, end).
func NewRange(start, end float64) Range {
	return Range{Start: start, End: end}
}

// From returns the range [start, +Inf).
func From(start float64) Range {
	return Range{Start: start, End: math.Inf(1)}
}

// Until returns the range (-Inf, end).
func Until(end float64) Range {
	return Range{Start: math.Inf(-1), End: end}
}

// All returns the unbounded range.
func All() Range {
	return Range{Start: math.Inf(-1), End: math.Inf(1)}
}

// Validate reports ErrInvalidRange for NaN bounds or Start > End.
func (r Range) Validate() error {
	if math.IsNaN(r.Start) || math.IsNaN(r.End) {
		return fmt.Errorf("%w: NaN bound in %s", errs.ErrInvalidRange, r)
	}
	if r.Start > r.End {
		return fmt.Errorf("%w: start %g is after end %g", errs.ErrInvalidRange, r.Start, r.End)
	}

	return nil
}

// Contains reports whether x lies in the range. NaN is never contained.
func (r Range) Contains(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	lower := math.IsInf(r.Start, -1) || x >= r.Start
	upper := math.IsInf(r.End, 1) || x < r.End

	return lower && upper
}

// Unbounded reports whether the range admits every non-NaN x.
func (r Range) Unbounded() bool {
	return math.IsInf(r.Start, -1) && math.IsInf(r.End, 1)
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g)", r.Start, r.End)
}
