package algorithm

import (
	"fmt"

	"github.com/arloliu/decimate/errs"
)

// Nth downsamples by keeping every stride-th index, stride = max(1, ceil(n/nOut)).
//
// The result starts at 0 and is strictly increasing, but the last input point is only
// included when it falls on the stride, and the result may hold fewer than nOut indices.
// The y values are not inspected beyond the length check.
//
// Parameters:
//   - x: X values
//   - y: Y values, same length as x
//   - nOut: Target number of output points, must be positive
//
// Returns:
//   - []int: Selected indices
//   - error: ErrLengthMismatch, ErrDegenerateInput or ErrInvalidWidth
func Nth(x, y []float64, nOut int) ([]int, error) {
	n := len(x)
	if n != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", errs.ErrLengthMismatch, n, len(y))
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty series", errs.ErrDegenerateInput)
	}
	if nOut <= 0 {
		return nil, fmt.Errorf("%w: nth needs a positive output size, got %d", errs.ErrInvalidWidth, nOut)
	}

	stride := Stride(n, nOut)
	sampled := make([]int, 0, (n+stride-1)/stride)
	for i := 0; i < n; i += stride {
		sampled = append(sampled, i)
	}

	return sampled, nil
}

// Stride returns the step used by Nth: max(1, ceil(n/nOut)).
// nOut must be positive.
func Stride(n, nOut int) int {
	stride := (n + nOut - 1) / nOut
	if stride < 1 {
		return 1
	}

	return stride
}
