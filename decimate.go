// Package decimate downsamples large ordered (x, y) series to a target number of points
// while preserving their visual shape.
//
// The package is a thin orchestration layer over the algorithm and series packages: it
// applies an optional half-open x-range filter, skips work when the series already fits
// the target width, encodes boolean y values as 0/1 and maps the selected indices back
// onto the input table.
//
// # Algorithms
//
//   - lttb (default): Largest-Triangle-Three-Buckets. Keeps the first and last points and
//     exactly width points in total, choosing per bucket the point that forms the largest
//     triangle with its neighbours. Spikes and dips survive downsampling.
//   - nth: keeps every ceil(n/width)-th point starting at the first. Cheaper, ignores y,
//     and does not force the last point into the output.
//
// # Basic Usage
//
// Downsampling a table:
//
//	frame, _ := series.NewXY(timestamps, values)
//	out, err := decimate.Downsample(frame, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Reusing a configuration across many tables:
//
//	cfg, err := decimate.NewConfig(1000,
//	    decimate.WithAlgorithmName("lttb"),
//	    decimate.WithXRange(start, end),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	op := decimate.New(cfg)
//	for _, frame := range frames {
//	    out, err := op.Apply(frame)
//	    ...
//	}
//
// Working on raw slices:
//
//	idx, err := decimate.SelectIndices(xs, ys, 1000)
//
// # Errors
//
// Failures wrap the sentinels in the errs package. Use errors.Is with
// errs.ErrInvalidConfiguration, errs.ErrPreconditionViolation or errs.ErrDegenerateInput
// to tell a bad setting from a malformed series.
package decimate

import (
	"github.com/arloliu/decimate/algorithm"
	"github.com/arloliu/decimate/series"
)

// Downsample applies a one-off operation with the given width and options to t.
//
// Parameters:
//   - t: Input table; dimension 0 is x, dimension 1 is y
//   - width: Target number of output points
//   - opts: Optional settings, see NewConfig
//
// Returns:
//   - series.Table: The downsampled table, or t itself when no work was needed
//   - error: A configuration or precondition error
func Downsample(t series.Table, width int, opts ...Option) (series.Table, error) {
	cfg, err := NewConfig(width, opts...)
	if err != nil {
		return nil, err
	}

	return New(cfg).Apply(t)
}

// SelectIndices returns the indices a downsampling operation would keep for the raw
// x and y slices. When len(x) <= width every index is returned.
//
// The x-range option is honoured: indices then refer to the filtered rows.
func SelectIndices(x, y []float64, width int, opts ...Option) ([]int, error) {
	frame, err := series.NewXY(x, y)
	if err != nil {
		return nil, err
	}

	cfg, err := NewConfig(width, opts...)
	if err != nil {
		return nil, err
	}

	sel, err := New(cfg).Select(frame)
	if err != nil {
		return nil, err
	}
	if !sel.ShortCircuited {
		return sel.Indices, nil
	}

	all := make([]int, sel.Table.Len())
	for i := range all {
		all[i] = i
	}

	return all, nil
}

// LTTB is a shorthand for algorithm.LTTB.
func LTTB(x, y []float64, nOut int) ([]int, error) {
	return algorithm.LTTB(x, y, nOut)
}

// Nth is a shorthand for algorithm.Nth.
func Nth(x, y []float64, nOut int) ([]int, error) {
	return algorithm.Nth(x, y, nOut)
}
