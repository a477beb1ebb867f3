package algorithm

import (
	"fmt"
	"math"

	"github.com/arloliu/decimate/errs"
)

// minLTTBPoints is the smallest output size LTTB can produce: both endpoints plus
// one interior bucket.
const minLTTBPoints = 3

// LTTB downsamples the series to nOut points using Largest-Triangle-Three-Buckets.
//
// The returned slice has exactly nOut strictly increasing indices; the first is 0 and the
// last is len(x)-1. Interior points are chosen per bucket by maximizing the absolute
// triangle area formed with the previous selection and the centroid of the following
// bucket. Ties resolve to the earliest index.
//
// Parameters:
//   - x: X values, conceptually sorted ascending
//   - y: Y values, same length as x
//   - nOut: Number of output points, 3 <= nOut <= len(x)
//
// Returns:
//   - []int: Selected indices
//   - error: ErrLengthMismatch, ErrDegenerateInput, ErrInvalidWidth or ErrEmptyBucket
func LTTB(x, y []float64, nOut int) ([]int, error) {
	n := len(x)
	if n != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", errs.ErrLengthMismatch, n, len(y))
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: lttb needs at least 2 points, got %d", errs.ErrDegenerateInput, n)
	}
	if nOut < minLTTBPoints {
		return nil, fmt.Errorf("%w: lttb needs at least %d output points, got %d", errs.ErrInvalidWidth, minLTTBPoints, nOut)
	}
	if nOut > n {
		return nil, fmt.Errorf("%w: %d output points requested from %d input points", errs.ErrInvalidWidth, nOut, n)
	}

	offset := Offsets(n, nOut)
	for i := 1; i < len(offset); i++ {
		if offset[i] <= offset[i-1] {
			return nil, fmt.Errorf("%w: bucket %d is [%d, %d)", errs.ErrEmptyBucket, i-1, offset[i-1], offset[i])
		}
	}
	if offset[len(offset)-1] > n-1 {
		return nil, fmt.Errorf("%w: last bucket ends at %d, past index %d", errs.ErrEmptyBucket, offset[len(offset)-1], n-1)
	}

	sampled := make([]int, nOut)
	sampled[0] = 0
	sampled[nOut-1] = n - 1

	a := 0
	for i := 0; i < nOut-3; i++ {
		lo, mid, hi := offset[i], offset[i+1], offset[i+2]
		avgX, avgY := centroid(x[mid:hi], y[mid:hi])
		a = lo + argmaxArea(x[a], y[a], avgX, avgY, x[lo:mid], y[lo:mid])
		sampled[i+1] = a
	}

	// The last bucket has no bucket after it; the last point stands in for the centroid.
	lo, hi := offset[len(offset)-2], offset[len(offset)-1]
	sampled[nOut-2] = lo + argmaxArea(x[a], y[a], x[n-1], y[n-1], x[lo:hi], y[lo:hi])

	return sampled, nil
}

// Offsets returns the bucket boundary table used by LTTB for n input points and
// nOut output points.
//
// The table has nOut-1 entries, offset[i] = int(1 + i*blockSize) with
// blockSize = (n-2)/(nOut-2) computed in floating point. Truncation is deliberate:
// bucket widths are uneven and the selection order depends on the exact boundaries.
// Bucket i spans [offset[i], offset[i+1]).
//
// Offsets returns nil when nOut < 3 or n < 3.
func Offsets(n, nOut int) []int {
	if nOut < minLTTBPoints || n < minLTTBPoints {
		return nil
	}

	blockSize := float64(n-2) / float64(nOut-2)
	offset := make([]int, nOut-1)
	for i := range offset {
		offset[i] = int(1 + float64(i)*blockSize)
	}

	return offset
}

// centroid returns the arithmetic mean of the bucket's x and y values.
// The bucket must not be empty.
func centroid(x, y []float64) (float64, float64) {
	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	count := float64(len(x))

	return sumX / count, sumY / count
}

// argmaxArea returns the position within the bucket of the point forming the largest
// triangle with (prevX, prevY) and (avgX, avgY).
//
// The area is left unhalved since only the ranking matters. NaN areas never win, unlike
// numpy's argmax which returns the first NaN; a bucket whose areas are all NaN yields position 0.
func argmaxArea(prevX, prevY, avgX, avgY float64, xBucket, yBucket []float64) int {
	dy := prevY - avgY
	dx := avgX - prevX
	c := prevX*avgY - avgX*prevY

	best := 0
	largest := math.Inf(-1)
	for i := range xBucket {
		area := math.Abs(xBucket[i]*dy + yBucket[i]*dx + c)
		if area > largest {
			largest, best = area, i
		}
	}

	return best
}
