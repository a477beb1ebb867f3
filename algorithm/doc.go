// Package algorithm implements the index selectors used to downsample an ordered
// one-dimensional (x, y) series.
//
// Two selectors are provided:
//
//   - LTTB: Largest-Triangle-Three-Buckets. The series is split into contiguous buckets
//     and, per bucket, the point forming the largest triangle with the previously selected
//     point and the next bucket's centroid is kept. The first and last points are always
//     selected and the result has exactly nOut entries.
//   - Nth: uniform stride selection, every ceil(n/nOut)-th index starting at 0.
//
// Both selectors return indices into the input slices. Inputs are never modified, and
// every call allocates its own result, so selectors are safe for concurrent use.
//
// # Usage
//
//	idx, err := algorithm.LTTB(xs, ys, 500)
//	if err != nil {
//	    return err
//	}
//	for _, i := range idx {
//	    plot(xs[i], ys[i])
//	}
//
// Select dispatches on a format.AlgorithmType when the algorithm is chosen at runtime.
package algorithm
