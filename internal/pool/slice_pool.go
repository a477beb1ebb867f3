package pool

import "sync"

// slicePool hands out length-adjusted slices backed by a sync.Pool.
type slicePool[T any] struct {
	p sync.Pool
}

func newSlicePool[T any]() *slicePool[T] {
	return &slicePool[T]{
		p: sync.Pool{New: func() any { return &[]T{} }},
	}
}

func (sp *slicePool[T]) get(size int) ([]T, func()) {
	ptr, _ := sp.p.Get().(*[]T)
	if cap(*ptr) < size {
		*ptr = make([]T, size)
	} else {
		*ptr = (*ptr)[:size]
	}

	return *ptr, func() { sp.p.Put(ptr) }
}

var (
	float64SlicePool = newSlicePool[float64]()
	intSlicePool     = newSlicePool[int]()
)

// GetFloat64Slice retrieves a float64 slice of length size from the pool.
//
// The contents are not cleared. The caller must call the returned cleanup function
// (typically with defer) once the slice is no longer referenced.
//
// Example:
//
//	ys, cleanup := pool.GetFloat64Slice(len(bools))
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	return float64SlicePool.get(size)
}

// GetIntSlice retrieves an int slice of length size from the pool.
//
// The contents are not cleared. The caller must call the returned cleanup function
// once the slice is no longer referenced.
func GetIntSlice(size int) ([]int, func()) {
	return intSlicePool.get(size)
}
