package pool

import "sync"

// SlicePool reuses slices of T between calls.
//
// Slices are cleared before they return to the pool, so pooled slices of pointers
// do not keep their referents alive.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty SlicePool.
func NewSlicePool[T any]() *SlicePool[T] {
	p := &SlicePool[T]{}
	p.pool.New = func() any { return &[]T{} }

	return p
}

// Get retrieves and resizes a slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []T: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	items, cleanup := queuePool.Get(format.AlphabetSize)
//	defer cleanup()
//	items = items[:0]
func (p *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() {
		clear(*ptr)
		p.pool.Put(ptr)
	}
}
