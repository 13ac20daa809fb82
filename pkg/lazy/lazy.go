// Package lazy provides a deferred value that is computed on first access.
package lazy

import "sync"

// Value holds a computation that runs on the first call to Get.
//
// A successful result is cached and returned by every later Get. A failed
// computation is not cached: the error is returned to the caller and the next
// Get runs the computation again.
type Value[T any] struct {
	mu     sync.Mutex
	fn     func() (T, error)
	value  T
	loaded bool
}

// New returns a Value that computes its result with fn.
func New[T any](fn func() (T, error)) *Value[T] {
	return &Value[T]{fn: fn}
}

// Get returns the cached value, computing it first if needed.
func (v *Value[T]) Get() (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loaded {
		return v.value, nil
	}

	val, err := v.fn()
	if err != nil {
		var zero T
		return zero, err
	}

	v.value = val
	v.loaded = true
	return v.value, nil
}

// Loaded reports whether a value has been computed and cached.
func (v *Value[T]) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}
