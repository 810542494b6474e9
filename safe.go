package array

import "sync"

// SafeArray is a mutex-protected wrapper around Array for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
//
// Element pointers are never handed out; accessors return copies.
type SafeArray[T any] struct {
	mu sync.Mutex
	a  *Array[T]
}

// NewSafeArray creates a new thread-safe array. See New.
func NewSafeArray[T any](capacity int, opts ...Option) (*SafeArray[T], error) {
	a, err := New[T](capacity, opts...)
	return &SafeArray[T]{a: a}, err
}

// Reserve thread-safely ensures room for at least n elements.
func (s *SafeArray[T]) Reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reserve(n)
}

// Append thread-safely adds v at the end.
func (s *SafeArray[T]) Append(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Append(v)
}

// Push is an alias for Append.
func (s *SafeArray[T]) Push(v T) error {
	return s.Append(v)
}

// Prepend thread-safely adds v at the start.
func (s *SafeArray[T]) Prepend(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Prepend(v)
}

// Pop thread-safely removes and returns the last element.
func (s *SafeArray[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Pop()
}

// Insert thread-safely copies src before pos.
func (s *SafeArray[T]) Insert(pos int, src ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Insert(pos, src...)
}

// Remove thread-safely deletes up to count elements at pos.
func (s *SafeArray[T]) Remove(pos, count int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remove(pos, count)
}

// Compact thread-safely shrinks the backing buffer to the array's size.
func (s *SafeArray[T]) Compact() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Compact()
}

// Release thread-safely drops the backing buffer.
func (s *SafeArray[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Get thread-safely returns a copy of element i.
// It reports false if i is out of range; unlike Array.Get it always checks.
func (s *SafeArray[T]) Get(i int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= s.a.Size() {
		var zero T
		return zero, false
	}
	return s.a.data[i], true
}

// Set thread-safely overwrites element i. It reports false if i is out of range.
func (s *SafeArray[T]) Set(i int, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= s.a.Size() {
		return false
	}
	s.a.data[i] = v
	return true
}

// Snapshot thread-safely returns a copy of all elements.
func (s *SafeArray[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, s.a.Size())
	copy(out, s.a.Data())
	return out
}

// Sum64 thread-safely returns the FNV-1a hash of the elements.
func (s *SafeArray[T]) Sum64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Sum64()
}
