package array

import (
	"iter"
	"math"
	"unsafe"

	"go.uber.org/zap"
)

// Array is a growable contiguous buffer of T. Not goroutine-safe:
// at most one goroutine may use an Array at a time. Use SafeArray for
// concurrent access.
//
// The zero value is an empty array ready for use.
type Array[T any] struct {
	data   []T // backing buffer, len(data) is the capacity
	size   int
	budget Budget
	logger *zap.Logger

	grows       int
	compactions int
}

// New creates an Array able to hold at least capacity elements without
// growing. A capacity of 0 allocates nothing.
//
// The returned array is never nil. If the initial reservation fails it is
// empty and still usable.
func New[T any](capacity int, opts ...Option) (*Array[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	a := &Array[T]{budget: o.budget, logger: o.logger}
	if capacity < 0 {
		return a, newError("create", KindBadArgument, "negative capacity %d", capacity)
	}
	if err := a.reserve("create", capacity); err != nil {
		return a, err
	}
	return a, nil
}

// Release drops the backing buffer and resets the array to its empty state.
// Calling Release on an empty or already released array is a no-op.
func (a *Array[T]) Release() {
	if a == nil {
		return
	}
	freeSlice(a.data, a.budget)
	a.data = nil
	a.size = 0
	a.grows = 0
	a.compactions = 0
}

// Reserve ensures the array can hold at least n elements. The capacity
// grows to the smallest power of two >= n; existing elements keep their
// positions. On failure the array is unchanged.
func (a *Array[T]) Reserve(n int) error {
	if a == nil {
		return errNilArray("reserve")
	}
	return a.reserve("reserve", n)
}

func (a *Array[T]) reserve(op string, n int) error {
	if n <= len(a.data) {
		return nil
	}
	c := Roundup(uint(n))
	if c == 0 || c > math.MaxInt {
		return a.refused(newError(op, KindOutOfMemory, "capacity %d has no power of two", n))
	}
	buf, err := allocSlice[T](op, int(c), a.budget)
	if err != nil {
		return a.refused(err)
	}
	old := len(a.data)
	copy(buf, a.data[:a.size])
	freeSlice(a.data, a.budget)
	a.data = buf
	a.grows++
	if ce := a.log().Check(zap.DebugLevel, "array grown"); ce != nil {
		ce.Write(zap.Int("from", old), zap.Int("to", len(buf)), zap.Int("size", a.size))
	}
	return nil
}

func (a *Array[T]) refused(err error) error {
	if ce := a.log().Check(zap.WarnLevel, "array growth refused"); ce != nil {
		ce.Write(zap.Int("capacity", len(a.data)), zap.Int("size", a.size), zap.Error(err))
	}
	return err
}

// Append adds v at the end of the array.
func (a *Array[T]) Append(v T) error {
	if a == nil {
		return errNilArray("append")
	}
	if err := a.reserve("append", a.size+1); err != nil {
		return err
	}
	a.data[a.size] = v
	a.size++
	return nil
}

// Push is an alias for Append.
func (a *Array[T]) Push(v T) error {
	if a == nil {
		return errNilArray("push")
	}
	return a.Append(v)
}

// Prepend adds v at the start of the array. Every element is shifted by
// one, so this is O(Size) and slow on large arrays.
func (a *Array[T]) Prepend(v T) error {
	if a == nil {
		return errNilArray("prepend")
	}
	return a.insert("prepend", 0, []T{v})
}

// Pop removes the last element and returns it. It reports false if the
// array is empty. Capacity is kept and the vacated slot is not cleared.
func (a *Array[T]) Pop() (T, bool) {
	var zero T
	if a == nil || a.size == 0 {
		return zero, false
	}
	a.size--
	return a.data[a.size], true
}

// Insert copies src into the array before position pos. pos == Size()
// appends. src must not alias the array's own storage.
//
// Inserting nothing is ErrBadArgument and pos outside [0, Size()] is
// ErrOutOfBounds. On any error the array is unchanged.
func (a *Array[T]) Insert(pos int, src ...T) error {
	if a == nil {
		return errNilArray("insert")
	}
	return a.insert("insert", pos, src)
}

func (a *Array[T]) insert(op string, pos int, src []T) error {
	n := len(src)
	if n == 0 {
		return newError(op, KindBadArgument, "nothing to insert")
	}
	if pos < 0 || pos > a.size {
		return newError(op, KindOutOfBounds, "position %d outside [0:%d]", pos, a.size)
	}
	if n > math.MaxInt-a.size {
		return a.refused(newError(op, KindOutOfMemory, "%d + %d elements overflow", a.size, n))
	}
	end := a.size + n
	if err := a.reserve(op, end); err != nil {
		return err
	}
	if m := a.size - pos; m > 0 {
		// Open a gap of n elements; copy has memmove semantics.
		copy(a.data[pos+n:end], a.data[pos:a.size])
	}
	copy(a.data[pos:pos+n], src)
	a.size = end
	return nil
}

// Remove deletes up to count elements starting at pos, closing the gap,
// and returns how many were removed. The count is clamped to the elements
// available; an out of range pos, or count <= 0, removes nothing.
// Remove never fails.
func (a *Array[T]) Remove(pos, count int) int {
	if a == nil || count <= 0 || pos < 0 || pos >= a.size {
		return 0
	}
	if count > a.size-pos {
		count = a.size - pos
	}
	if m := a.size - pos - count; m > 0 {
		copy(a.data[pos:pos+m], a.data[pos+count:a.size])
	}
	a.size -= count
	return count
}

// Compact shrinks the backing buffer to exactly Size elements so the
// memory beyond it can be reclaimed. It is best effort: if the smaller
// buffer cannot be obtained the array is left as it was.
//
// Compact reports whether Capacity equals Size on return. Empty arrays are
// left alone.
func (a *Array[T]) Compact() bool {
	if a == nil {
		return false
	}
	if a.size == len(a.data) {
		return true
	}
	if a.size == 0 {
		return false
	}
	buf, err := allocSlice[T]("compact", a.size, a.budget)
	if err != nil {
		if ce := a.log().Check(zap.DebugLevel, "array compaction skipped"); ce != nil {
			ce.Write(zap.Int("capacity", len(a.data)), zap.Int("size", a.size), zap.Error(err))
		}
		return false
	}
	old := len(a.data)
	copy(buf, a.data[:a.size])
	freeSlice(a.data, a.budget)
	a.data = buf
	a.compactions++
	if ce := a.log().Check(zap.DebugLevel, "array compacted"); ce != nil {
		ce.Write(zap.Int("from", old), zap.Int("to", a.size))
	}
	return true
}

// Size returns the number of elements in the array.
func (a *Array[T]) Size() int {
	if a == nil {
		return 0
	}
	return a.size
}

// Capacity returns how many elements the array can hold before it grows.
func (a *Array[T]) Capacity() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// At returns a pointer to element i. The pointer is valid until the next
// call that grows, compacts or releases the array.
//
// i must be in [0, Size()). This is only checked in builds with the
// arraydebug tag; otherwise an out of range i is undefined behavior.
func (a *Array[T]) At(i int) *T {
	if debugChecks && uint(i) >= uint(a.size) {
		panic(indexOutOfRange(i, a.size))
	}
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(a.data)), uintptr(i)*elemSize[T]()))
}

// Get returns a copy of element i. The preconditions of At apply.
func (a *Array[T]) Get(i int) T {
	return *a.At(i)
}

// Data returns the elements [0, Size()) backed by the array's storage.
// The slice is capped at Size so appending to it never writes into the
// array. It is valid until the next call that grows, compacts or releases
// the array.
func (a *Array[T]) Data() []T {
	if a == nil {
		return nil
	}
	return a.data[:a.size:a.size]
}

// All returns an iterator over index and element pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.Size(); i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

func (a *Array[T]) log() *zap.Logger {
	if a.logger != nil {
		return a.logger
	}
	return Logger()
}
