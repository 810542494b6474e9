package array

import (
	"fmt"
	"math"
	"unsafe"
)

// elemSize returns the size in bytes of one T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocSlice returns a buffer of exactly n elements, metered against b.
//
// Capacities whose byte size overflows, budget refusals and recoverable
// runtime allocation panics are reported as KindOutOfMemory. Exhausting
// the heap itself is fatal in Go and cannot be reported.
func allocSlice[T any](op string, n int, b Budget) (buf []T, err error) {
	size := elemSize[T]()
	if n < 0 || (size != 0 && uintptr(n) > math.MaxInt/size) {
		return nil, newError(op, KindOutOfMemory, "%d elements of %d bytes overflow", n, size)
	}
	bytes := uintptr(n) * size
	if b != nil && !b.Acquire(bytes) {
		return nil, newError(op, KindOutOfMemory, "budget refused %d bytes", bytes)
	}
	defer func() {
		if r := recover(); r != nil {
			if b != nil {
				b.Release(bytes)
			}
			e := newError(op, KindOutOfMemory, "cannot allocate %d elements", n)
			if re, ok := r.(error); ok {
				e.Cause = re
			} else {
				e.Cause = fmt.Errorf("%v", r)
			}
			buf, err = nil, e
		}
	}()
	return make([]T, n), nil
}

// freeSlice returns the bytes of buf to b.
func freeSlice[T any](buf []T, b Budget) {
	if b != nil && len(buf) > 0 {
		b.Release(uintptr(len(buf)) * elemSize[T]())
	}
}

// bytesOf views the first n elements of buf as raw bytes.
// The view aliases buf and must not outlive it.
func bytesOf[T any](buf []T, n int) []byte {
	size := elemSize[T]()
	if n <= 0 || size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(buf))), uintptr(n)*size)
}
