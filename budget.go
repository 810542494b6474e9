package array

import "sync/atomic"

// Budget meters the bytes held in Array backing buffers.
//
// Acquire is called before a new buffer is allocated and must report
// whether n more bytes may be held. Release returns bytes from a buffer
// that has been dropped. Implementations shared between arrays owned by
// different goroutines must be safe for concurrent use.
type Budget interface {
	Acquire(n uintptr) bool
	Release(n uintptr)
}

// Limit is a Budget that refuses to hold more than a fixed number of bytes.
// It is safe for concurrent use and may be shared by many arrays.
type Limit struct {
	max   uintptr
	inUse atomic.Uintptr
}

// NewLimit creates a Limit allowing at most max bytes.
// A max <= 0 refuses every non-empty allocation.
func NewLimit(max int) *Limit {
	if max < 0 {
		max = 0
	}
	return &Limit{max: uintptr(max)}
}

// Acquire reserves n bytes if doing so stays within the limit.
func (l *Limit) Acquire(n uintptr) bool {
	for {
		cur := l.inUse.Load()
		if n > l.max-cur {
			return false
		}
		if l.inUse.CompareAndSwap(cur, cur+n) {
			return true
		}
	}
}

// Release gives back n bytes. Releasing more than is held clamps to zero.
func (l *Limit) Release(n uintptr) {
	for {
		cur := l.inUse.Load()
		next := uintptr(0)
		if n < cur {
			next = cur - n
		}
		if l.inUse.CompareAndSwap(cur, next) {
			return
		}
	}
}

// InUse returns the number of bytes currently held against the limit.
func (l *Limit) InUse() int {
	return int(l.inUse.Load())
}

// Max returns the configured limit in bytes.
func (l *Limit) Max() int {
	return int(l.max)
}
