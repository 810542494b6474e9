// Package array implements a generic growable array over one contiguous buffer.
//
// # Overview
//
// An Array[T] owns a single heap buffer of Capacity elements, of which the
// first Size are valid. Growth is quantized to powers of two, so a run of
// appends reallocates O(log n) times. Positional inserts and removes shift
// the tail of the buffer with one block move and keep element order stable.
//
// # Basic Usage
//
//	a, err := array.New[int](0) // allocate nothing yet
//	if err != nil {
//		return err
//	}
//	defer a.Release()
//
//	a.Append(1)
//	a.Append(2)
//	a.Append(3)               // [1 2 3], capacity 4
//	a.Insert(1, 9, 9)         // [1 9 9 2 3]
//	n := a.Remove(1, 2)       // [1 2 3], n == 2
//	a.Pop()                   // [1 2]
//	a.Compact()               // capacity 2
//
// # Error Contract
//
// Reserve, Append, Push, Prepend and Insert are strict: they return an
// *Error whose Kind is out_of_memory, out_of_bounds or bad_argument, and a
// failed call leaves the array exactly as it was. Use errors.Is with
// ErrOutOfMemory, ErrOutOfBounds or ErrBadArgument.
//
// Remove and Compact never fail. Remove clamps its count and returns how
// many elements it removed; Compact reports whether the buffer is tight.
//
// Go cannot recover from heap exhaustion, so out_of_memory covers capacity
// overflow, recoverable allocation panics and refusals from a Budget:
//
//	limit := array.NewLimit(1 << 20)
//	a, _ := array.New[Record](0, array.WithBudget(limit))
//
// # Element Access
//
// At returns a pointer into the buffer and Data returns the valid region as
// a slice. Both are invalidated by any call that reallocates. Indexing at
// or beyond Size is a caller error that is only checked when built with
// the arraydebug tag:
//
//	go test -tags arraydebug ./...
//
// # Thread Safety
//
// The basic Array type is not thread-safe and takes no locks. At most one
// goroutine may use it at a time. For concurrent access, use SafeArray:
//
//	s, _ := array.NewSafeArray[int](0)
//	go s.Append(1)
//	go s.Append(2)
//
// # Logging
//
// Growth and compaction are logged at debug level through go.uber.org/zap.
// The package logger is a no-op until SetLogger is called; WithLogger
// overrides it per array.
package array
