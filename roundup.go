package array

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Roundup returns the smallest power of two >= v.
//
// Roundup(0) returns 1. If no power of two >= v fits in T the result
// wraps to 0, which callers must treat as overflow.
func Roundup[T constraints.Unsigned](v T) T {
	if v == 0 {
		return 1
	}
	v--
	// Smear the highest set bit into every lower position.
	width := uint(unsafe.Sizeof(v)) * 8
	for s := uint(1); s < width; s <<= 1 {
		v |= v >> s
	}
	return v + 1
}
