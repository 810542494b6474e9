package array

import "hash/fnv"

// FNV32a returns the 32-bit FNV-1a hash of b.
func FNV32a(b []byte) uint32 {
	h := fnv.New32a()
	h.Write(b)
	return h.Sum32()
}

// FNV64a returns the 64-bit FNV-1a hash of b.
func FNV64a(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

// Sum32 returns the 32-bit FNV-1a hash of the raw bytes of elements
// [0, Size()). Elements are hashed as opaque memory: padding bytes and
// pointer values are included as they are.
func (a *Array[T]) Sum32() uint32 {
	return FNV32a(a.Bytes())
}

// Sum64 is the 64-bit variant of Sum32.
func (a *Array[T]) Sum64() uint64 {
	return FNV64a(a.Bytes())
}

// Bytes returns the raw memory of elements [0, Size()). It aliases the
// array's storage under the same validity rules as Data.
func (a *Array[T]) Bytes() []byte {
	if a == nil {
		return nil
	}
	return bytesOf(a.data, a.size)
}
