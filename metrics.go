package array

// ElemSize returns the size in bytes of one element.
func (a *Array[T]) ElemSize() int {
	return int(elemSize[T]())
}

// BytesInUse returns the number of bytes held by elements [0, Size()).
func (a *Array[T]) BytesInUse() int {
	return a.Size() * a.ElemSize()
}

// BytesReserved returns the size in bytes of the backing buffer.
func (a *Array[T]) BytesReserved() int {
	return a.Capacity() * a.ElemSize()
}

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
// Returns 0.0 if the array has no capacity.
func (a *Array[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.Size()) / float64(capacity)
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	m := ArrayMetrics{
		Size:          a.Size(),
		Capacity:      a.Capacity(),
		ElemSize:      a.ElemSize(),
		BytesInUse:    a.BytesInUse(),
		BytesReserved: a.BytesReserved(),
		Utilization:   a.Utilization(),
	}
	if a != nil {
		m.Grows = a.grows
		m.Compactions = a.compactions
	}
	return m
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Size          int     // Elements in use
	Capacity      int     // Elements allocated
	ElemSize      int     // Bytes per element
	BytesInUse    int     // Size * ElemSize
	BytesReserved int     // Capacity * ElemSize
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
	Grows         int     // Reallocations that increased capacity
	Compactions   int     // Successful compactions
}

// Thread-safe metrics for SafeArray

// Size thread-safely returns the number of elements.
func (s *SafeArray[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Size()
}

// Capacity thread-safely returns the number of elements allocated.
func (s *SafeArray[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of size to capacity.
func (s *SafeArray[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of array statistics.
func (s *SafeArray[T]) Metrics() ArrayMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
