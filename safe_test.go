package array

import (
	"errors"
	"sync"
	"testing"
)

func TestNewSafeArray(t *testing.T) {
	s, err := NewSafeArray[int](4)
	if err != nil {
		t.Fatalf("NewSafeArray error = %v", err)
	}
	if s.a == nil {
		t.Fatal("SafeArray.a is nil")
	}
	if s.Capacity() != 4 {
		t.Errorf("Capacity() = %d, want 4", s.Capacity())
	}

	s, err = NewSafeArray[int](-1)
	if !errors.Is(err, ErrBadArgument) || s == nil {
		t.Fatalf("NewSafeArray(-1) = %v, %v", s, err)
	}
}

func TestSafeArrayOperations(t *testing.T) {
	s, _ := NewSafeArray[int](0)

	for _, v := range []int{1, 2, 3} {
		if err := s.Push(v); err != nil {
			t.Fatalf("Push error = %v", err)
		}
	}
	if err := s.Prepend(0); err != nil {
		t.Fatalf("Prepend error = %v", err)
	}
	if err := s.Insert(2, 8, 9); err != nil {
		t.Fatalf("Insert error = %v", err)
	}
	if got := s.Snapshot(); len(got) != 6 || got[0] != 0 || got[2] != 8 || got[5] != 3 {
		t.Fatalf("Snapshot() = %v", got)
	}
	if n := s.Remove(2, 2); n != 2 {
		t.Errorf("Remove(2, 2) = %d, want 2", n)
	}
	if v, ok := s.Pop(); !ok || v != 3 {
		t.Errorf("Pop() = %d, %v", v, ok)
	}

	if v, ok := s.Get(1); !ok || v != 1 {
		t.Errorf("Get(1) = %d, %v, want 1, true", v, ok)
	}
	if _, ok := s.Get(3); ok {
		t.Error("Get(3) out of range reported ok")
	}
	if _, ok := s.Get(-1); ok {
		t.Error("Get(-1) reported ok")
	}
	if !s.Set(0, 10) || s.Set(3, 1) {
		t.Error("Set bounds handling is wrong")
	}

	if err := s.Reserve(100); err != nil {
		t.Fatalf("Reserve error = %v", err)
	}
	if !s.Compact() || s.Capacity() != 3 {
		t.Errorf("Compact() left capacity %d, want 3", s.Capacity())
	}
	if s.Sum64() == 0 {
		t.Error("Sum64() = 0")
	}

	s.Release()
	if s.Size() != 0 || s.Capacity() != 0 {
		t.Error("Release should empty the array")
	}
}

func TestSafeArrayConcurrentAppend(t *testing.T) {
	s, _ := NewSafeArray[int](0)
	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if err := s.Append(id*perWorker + i); err != nil {
					t.Errorf("Append error = %v", err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if s.Size() != workers*perWorker {
		t.Fatalf("Size() = %d, want %d", s.Size(), workers*perWorker)
	}
	seen := make(map[int]bool, workers*perWorker)
	for _, v := range s.Snapshot() {
		if seen[v] {
			t.Fatalf("value %d appended twice", v)
		}
		seen[v] = true
	}
}

func TestSafeArrayConcurrentMixed(t *testing.T) {
	s, _ := NewSafeArray[int](0)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				s.Insert(0, i)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				s.Remove(0, 1)
				s.Get(0)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = s.Metrics()
				s.Compact()
			}
		}()
	}
	wg.Wait()

	m := s.Metrics()
	if m.Size > m.Capacity {
		t.Fatalf("size %d exceeds capacity %d", m.Size, m.Capacity)
	}
}
