// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package array

import (
	"math"
	"math/bits"
	"math/rand/v2"
	"slices"
	"testing"
)

func newArray[T any](limit, capacity int) *Array[T] {
	a := &Array[T]{Limit: limit, Growth: 2}
	if capacity > 0 {
		a.Items = make([]T, 0, capacity)
	}
	return a
}

func TestNextCapacity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		capacity int
		target   int
		limit    int
		growth   float64
		want     int
	}{
		{"no growth needed", 8, 4, 100, 2, 8},
		{"equal", 8, 8, 100, 2, 8},
		{"from zero", 0, 1, 100, 2, 1},
		{"from zero to 5", 0, 5, 100, 2, 8},
		{"doubling", 4, 9, 100, 2, 16},
		{"factor 3", 1, 10, 100, 3, 27},
		{"fractional", 2, 6, 100, 2.5, 12},
		{"clamped", 64, 65, 100, 2, 100},
		{"clamped exact", 50, 51, 100, 2, 100},
		{"infinite growth", 5, 10, 100, math.Inf(1), 100},
		{"near max", math.MaxInt/2 + 1, math.MaxInt, math.MaxInt, 2, math.MaxInt},
		{"limit max", LimitMax/2 + 1, LimitMax, LimitMax, 2, LimitMax},
	}

	for _, tt := range tests {
		got := NextCapacity(tt.capacity, tt.target, tt.limit, tt.growth)
		if got != tt.want {
			t.Errorf("%s: NextCapacity(%d, %d, %d, %v), want %d, got %d",
				tt.name, tt.capacity, tt.target, tt.limit, tt.growth, tt.want, got)
		}
	}
}

func TestNextCapacityMonotone(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	for range 10_000 {
		limit := prng.IntN(1_000_000) + 1
		capacity := prng.IntN(limit + 1)
		target := prng.IntN(limit + 1)
		growth := 2 + prng.Float64()*3

		got := NextCapacity(capacity, target, limit, growth)
		if got < capacity || got < target || got > limit {
			t.Fatalf("NextCapacity(%d, %d, %d, %v) = %d violates capacity <= got <= limit",
				capacity, target, limit, growth, got)
		}
	}
}

func TestReserve(t *testing.T) {
	t.Parallel()
	a := newArray[int](100, 0)

	if !a.Reserve(0) || a.Cap() != 0 {
		t.Errorf("Reserve(0), want cap 0, got %d", a.Cap())
	}

	if !a.Reserve(3) || a.Cap() != 4 {
		t.Errorf("Reserve(3), want cap 4, got %d", a.Cap())
	}

	// never shrinks
	if !a.Reserve(1) || a.Cap() != 4 {
		t.Errorf("Reserve(1), want cap 4, got %d", a.Cap())
	}

	if !a.Reserve(100) || a.Cap() != 100 {
		t.Errorf("Reserve(100), want cap 100, got %d", a.Cap())
	}
}

func TestReservePanicsBeyondLimit(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Reserve beyond limit, expected panic")
		}
	}()

	a := newArray[int](10, 0)
	a.Reserve(11)
}

func TestReserveAllocFailure(t *testing.T) {
	t.Parallel()
	if bits.UintSize < 64 {
		t.Skip("needs 64 bit address space")
	}

	a := newArray[[4096]byte](LimitMax, 2)
	a.Push([4096]byte{1})

	if a.Reserve(1 << 50) {
		t.Fatalf("Reserve(1<<50) of 4KiB items, expected allocation failure")
	}

	if a.Cap() != 2 || a.Len() != 1 || a.Items[0][0] != 1 {
		t.Errorf("failed Reserve modified the array: len %d, cap %d", a.Len(), a.Cap())
	}
}

func TestTrim(t *testing.T) {
	t.Parallel()
	a := newArray[int](100, 10)

	for i := range 3 {
		a.Push(i)
	}

	if !a.Trim() || a.Cap() != 3 || a.Len() != 3 {
		t.Errorf("Trim, want len 3 cap 3, got len %d cap %d", a.Len(), a.Cap())
	}
	if !slices.Equal(a.Items, []int{0, 1, 2}) {
		t.Errorf("Trim, items changed: %v", a.Items)
	}

	a.Reset()
	if !a.Trim() || a.Cap() != 0 || a.Items != nil {
		t.Errorf("Trim empty, want nil items, got %v", a.Items)
	}
}

func TestInsertDeleteAt(t *testing.T) {
	t.Parallel()
	a := newArray[int](100, 0)

	// insert 0..9 in reverse order at index 0
	for i := 9; i >= 0; i-- {
		a.Reserve(a.Len() + 1)
		a.InsertAt(0, i)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if !slices.Equal(a.Items, want) {
		t.Fatalf("InsertAt, want %v, got %v", want, a.Items)
	}

	a.Reserve(a.Len() + 1)
	a.InsertAt(5, 42)
	want = []int{0, 1, 2, 3, 4, 42, 5, 6, 7, 8, 9}
	if !slices.Equal(a.Items, want) {
		t.Fatalf("InsertAt middle, want %v, got %v", want, a.Items)
	}

	if v := a.DeleteAt(5); v != 42 {
		t.Errorf("DeleteAt, want 42, got %d", v)
	}
	if v := a.DeleteAt(0); v != 0 {
		t.Errorf("DeleteAt, want 0, got %d", v)
	}
	if v := a.DeleteAt(a.Len() - 1); v != 9 {
		t.Errorf("DeleteAt, want 9, got %d", v)
	}

	want = []int{1, 2, 3, 4, 5, 6, 7, 8}
	if !slices.Equal(a.Items, want) {
		t.Errorf("DeleteAt, want %v, got %v", want, a.Items)
	}

	// tail is cleared
	if tail := a.Items[:a.Cap()][a.Len():]; slices.ContainsFunc(tail, func(v int) bool { return v != 0 }) {
		t.Errorf("DeleteAt, tail not cleared: %v", tail)
	}
}

func TestInsertWithoutReservePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("InsertAt without Reserve, expected panic")
		}
	}()

	a := newArray[int](10, 0)
	a.InsertAt(0, 1)
}

func TestPushPop(t *testing.T) {
	t.Parallel()
	a := newArray[int](1_000, 0)

	for i := range 1_000 {
		if !a.Reserve(a.Len() + 1) {
			t.Fatalf("Reserve failed")
		}
		a.Push(i)
		if a.Cap() < a.Len() || a.Cap() > a.Limit {
			t.Fatalf("invariant violated, len %d, cap %d", a.Len(), a.Cap())
		}
	}

	if !a.Full() {
		t.Errorf("Full, want true")
	}

	for i := 999; i >= 0; i-- {
		if v := a.Pop(); v != i {
			t.Fatalf("Pop, want %d, got %d", i, v)
		}
	}

	if a.Len() != 0 || a.Cap() != 1_000 {
		t.Errorf("Pop changed capacity, len %d cap %d", a.Len(), a.Cap())
	}
}

func TestSetCap(t *testing.T) {
	t.Parallel()
	a := newArray[int](100, 0)

	if !a.SetCap(5) || a.Cap() != 5 || a.Len() != 0 {
		t.Errorf("SetCap(5), want cap 5, got %d", a.Cap())
	}

	a.Push(1)
	a.Push(2)

	if !a.SetCap(2) || a.Cap() != 2 || !slices.Equal(a.Items, []int{1, 2}) {
		t.Errorf("SetCap(2), want cap 2 items [1 2], got cap %d items %v", a.Cap(), a.Items)
	}

	for _, c := range []int{1, 101} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("SetCap(%d), expected panic", c)
				}
			}()
			a.SetCap(c)
		}()
	}
}
