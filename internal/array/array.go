// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// package array implements the growable array engine
// shared by the vector and the stack containers.
//
// Capacity is under explicit control: it only grows by Reserve,
// geometrically with a growth factor and clamped to a limit,
// and it only shrinks by Trim.
package array

import (
	"math"
	"math/bits"
	"runtime"
)

// LimitMax bounds the limit of an Array, so that the capacity
// arithmetic can never exceed the address space.
const LimitMax = int(math.MaxUint/(2*(bits.UintSize/8)) - 1)

// Array is a generic growable array with payload T.
//
// The fields are the engine state, the invariants
//
//	len(Items) <= cap(Items) <= Limit
//
// are maintained by the methods, never touch Items directly
// with append.
type Array[T any] struct {
	Items  []T
	Limit  int
	Growth float64
}

// Len returns the number of items.
func (a *Array[T]) Len() int {
	return len(a.Items)
}

// Cap returns the allocated number of slots.
func (a *Array[T]) Cap() int {
	return cap(a.Items)
}

// Full reports whether the limit is reached.
func (a *Array[T]) Full() bool {
	return len(a.Items) >= a.Limit
}

// NextCapacity returns the capacity reached by geometric growth
// from capacity until target is covered.
//
// The result is clamped to limit when the product exceeds the limit
// or when the multiplication does not increase the value any more.
func NextCapacity(capacity, target, limit int, growth float64) int {
	if target <= capacity {
		return capacity
	}

	newCap := max(capacity, 1)
	for newCap < target {
		grown := float64(newCap) * growth

		// clamp, also catches +Inf
		if grown >= float64(limit) {
			return limit
		}

		next := int(grown)

		// overflow detection, only possible on wraparound with growth >= 2
		if next <= newCap {
			return limit
		}
		newCap = next
	}

	return newCap
}

// Reserve grows the capacity to cover target items.
// It returns false if the allocation failed, the array is unchanged then.
//
// Reserve panics if target exceeds the limit, the caller must check.
func (a *Array[T]) Reserve(target int) bool {
	if target > a.Limit {
		panic("array: reserve beyond limit")
	}

	if target <= cap(a.Items) {
		return true
	}

	newCap := NextCapacity(cap(a.Items), target, a.Limit, a.Growth)

	newSlice, ok := alloc[T](len(a.Items), newCap)
	if !ok {
		return false
	}

	copy(newSlice, a.Items)
	a.Items = newSlice

	return true
}

// Trim shrinks the capacity to the current length,
// an empty array releases its backing storage.
func (a *Array[T]) Trim() bool {
	if len(a.Items) == 0 {
		a.Items = nil
		return true
	}

	return a.SetCap(len(a.Items))
}

// SetCap reallocates the backing storage to exactly c slots.
// It returns false if the allocation failed, the array is unchanged then.
//
// SetCap panics if c is less than the length or greater than the limit.
func (a *Array[T]) SetCap(c int) bool {
	if c < len(a.Items) || c > a.Limit {
		panic("array: capacity out of range")
	}

	if c == cap(a.Items) {
		return true
	}

	newSlice, ok := alloc[T](len(a.Items), c)
	if !ok {
		return false
	}

	copy(newSlice, a.Items)
	a.Items = newSlice

	return true
}

// InsertAt inserts the item at index i, shifting the items
// at and after i one slot to the right.
//
// InsertAt panics if i is out of range or if there is no free slot,
// call Reserve before.
func (a *Array[T]) InsertAt(i int, item T) {
	if len(a.Items) == cap(a.Items) {
		panic("array: insert without reserve")
	}

	// in place resize, no alloc
	a.Items = a.Items[:len(a.Items)+1]
	copy(a.Items[i+1:], a.Items[i:])
	a.Items[i] = item
}

// DeleteAt deletes the item at index i and returns it,
// the items after i are shifted one slot to the left.
// The capacity is not changed.
//
// DeleteAt panics if i is out of range.
func (a *Array[T]) DeleteAt(i int) T {
	item := a.Items[i]

	l := len(a.Items) - 1            // new len
	copy(a.Items[i:], a.Items[i+1:]) // overwrite s[i]
	clear(a.Items[l:])               // clear/zeroes the tail
	a.Items = a.Items[:l]            // cut to new len

	return item
}

// Push appends item at the end.
//
// Push panics if there is no free slot, call Reserve before.
func (a *Array[T]) Push(item T) {
	if len(a.Items) == cap(a.Items) {
		panic("array: push without reserve")
	}
	a.Items = append(a.Items, item) // no alloc
}

// Pop removes and returns the last item.
//
// Pop panics if the array is empty.
func (a *Array[T]) Pop() T {
	l := len(a.Items) - 1
	item := a.Items[l]

	clear(a.Items[l:])
	a.Items = a.Items[:l]

	return item
}

// Reset drops all items, the capacity is not changed.
func (a *Array[T]) Reset() {
	clear(a.Items)
	a.Items = a.Items[:0]
}

// alloc allocates a slice with length l and capacity c.
// Allocations the runtime refuses to serve, e.g. a capacity
// beyond the maximum allocation size, are reported as !ok.
func alloc[T any](l, c int) (s []T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isRuntime := r.(runtime.Error); !isRuntime {
				panic(r)
			}
			s, ok = nil, false
		}
	}()

	return make([]T, l, c), true
}
