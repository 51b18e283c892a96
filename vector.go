// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"iter"
	"slices"

	"github.com/gaissmai/collections/internal/array"
	"github.com/gaissmai/collections/internal/value"
)

// Vector is a growable array of values of type T with an element limit.
//
// The capacity grows geometrically by the growth factor, clamped to the
// limit, and never shrinks implicitly, see [Vector.Reserve] and
// [Vector.Trim].
//
// Values are owned by the vector, see [WithCopy] and [WithFree].
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	arr   array.Array[T]
	owner value.Owner[T]
}

// NewVector returns an empty vector for at most limit values with
// the initial capacity and the growth factor, use [DefaultGrowth]
// if in doubt.
//
// The parameters must satisfy 0 < limit <= [LimitMax],
// 0 <= capacity <= limit and growth >= 2, T must not be zero-sized.
func NewVector[T any](limit, capacity int, growth float64, opts ...Option[T]) (*Vector[T], error) {
	arr, err := newArray[T](limit, capacity, growth)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{arr: arr, owner: newOwner(opts)}, nil
}

// Copy returns a new vector with the same configuration and
// duplicates of all values in the same order.
func (v *Vector[T]) Copy() (*Vector[T], error) {
	if v == nil {
		return nil, errNilContainer
	}

	arr, err := cloneArray(&v.arr, v.owner, false)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{arr: arr, owner: v.owner}, nil
}

// Reverse returns a new vector with the same configuration and
// duplicates of all values in reverse order.
func (v *Vector[T]) Reverse() (*Vector[T], error) {
	if v == nil {
		return nil, errNilContainer
	}

	arr, err := cloneArray(&v.arr, v.owner, true)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{arr: arr, owner: v.owner}, nil
}

// Free releases all values and the backing storage.
// The vector must not be used afterwards.
func (v *Vector[T]) Free() {
	if v == nil {
		return
	}

	v.owner.ReleaseAll(v.arr.Items)
	v.arr.Items = nil
}

// Clear releases all values, the capacity is not changed.
func (v *Vector[T]) Clear() error {
	if v == nil {
		return errNilContainer
	}

	v.owner.ReleaseAll(v.arr.Items)
	v.arr.Reset()

	return nil
}

// Reserve grows the capacity to hold at least n values.
// It fails with [ErrInvalidArgument] if n exceeds the limit.
func (v *Vector[T]) Reserve(n int) error {
	if v == nil {
		return errNilContainer
	}
	return reserve(&v.arr, n)
}

// Trim shrinks the capacity to the size.
func (v *Vector[T]) Trim() error {
	if v == nil {
		return errNilContainer
	}
	return trim(&v.arr)
}

// Insert stores a duplicate of val at index i, 0 <= i <= size,
// shifting the values at and after i one position to the right.
func (v *Vector[T]) Insert(i int, val T) error {
	if v == nil {
		return errNilContainer
	}

	if i < 0 || i > v.arr.Len() {
		return errIndex(i, v.arr.Len())
	}

	if v.arr.Full() {
		return errFull(v.arr.Limit)
	}

	item, err := dup(v.owner, val)
	if err != nil {
		return err
	}

	if err := reserve(&v.arr, v.arr.Len()+1); err != nil {
		v.owner.Release(item)
		return err
	}

	v.arr.InsertAt(i, item)

	return nil
}

// Remove removes the value at index i and returns a duplicate of it,
// the values after i are shifted one position to the left.
func (v *Vector[T]) Remove(i int) (T, error) {
	var zero T
	if v == nil {
		return zero, errNilContainer
	}

	if i < 0 || i >= v.arr.Len() {
		return zero, errIndex(i, v.arr.Len())
	}

	out, err := dup(v.owner, v.arr.Items[i])
	if err != nil {
		return zero, err
	}

	v.owner.Release(v.arr.DeleteAt(i))

	return out, nil
}

// Delete removes the value at index i like [Vector.Remove],
// without returning it.
func (v *Vector[T]) Delete(i int) error {
	if v == nil {
		return errNilContainer
	}

	if i < 0 || i >= v.arr.Len() {
		return errIndex(i, v.arr.Len())
	}

	v.owner.Release(v.arr.DeleteAt(i))

	return nil
}

// RemoveAll removes all values comparing equal to key,
// the order of the remaining values is not changed.
func (v *Vector[T]) RemoveAll(key T, cmp CompareFunc[T]) error {
	if v == nil {
		return errNilContainer
	}
	if cmp == nil {
		return errNilCompare
	}

	items := v.arr.Items
	j := 0
	for _, item := range items {
		if cmp(item, key) == 0 {
			v.owner.Release(item)
			continue
		}
		items[j] = item
		j++
	}

	clear(items[j:])
	v.arr.Items = items[:j]

	return nil
}

// Get returns a duplicate of the value at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	var zero T
	if v == nil {
		return zero, errNilContainer
	}

	if i < 0 || i >= v.arr.Len() {
		return zero, errIndex(i, v.arr.Len())
	}

	return dup(v.owner, v.arr.Items[i])
}

// Set replaces the value at index i by a duplicate of val.
// The old value is released after the new one is duplicated.
func (v *Vector[T]) Set(i int, val T) error {
	if v == nil {
		return errNilContainer
	}

	if i < 0 || i >= v.arr.Len() {
		return errIndex(i, v.arr.Len())
	}

	item, err := dup(v.owner, val)
	if err != nil {
		return err
	}

	v.owner.Release(v.arr.Items[i])
	v.arr.Items[i] = item

	return nil
}

// Sort sorts the values in ascending order by cmp, or in
// descending order with reverse set.
//
// The sort is not stable, use a [List] if equal values
// must keep their relative order.
func (v *Vector[T]) Sort(reverse bool, cmp CompareFunc[T]) error {
	if v == nil {
		return errNilContainer
	}
	if cmp == nil {
		return errNilCompare
	}

	slices.SortFunc(v.arr.Items, reverseCmp(cmp, reverse))

	return nil
}

// Search returns the smallest index of a value comparing equal
// to key, or -1.
func (v *Vector[T]) Search(key T, cmp CompareFunc[T]) (int, error) {
	if v == nil {
		return -1, errNilContainer
	}
	if cmp == nil {
		return -1, errNilCompare
	}

	return search(v.arr.Items, key, cmp), nil
}

// Contains reports whether a value compares equal to key.
func (v *Vector[T]) Contains(key T, cmp CompareFunc[T]) (bool, error) {
	i, err := v.Search(key, cmp)
	return i >= 0, err
}

// All returns an iterator over index and value in ascending order.
// The values are borrowed, they must not be modified or retained,
// use [Vector.Get] for an owned duplicate.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v == nil {
			return
		}
		for i, item := range v.arr.Items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Size returns the number of values.
func (v *Vector[T]) Size() int {
	if v == nil {
		return 0
	}
	return v.arr.Len()
}

// Width returns the byte size of one value.
func (v *Vector[T]) Width() int {
	if v == nil {
		return 0
	}
	return value.Width[T]()
}

// Limit returns the maximum number of values.
func (v *Vector[T]) Limit() int {
	if v == nil {
		return 0
	}
	return v.arr.Limit
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	if v == nil {
		return 0
	}
	return v.arr.Cap()
}

// Growth returns the growth factor of the capacity.
func (v *Vector[T]) Growth() float64 {
	if v == nil {
		return 0
	}
	return v.arr.Growth
}

// Empty reports whether the vector holds no values.
func (v *Vector[T]) Empty() bool {
	if v == nil {
		return false
	}
	return v.arr.Len() == 0
}

// Full reports whether the vector holds limit values.
func (v *Vector[T]) Full() bool {
	if v == nil {
		return false
	}
	return v.arr.Full()
}
