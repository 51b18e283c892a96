// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/cockroachdb/errors"

	"github.com/gaissmai/collections/internal/array"
	"github.com/gaissmai/collections/internal/value"
)

// LimitMax is the greatest limit of a [Vector] or a [Stack],
// floor(MaxUint / (2 * pointer width)) - 1.
const LimitMax = array.LimitMax

// DefaultGrowth is the smallest allowed growth factor for
// the capacity of a [Vector] or a [Stack].
const DefaultGrowth = 2.0

// newArray validates the construction parameters of the growable
// containers and allocates the initial capacity.
func newArray[T any](limit, capacity int, growth float64) (array.Array[T], error) {
	var a array.Array[T]

	if err := checkWidth[T](); err != nil {
		return a, err
	}

	if limit <= 0 || limit > LimitMax {
		return a, errLimit(limit)
	}

	if capacity < 0 || capacity > limit {
		return a, errors.Wrapf(ErrInvalidArgument, "capacity %d out of range [0:%d]", capacity, limit)
	}

	// also rejects NaN
	if !(growth >= DefaultGrowth) {
		return a, errors.Wrapf(ErrInvalidArgument, "growth %v less than %v", growth, DefaultGrowth)
	}

	a.Limit = limit
	a.Growth = growth

	if !a.SetCap(capacity) {
		return a, errAlloc(capacity)
	}

	return a, nil
}

// reserve grows the capacity of a to cover target items.
func reserve[T any](a *array.Array[T], target int) error {
	if target < 0 || target > a.Limit {
		return errors.Wrapf(ErrInvalidArgument, "reserve %d out of range [0:%d]", target, a.Limit)
	}

	if !a.Reserve(target) {
		return errAlloc(array.NextCapacity(a.Cap(), target, a.Limit, a.Growth))
	}

	return nil
}

// trim shrinks the capacity of a to its size.
func trim[T any](a *array.Array[T]) error {
	if !a.Trim() {
		return errAlloc(a.Len())
	}
	return nil
}

// cloneArray duplicates all items of src into a new array with the
// same limit, capacity and growth, in the same or in reverse order.
// On error all duplicates made so far are released.
func cloneArray[T any](src *array.Array[T], o value.Owner[T], reverse bool) (array.Array[T], error) {
	dst, err := newArray[T](src.Limit, src.Cap(), src.Growth)
	if err != nil {
		return dst, err
	}

	n := src.Len()
	for i := range n {
		j := i
		if reverse {
			j = n - 1 - i
		}

		val, err := dup(o, src.Items[j])
		if err != nil {
			o.ReleaseAll(dst.Items)
			return array.Array[T]{}, err
		}

		dst.Push(val)
	}

	return dst, nil
}

// search returns the index of the first item, in ascending order,
// comparing equal to key, or -1.
func search[T any](items []T, key T, cmp CompareFunc[T]) int {
	for i, item := range items {
		if cmp(item, key) == 0 {
			return i
		}
	}
	return -1
}
