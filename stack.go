// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"iter"

	"github.com/gaissmai/collections/internal/array"
	"github.com/gaissmai/collections/internal/value"
)

// Stack is a LIFO stack of values of type T on the same growable
// array engine as [Vector], the top is the last slot.
//
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	arr   array.Array[T]
	owner value.Owner[T]
}

// NewStack returns an empty stack, the parameters are validated
// as for [NewVector].
func NewStack[T any](limit, capacity int, growth float64, opts ...Option[T]) (*Stack[T], error) {
	arr, err := newArray[T](limit, capacity, growth)
	if err != nil {
		return nil, err
	}

	return &Stack[T]{arr: arr, owner: newOwner(opts)}, nil
}

// Copy returns a new stack with the same configuration and
// duplicates of all values in the same order.
func (s *Stack[T]) Copy() (*Stack[T], error) {
	if s == nil {
		return nil, errNilContainer
	}

	arr, err := cloneArray(&s.arr, s.owner, false)
	if err != nil {
		return nil, err
	}

	return &Stack[T]{arr: arr, owner: s.owner}, nil
}

// Reverse returns a new stack with the same configuration, the top
// of the new stack is a duplicate of the bottom of s.
func (s *Stack[T]) Reverse() (*Stack[T], error) {
	if s == nil {
		return nil, errNilContainer
	}

	arr, err := cloneArray(&s.arr, s.owner, true)
	if err != nil {
		return nil, err
	}

	return &Stack[T]{arr: arr, owner: s.owner}, nil
}

// Free releases all values and the backing storage.
func (s *Stack[T]) Free() {
	if s == nil {
		return
	}

	s.owner.ReleaseAll(s.arr.Items)
	s.arr.Items = nil
}

// Clear releases all values, the capacity is not changed.
func (s *Stack[T]) Clear() error {
	if s == nil {
		return errNilContainer
	}

	s.owner.ReleaseAll(s.arr.Items)
	s.arr.Reset()

	return nil
}

// Reserve grows the capacity to hold at least n values.
func (s *Stack[T]) Reserve(n int) error {
	if s == nil {
		return errNilContainer
	}
	return reserve(&s.arr, n)
}

// Trim shrinks the capacity to the size.
func (s *Stack[T]) Trim() error {
	if s == nil {
		return errNilContainer
	}
	return trim(&s.arr)
}

// Push puts a duplicate of val on top.
func (s *Stack[T]) Push(val T) error {
	if s == nil {
		return errNilContainer
	}

	if s.arr.Full() {
		return errFull(s.arr.Limit)
	}

	item, err := dup(s.owner, val)
	if err != nil {
		return err
	}

	if err := reserve(&s.arr, s.arr.Len()+1); err != nil {
		s.owner.Release(item)
		return err
	}

	s.arr.Push(item)

	return nil
}

// Pop removes the top value and returns a duplicate of it.
func (s *Stack[T]) Pop() (T, error) {
	out, err := s.Peek()
	if err != nil {
		return out, err
	}

	s.owner.Release(s.arr.Pop())

	return out, nil
}

// Peek returns a duplicate of the top value.
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s == nil {
		return zero, errNilContainer
	}

	if s.arr.Len() == 0 {
		return zero, errEmpty
	}

	return dup(s.owner, s.arr.Items[s.arr.Len()-1])
}

// Search returns the smallest index, counted from the bottom,
// of a value comparing equal to key, or -1.
func (s *Stack[T]) Search(key T, cmp CompareFunc[T]) (int, error) {
	if s == nil {
		return -1, errNilContainer
	}
	if cmp == nil {
		return -1, errNilCompare
	}

	return search(s.arr.Items, key, cmp), nil
}

// Contains reports whether a value compares equal to key.
func (s *Stack[T]) Contains(key T, cmp CompareFunc[T]) (bool, error) {
	i, err := s.Search(key, cmp)
	return i >= 0, err
}

// All returns an iterator over the borrowed values, bottom to top.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, item := range s.arr.Items {
			if !yield(item) {
				return
			}
		}
	}
}

// Size returns the number of values.
func (s *Stack[T]) Size() int {
	if s == nil {
		return 0
	}
	return s.arr.Len()
}

// Width returns the byte size of one value.
func (s *Stack[T]) Width() int {
	if s == nil {
		return 0
	}
	return value.Width[T]()
}

// Limit returns the maximum number of values.
func (s *Stack[T]) Limit() int {
	if s == nil {
		return 0
	}
	return s.arr.Limit
}

// Capacity returns the number of allocated slots.
func (s *Stack[T]) Capacity() int {
	if s == nil {
		return 0
	}
	return s.arr.Cap()
}

// Growth returns the growth factor of the capacity.
func (s *Stack[T]) Growth() float64 {
	if s == nil {
		return 0
	}
	return s.arr.Growth
}

// Empty reports whether the stack holds no values.
func (s *Stack[T]) Empty() bool {
	if s == nil {
		return false
	}
	return s.arr.Len() == 0
}

// Full reports whether the stack holds limit values.
func (s *Stack[T]) Full() bool {
	if s == nil {
		return false
	}
	return s.arr.Full()
}
