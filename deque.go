// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"iter"

	"github.com/gaissmai/collections/internal/linked"
	"github.com/gaissmai/collections/internal/value"
)

// Deque is a doubly linked double ended queue of values of type T
// with an element limit, all end operations are O(1).
//
// Push, Pop and Back work on the back, Unshift, Shift and Front
// on the front. Push with Shift is a FIFO queue, Push with Pop
// is a LIFO stack.
//
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	chain linked.Chain[T]
	limit int
	owner value.Owner[T]
}

// NewDeque returns an empty deque for at most limit values,
// limit must be positive and T must not be zero-sized.
func NewDeque[T any](limit int, opts ...Option[T]) (*Deque[T], error) {
	if err := checkLinked[T](limit); err != nil {
		return nil, err
	}

	return &Deque[T]{
		chain: linked.Chain[T]{Pool: linked.NewPool[T]()},
		limit: limit,
		owner: newOwner(opts),
	}, nil
}

// Copy returns a new deque with the same configuration and
// duplicates of all values in the same order.
func (d *Deque[T]) Copy() (*Deque[T], error) {
	return d.clone(false)
}

// Reverse returns a new deque with the same configuration and
// duplicates of all values in reverse order.
func (d *Deque[T]) Reverse() (*Deque[T], error) {
	return d.clone(true)
}

func (d *Deque[T]) clone(reverse bool) (*Deque[T], error) {
	if d == nil {
		return nil, errNilContainer
	}

	chain, err := cloneChain(&d.chain, d.owner, reverse)
	if err != nil {
		return nil, err
	}

	return &Deque[T]{chain: chain, limit: d.limit, owner: d.owner}, nil
}

// Free releases all values and nodes.
func (d *Deque[T]) Free() {
	if d == nil {
		return
	}
	d.chain.Reset(d.owner.Release)
}

// Clear releases all values and nodes, the deque stays usable.
func (d *Deque[T]) Clear() error {
	if d == nil {
		return errNilContainer
	}

	d.chain.Reset(d.owner.Release)

	return nil
}

// Push appends a duplicate of val at the back.
func (d *Deque[T]) Push(val T) error {
	item, err := d.prepare(val)
	if err != nil {
		return err
	}

	d.chain.PushBack(item)

	return nil
}

// Unshift prepends a duplicate of val at the front.
func (d *Deque[T]) Unshift(val T) error {
	item, err := d.prepare(val)
	if err != nil {
		return err
	}

	d.chain.PushFront(item)

	return nil
}

// prepare checks the limit and duplicates val.
func (d *Deque[T]) prepare(val T) (T, error) {
	var zero T
	if d == nil {
		return zero, errNilContainer
	}

	if d.chain.Len >= d.limit {
		return zero, errFull(d.limit)
	}

	return dup(d.owner, val)
}

// Pop removes the back value and returns a duplicate of it.
func (d *Deque[T]) Pop() (T, error) {
	out, err := d.Back()
	if err != nil {
		return out, err
	}

	d.owner.Release(d.chain.Unlink(d.chain.Back))

	return out, nil
}

// Shift removes the front value and returns a duplicate of it.
func (d *Deque[T]) Shift() (T, error) {
	out, err := d.Front()
	if err != nil {
		return out, err
	}

	d.owner.Release(d.chain.Unlink(d.chain.Front))

	return out, nil
}

// Back returns a duplicate of the back value.
func (d *Deque[T]) Back() (T, error) {
	var zero T
	if d == nil {
		return zero, errNilContainer
	}

	if d.chain.Back == nil {
		return zero, errEmpty
	}

	return dup(d.owner, d.chain.Back.Value)
}

// Front returns a duplicate of the front value.
func (d *Deque[T]) Front() (T, error) {
	var zero T
	if d == nil {
		return zero, errNilContainer
	}

	if d.chain.Front == nil {
		return zero, errEmpty
	}

	return dup(d.owner, d.chain.Front.Value)
}

// Contains reports whether a value compares equal to key.
func (d *Deque[T]) Contains(key T, cmp CompareFunc[T]) (bool, error) {
	if d == nil {
		return false, errNilContainer
	}
	if cmp == nil {
		return false, errNilCompare
	}

	return searchChain(&d.chain, key, cmp) >= 0, nil
}

// All returns an iterator over the borrowed values, front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	if d == nil {
		return func(func(T) bool) {}
	}
	return d.chain.Values()
}

// Size returns the number of values.
func (d *Deque[T]) Size() int {
	if d == nil {
		return 0
	}
	return d.chain.Len
}

// Width returns the byte size of one value.
func (d *Deque[T]) Width() int {
	if d == nil {
		return 0
	}
	return value.Width[T]()
}

// Limit returns the maximum number of values.
func (d *Deque[T]) Limit() int {
	if d == nil {
		return 0
	}
	return d.limit
}

// Empty reports whether the deque holds no values.
func (d *Deque[T]) Empty() bool {
	if d == nil {
		return false
	}
	return d.chain.Len == 0
}

// Full reports whether the deque holds limit values.
func (d *Deque[T]) Full() bool {
	if d == nil {
		return false
	}
	return d.chain.Len >= d.limit
}
