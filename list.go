// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"iter"

	"github.com/gaissmai/collections/internal/linked"
	"github.com/gaissmai/collections/internal/value"
)

// List is a doubly linked list of values of type T with an element limit.
//
// Indexed access walks from the closer end, Sort is a stable merge sort
// relinking the nodes in place.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	chain linked.Chain[T]
	limit int
	owner value.Owner[T]
}

// NewList returns an empty list for at most limit values,
// limit must be positive and T must not be zero-sized.
func NewList[T any](limit int, opts ...Option[T]) (*List[T], error) {
	if err := checkLinked[T](limit); err != nil {
		return nil, err
	}

	return &List[T]{
		chain: linked.Chain[T]{Pool: linked.NewPool[T]()},
		limit: limit,
		owner: newOwner(opts),
	}, nil
}

// Copy returns a new list with the same configuration and
// duplicates of all values in the same order.
func (l *List[T]) Copy() (*List[T], error) {
	return l.clone(false)
}

// Reverse returns a new list with the same configuration and
// duplicates of all values in reverse order.
func (l *List[T]) Reverse() (*List[T], error) {
	return l.clone(true)
}

func (l *List[T]) clone(reverse bool) (*List[T], error) {
	if l == nil {
		return nil, errNilContainer
	}

	chain, err := cloneChain(&l.chain, l.owner, reverse)
	if err != nil {
		return nil, err
	}

	return &List[T]{chain: chain, limit: l.limit, owner: l.owner}, nil
}

// Free releases all values and nodes.
func (l *List[T]) Free() {
	if l == nil {
		return
	}
	l.chain.Reset(l.owner.Release)
}

// Clear releases all values and nodes, the list stays usable.
func (l *List[T]) Clear() error {
	if l == nil {
		return errNilContainer
	}

	l.chain.Reset(l.owner.Release)

	return nil
}

// Insert links a duplicate of val at index i, 0 <= i <= size.
func (l *List[T]) Insert(i int, val T) error {
	if l == nil {
		return errNilContainer
	}

	if i < 0 || i > l.chain.Len {
		return errIndex(i, l.chain.Len)
	}

	if l.chain.Len >= l.limit {
		return errFull(l.limit)
	}

	item, err := dup(l.owner, val)
	if err != nil {
		return err
	}

	l.chain.InsertAt(i, item)

	return nil
}

// Remove unlinks the value at index i and returns a duplicate of it.
func (l *List[T]) Remove(i int) (T, error) {
	var zero T
	if l == nil {
		return zero, errNilContainer
	}

	if i < 0 || i >= l.chain.Len {
		return zero, errIndex(i, l.chain.Len)
	}

	n := l.chain.NodeAt(i)

	out, err := dup(l.owner, n.Value)
	if err != nil {
		return zero, err
	}

	l.owner.Release(l.chain.Unlink(n))

	return out, nil
}

// Delete unlinks the value at index i and releases it.
func (l *List[T]) Delete(i int) error {
	if l == nil {
		return errNilContainer
	}

	if i < 0 || i >= l.chain.Len {
		return errIndex(i, l.chain.Len)
	}

	l.owner.Release(l.chain.Unlink(l.chain.NodeAt(i)))

	return nil
}

// RemoveAll unlinks all values comparing equal to key,
// the order of the remaining values is not changed.
func (l *List[T]) RemoveAll(key T, cmp CompareFunc[T]) error {
	if l == nil {
		return errNilContainer
	}
	if cmp == nil {
		return errNilCompare
	}

	for n := l.chain.Front; n != nil; {
		next := n.Next
		if cmp(n.Value, key) == 0 {
			l.owner.Release(l.chain.Unlink(n))
		}
		n = next
	}

	return nil
}

// Get returns a duplicate of the value at index i.
func (l *List[T]) Get(i int) (T, error) {
	var zero T
	if l == nil {
		return zero, errNilContainer
	}

	if i < 0 || i >= l.chain.Len {
		return zero, errIndex(i, l.chain.Len)
	}

	return dup(l.owner, l.chain.NodeAt(i).Value)
}

// Set replaces the value at index i by a duplicate of val.
// The old value is released after the new one is duplicated.
func (l *List[T]) Set(i int, val T) error {
	if l == nil {
		return errNilContainer
	}

	if i < 0 || i >= l.chain.Len {
		return errIndex(i, l.chain.Len)
	}

	item, err := dup(l.owner, val)
	if err != nil {
		return err
	}

	n := l.chain.NodeAt(i)
	l.owner.Release(n.Value)
	n.Value = item

	return nil
}

// Sort sorts the values stable in ascending order by cmp,
// or in descending order with reverse set.
// Equal values keep their relative order in both directions.
func (l *List[T]) Sort(reverse bool, cmp CompareFunc[T]) error {
	if l == nil {
		return errNilContainer
	}
	if cmp == nil {
		return errNilCompare
	}

	l.chain.Sort(reverse, cmp)

	return nil
}

// Search returns the smallest index of a value comparing equal
// to key, or -1.
func (l *List[T]) Search(key T, cmp CompareFunc[T]) (int, error) {
	if l == nil {
		return -1, errNilContainer
	}
	if cmp == nil {
		return -1, errNilCompare
	}

	return searchChain(&l.chain, key, cmp), nil
}

// Contains reports whether a value compares equal to key.
func (l *List[T]) Contains(key T, cmp CompareFunc[T]) (bool, error) {
	i, err := l.Search(key, cmp)
	return i >= 0, err
}

// All returns an iterator over index and borrowed value, front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	if l == nil {
		return func(func(int, T) bool) {}
	}
	return l.chain.All()
}

// Backward returns an iterator over index and borrowed value, back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	if l == nil {
		return func(func(int, T) bool) {}
	}
	return l.chain.Backward()
}

// Size returns the number of values.
func (l *List[T]) Size() int {
	if l == nil {
		return 0
	}
	return l.chain.Len
}

// Width returns the byte size of one value.
func (l *List[T]) Width() int {
	if l == nil {
		return 0
	}
	return value.Width[T]()
}

// Limit returns the maximum number of values.
func (l *List[T]) Limit() int {
	if l == nil {
		return 0
	}
	return l.limit
}

// Empty reports whether the list holds no values.
func (l *List[T]) Empty() bool {
	if l == nil {
		return false
	}
	return l.chain.Len == 0
}

// Full reports whether the list holds limit values.
func (l *List[T]) Full() bool {
	if l == nil {
		return false
	}
	return l.chain.Len >= l.limit
}
