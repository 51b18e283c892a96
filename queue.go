// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"iter"

	"github.com/gaissmai/collections/internal/linked"
	"github.com/gaissmai/collections/internal/value"
)

// Queue is a singly linked FIFO queue of values of type T
// with an element limit. Values are enqueued at the tail and
// dequeued at the head, both in O(1).
//
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	head  *linked.Node[T]
	tail  *linked.Node[T]
	size  int
	limit int
	pool  *linked.Pool[T]
	owner value.Owner[T]
}

// NewQueue returns an empty queue for at most limit values,
// limit must be positive and T must not be zero-sized.
func NewQueue[T any](limit int, opts ...Option[T]) (*Queue[T], error) {
	if err := checkLinked[T](limit); err != nil {
		return nil, err
	}

	return &Queue[T]{
		limit: limit,
		pool:  linked.NewPool[T](),
		owner: newOwner(opts),
	}, nil
}

// Copy returns a new queue with the same configuration and
// duplicates of all values in the same order.
func (q *Queue[T]) Copy() (*Queue[T], error) {
	if q == nil {
		return nil, errNilContainer
	}

	c := &Queue[T]{limit: q.limit, pool: linked.NewPool[T](), owner: q.owner}

	for n := q.head; n != nil; n = n.Next {
		item, err := dup(q.owner, n.Value)
		if err != nil {
			c.Free()
			return nil, err
		}
		c.link(item)
	}

	return c, nil
}

// Reverse returns a new queue with the same configuration, the head
// of the new queue is a duplicate of the tail of q.
func (q *Queue[T]) Reverse() (*Queue[T], error) {
	if q == nil {
		return nil, errNilContainer
	}

	c := &Queue[T]{limit: q.limit, pool: linked.NewPool[T](), owner: q.owner}

	for n := q.head; n != nil; n = n.Next {
		item, err := dup(q.owner, n.Value)
		if err != nil {
			c.Free()
			return nil, err
		}

		// push at the head
		node := c.pool.Get(item)
		node.Next = c.head
		c.head = node
		if c.tail == nil {
			c.tail = node
		}
		c.size++
	}

	return c, nil
}

// Free releases all values and nodes.
func (q *Queue[T]) Free() {
	if q == nil {
		return
	}

	for n := q.head; n != nil; {
		next := n.Next
		q.owner.Release(n.Value)
		q.pool.Put(n)
		n = next
	}

	q.head, q.tail, q.size = nil, nil, 0
}

// Clear releases all values and nodes, the queue stays usable.
func (q *Queue[T]) Clear() error {
	if q == nil {
		return errNilContainer
	}

	q.Free()

	return nil
}

// Enqueue appends a duplicate of val at the tail.
func (q *Queue[T]) Enqueue(val T) error {
	if q == nil {
		return errNilContainer
	}

	if q.size >= q.limit {
		return errFull(q.limit)
	}

	item, err := dup(q.owner, val)
	if err != nil {
		return err
	}

	q.link(item)

	return nil
}

// link appends a node holding the owned item at the tail.
func (q *Queue[T]) link(item T) {
	n := q.pool.Get(item)

	if q.tail == nil {
		q.head = n
	} else {
		q.tail.Next = n
	}
	q.tail = n
	q.size++
}

// Dequeue removes the head value and returns a duplicate of it.
func (q *Queue[T]) Dequeue() (T, error) {
	out, err := q.Peek()
	if err != nil {
		return out, err
	}

	n := q.head
	q.head = n.Next
	if q.head == nil {
		q.tail = nil
	}
	q.size--

	q.owner.Release(n.Value)
	q.pool.Put(n)

	return out, nil
}

// Peek returns a duplicate of the head value.
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if q == nil {
		return zero, errNilContainer
	}

	if q.head == nil {
		return zero, errEmpty
	}

	return dup(q.owner, q.head.Value)
}

// Contains reports whether a value compares equal to key.
func (q *Queue[T]) Contains(key T, cmp CompareFunc[T]) (bool, error) {
	if q == nil {
		return false, errNilContainer
	}
	if cmp == nil {
		return false, errNilCompare
	}

	for n := q.head; n != nil; n = n.Next {
		if cmp(n.Value, key) == 0 {
			return true, nil
		}
	}

	return false, nil
}

// All returns an iterator over the borrowed values, head to tail.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q == nil {
			return
		}
		for n := q.head; n != nil; n = n.Next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Size returns the number of values.
func (q *Queue[T]) Size() int {
	if q == nil {
		return 0
	}
	return q.size
}

// Width returns the byte size of one value.
func (q *Queue[T]) Width() int {
	if q == nil {
		return 0
	}
	return value.Width[T]()
}

// Limit returns the maximum number of values.
func (q *Queue[T]) Limit() int {
	if q == nil {
		return 0
	}
	return q.limit
}

// Empty reports whether the queue holds no values.
func (q *Queue[T]) Empty() bool {
	if q == nil {
		return false
	}
	return q.size == 0
}

// Full reports whether the queue holds limit values.
func (q *Queue[T]) Full() bool {
	if q == nil {
		return false
	}
	return q.size >= q.limit
}
