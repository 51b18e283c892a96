// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package linked

import (
	"iter"
)

// Chain is a doubly linked chain of nodes.
//
// Invariants:
//
//	Front == nil  <=>  Back == nil  <=>  Len == 0
//	walking Next from Front visits Len nodes and ends at Back
//
// Nodes are taken from and returned to Pool, a nil Pool just allocates.
type Chain[T any] struct {
	Front *Node[T]
	Back  *Node[T]
	Len   int
	Pool  *Pool[T]
}

// PushFront links a new node holding val before the front, O(1).
func (c *Chain[T]) PushFront(val T) *Node[T] {
	n := c.Pool.Get(val)

	if c.Front == nil {
		c.Front, c.Back = n, n
	} else {
		n.Next = c.Front
		c.Front.Prev = n
		c.Front = n
	}
	c.Len++

	return n
}

// PushBack links a new node holding val after the back, O(1).
func (c *Chain[T]) PushBack(val T) *Node[T] {
	n := c.Pool.Get(val)

	if c.Back == nil {
		c.Front, c.Back = n, n
	} else {
		n.Prev = c.Back
		c.Back.Next = n
		c.Back = n
	}
	c.Len++

	return n
}

// InsertAt links a new node holding val at index i, the node
// formerly at i follows the new one.
//
// InsertAt panics if i is not in [0, Len].
func (c *Chain[T]) InsertAt(i int, val T) *Node[T] {
	switch {
	case i == 0:
		return c.PushFront(val)
	case i == c.Len:
		return c.PushBack(val)
	}

	at := c.NodeAt(i)
	n := c.Pool.Get(val)

	n.Prev = at.Prev
	n.Next = at
	at.Prev.Next = n
	at.Prev = n
	c.Len++

	return n
}

// NodeAt returns the node at index i, walking from the closer end,
// O(min(i, Len-i)).
//
// NodeAt panics if i is not in [0, Len).
func (c *Chain[T]) NodeAt(i int) *Node[T] {
	if i < 0 || i >= c.Len {
		panic("linked: index out of range")
	}

	if i < c.Len/2 {
		n := c.Front
		for range i {
			n = n.Next
		}
		return n
	}

	n := c.Back
	for range c.Len - i - 1 {
		n = n.Prev
	}
	return n
}

// Unlink removes n from the chain and returns its value,
// the node goes back to the pool.
func (c *Chain[T]) Unlink(n *Node[T]) T {
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		c.Front = n.Next
	}

	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		c.Back = n.Prev
	}
	c.Len--

	val := n.Value
	c.Pool.Put(n)

	return val
}

// Reset unlinks all nodes, release is called for every value
// from front to back, it may be nil.
func (c *Chain[T]) Reset(release func(T)) {
	for n := c.Front; n != nil; {
		next := n.Next
		if release != nil {
			release(n.Value)
		}
		c.Pool.Put(n)
		n = next
	}

	c.Front, c.Back, c.Len = nil, nil, 0
}

// Sort sorts the chain stable by cmp, see [MergeSort].
// The back is recomputed by one walk after the relinking.
func (c *Chain[T]) Sort(reverse bool, cmp func(a, b T) int) {
	c.Front = MergeSort(c.Front, reverse, cmp)

	c.Back = nil
	for n := c.Front; n != nil; n = n.Next {
		c.Back = n
	}
}

// All returns an iterator over index and value, front to back.
func (c *Chain[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := c.Front; n != nil; n = n.Next {
			if !yield(i, n.Value) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over index and value, back to front.
func (c *Chain[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := c.Len - 1
		for n := c.Back; n != nil; n = n.Prev {
			if !yield(i, n.Value) {
				return
			}
			i--
		}
	}
}

// Values returns an iterator over the values, front to back.
func (c *Chain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.Front; n != nil; n = n.Next {
			if !yield(n.Value) {
				return
			}
		}
	}
}
