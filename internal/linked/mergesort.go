// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package linked

// MergeSort sorts the nodes starting at front by cmp and returns the
// new front. The sort is stable, nodes with equal values keep their
// relative order, also with reverse set.
//
// Top-down: split in halves, sort both halves recursively
// and merge them, the recursion depth is log(n).
// Next and Prev pointers are relinked, no values are moved.
func MergeSort[T any](front *Node[T], reverse bool, cmp func(a, b T) int) *Node[T] {
	if front == nil || front.Next == nil {
		return front
	}

	second := Split(front)

	front = MergeSort(front, reverse, cmp)
	second = MergeSort(second, reverse, cmp)

	return Merge(front, second, reverse, cmp)
}

// Split cuts the chain starting at front in two halves and returns
// the front of the second half, classic slow and fast pointers.
// The first half keeps the middle node for odd lengths.
func Split[T any](front *Node[T]) *Node[T] {
	slow, fast := front, front

	for fast.Next != nil && fast.Next.Next != nil {
		fast = fast.Next.Next
		slow = slow.Next
	}

	second := slow.Next
	slow.Next = nil
	if second != nil {
		second.Prev = nil
	}

	return second
}

// Merge merges the sorted chains first and second and returns the front.
//
// The node of second is taken only if it is strictly less than the node
// of first (strictly greater with reverse), ties keep first ahead.
// Prev pointers are rebuilt on the way.
func Merge[T any](first, second *Node[T], reverse bool, cmp func(a, b T) int) *Node[T] {
	var front, tail *Node[T]

	link := func(n *Node[T]) {
		if tail == nil {
			front = n
			n.Prev = nil
		} else {
			tail.Next = n
			n.Prev = tail
		}
		tail = n
	}

	for first != nil && second != nil {
		if after(first.Value, second.Value, reverse, cmp) {
			n := second
			second = second.Next
			link(n)
			continue
		}

		n := first
		first = first.Next
		link(n)
	}

	// append the rest, already linked
	if first != nil {
		link(first)
	} else if second != nil {
		link(second)
	}

	return front
}

// after reports whether a must be placed strictly after b,
// the sign of cmp is negated with reverse.
func after[T any](a, b T, reverse bool, cmp func(a, b T) int) bool {
	c := cmp(a, b)
	if reverse {
		return c < 0
	}
	return c > 0
}
