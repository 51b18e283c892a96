// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package linked implements the linked node store shared by the
// list, queue and deque containers, together with a stable merge sort
// that relinks the nodes in place without any auxiliary array.
//
// This is an internal package used by the collections implementation.
package linked

// Node is a linked node holding one owned value.
//
// Prev is not maintained by singly linked users, e.g. a queue.
type Node[T any] struct {
	Value T
	Next  *Node[T]
	Prev  *Node[T]
}

// reset clears the node, dropping the references to value and neighbors.
func (n *Node[T]) reset() {
	*n = Node[T]{}
}
