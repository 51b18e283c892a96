// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package collections provides generic containers with explicit
// value ownership and explicit capacity control.
//
// The containers are:
//
//   - Vector: growable array, indexed insert and remove, non-stable sort
//   - Stack:  LIFO on the same growable array engine
//   - List:   doubly linked list, indexed access and stable merge sort
//   - Queue:  singly linked FIFO
//   - Deque:  doubly linked double ended queue
//   - BitVector: fixed size bits in byte buckets with set algebra
//
// Every container owns its values. A value going in is duplicated and
// every value handed out is a duplicate of the stored one. Duplicates
// are made by the copy function configured with [WithCopy], by the Clone
// method of types implementing [Cloner], or by plain assignment.
// The free function configured with [WithFree] is called for every
// value the container drops.
//
// Every container has an element limit fixed at construction.
// The growable array containers additionally grow their capacity
// geometrically by a growth factor, clamped to the limit, and shrink
// it only on [Vector.Trim] or [Stack.Trim].
//
// Failing operations return errors testable with errors.Is against
// [ErrInvalidArgument], [ErrCapacityExceeded] and [ErrOutOfMemory],
// the container is unchanged then.
//
// No container is safe for concurrent use.
package collections
