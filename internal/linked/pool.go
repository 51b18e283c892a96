// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package linked

import (
	"sync"
	"sync/atomic"
)

// Pool is a type-safe wrapper around sync.Pool,
// specialized for managing *Node[T] instances.
//
// It reuses node memory and tracks statistics
// on allocations and active use for debugging and invariant checks.
type Pool[T any] struct {
	sync.Pool // embedded Sync Pool for *Node[T]

	totalAllocated atomic.Int64 // total number of *Node[T] ever allocated
	currentLive    atomic.Int64 // number of nodes currently in use (not returned to pool)
}

// NewPool creates and returns a new pool for *Node[T] instances.
func NewPool[T any]() *Pool[T] {
	p := &Pool[T]{}
	p.New = func() any {
		p.totalAllocated.Add(1)

		return new(Node[T])
	}
	return p
}

// Get retrieves a *Node[T] holding val from the pool,
// or creates a new one if needed.
//
// If the pool is nil, a new node is returned without tracking.
func (p *Pool[T]) Get(val T) *Node[T] {
	if p == nil {
		return &Node[T]{Value: val}
	}
	p.currentLive.Add(1)

	n := p.Pool.Get().(*Node[T])
	n.Value = val

	return n
}

// Put returns a *Node[T] back to the pool for potential reuse.
//
// The node is reset before storage, the pool must not keep
// a reference to a released value.
// If the pool is nil, the node is discarded and not reused.
func (p *Pool[T]) Put(n *Node[T]) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)

	n.reset()
	p.Pool.Put(n)
}

// Stats returns the number of currently live (checked-out) nodes
// and the total number of *Node[T] objects ever allocated by this pool.
func (p *Pool[T]) Stats() (live int64, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
