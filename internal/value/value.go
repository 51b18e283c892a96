// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value implements the ownership protocol for the payload
// stored in the containers.
//
// A container never shares a stored value with its caller or with
// another container. Every value that goes in or comes out is
// duplicated, either by a user supplied copy function, by the Clone
// method of a type implementing [Cloner], or by plain assignment,
// which is a raw copy of the width bytes of the type.
//
// Values that leave the container for good are handed to an optional
// free function, giving the user the chance to release resources
// referenced by the value.
//
// This is an internal package used by the collections implementation.
package value

import (
	"unsafe"
)

// Width returns the fixed byte size of one value of type V.
//
// Zero-sized types such as struct{} or [0]byte have width 0 and
// are rejected by all container constructors.
func Width[V any]() int {
	var zero V
	return int(unsafe.Sizeof(zero))
}

// IsZST reports whether type V is a zero-sized type (ZST).
func IsZST[V any]() bool {
	return Width[V]() == 0
}

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V] and no explicit copy function is
// configured, the containers use its Clone method to duplicate values.
type Cloner[V any] interface {
	Clone() V
}

// CopyFunc duplicates src. A non-nil error aborts the operation
// that needed the duplicate, nothing is stored.
type CopyFunc[V any] func(src V) (V, error)

// FreeFunc releases the resources referenced by v.
type FreeFunc[V any] func(v V)

// CopyFnFactory returns a CopyFunc.
// If V implements Cloner[V], the returned function performs
// a deep copy using Clone(), otherwise it returns nil.
func CopyFnFactory[V any]() CopyFunc[V] {
	var zero V
	// you can't assert directly on a type parameter
	if _, ok := any(zero).(Cloner[V]); ok {
		return cloneVal[V]
	}
	return nil
}

// cloneVal returns a deep clone of val by calling Clone when
// val implements Cloner[V]. If the Cloner receiver is nil
// (val is a nil pointer), cloneVal returns val unchanged.
func cloneVal[V any](val V) (V, error) {
	// you can't assert directly on a type parameter
	c, ok := any(val).(Cloner[V])
	if !ok || c == nil {
		return val, nil
	}
	return c.Clone(), nil
}

// Owner applies the ownership protocol for one container.
// The zero value duplicates by assignment and frees nothing.
type Owner[V any] struct {
	copy CopyFunc[V]
	free FreeFunc[V]
}

// NewOwner returns an Owner with the given callbacks, both may be nil.
// A nil copy function falls back to Clone if V implements Cloner[V].
func NewOwner[V any](copyFn CopyFunc[V], freeFn FreeFunc[V]) Owner[V] {
	if copyFn == nil {
		copyFn = CopyFnFactory[V]()
	}
	return Owner[V]{copy: copyFn, free: freeFn}
}

// Dup returns an owned duplicate of src.
func (o Owner[V]) Dup(src V) (V, error) {
	if o.copy == nil {
		return src, nil
	}
	return o.copy(src)
}

// Release hands v to the free function, if any.
func (o Owner[V]) Release(v V) {
	if o.free != nil {
		o.free(v)
	}
}

// ReleaseAll releases all values in vals in ascending order.
func (o Owner[V]) ReleaseAll(vals []V) {
	if o.free == nil {
		return
	}
	for _, v := range vals {
		o.free(v)
	}
}

// HasCopy reports whether values are duplicated by a function
// rather than by plain assignment.
func (o Owner[V]) HasCopy() bool {
	return o.copy != nil
}

// HasFree reports whether a free function is configured.
func (o Owner[V]) HasFree() bool {
	return o.free != nil
}
