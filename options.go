// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/gaissmai/collections/internal/value"
)

// Cloner is an interface that enables deep cloning of values of type T.
// If a value implements Cloner[T] and no copy function is configured
// with [WithCopy], all containers use its Clone method to duplicate
// values going in and coming out.
type Cloner[T any] interface {
	Clone() T
}

// CompareFunc returns a negative number if a < b, zero if a == b
// and a positive number if a > b.
//
// For searching, a is the stored value and b the key.
type CompareFunc[T any] func(a, b T) int

// Option configures the value ownership of a container.
type Option[T any] func(*config[T])

type config[T any] struct {
	copyFn value.CopyFunc[T]
	freeFn value.FreeFunc[T]
}

// WithCopy sets the function used to duplicate values.
//
// Every value stored in the container is a duplicate of the value
// passed in, and every value handed out is a duplicate of the stored
// value. Without a copy function, values are duplicated by Clone
// for [Cloner] types or by plain assignment.
//
// A copy function returning an error aborts the operation,
// the container is unchanged.
func WithCopy[T any](fn func(src T) (T, error)) Option[T] {
	return func(c *config[T]) {
		c.copyFn = fn
	}
}

// WithFree sets the function called for every value the container drops,
// e.g. on Remove, Pop, Set, Clear or Free.
func WithFree[T any](fn func(v T)) Option[T] {
	return func(c *config[T]) {
		c.freeFn = fn
	}
}

func newOwner[T any](opts []Option[T]) value.Owner[T] {
	var cfg config[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return value.NewOwner(cfg.copyFn, cfg.freeFn)
}

// dup returns an owned duplicate of val.
func dup[T any](o value.Owner[T], val T) (T, error) {
	out, err := o.Dup(val)
	if err != nil {
		var zero T
		return zero, errCopy(err)
	}
	return out, nil
}

// checkWidth rejects zero-sized types.
func checkWidth[T any]() error {
	if value.IsZST[T]() {
		return errZeroWidth
	}
	return nil
}

// reverseCmp negates the sign of cmp if reverse is set.
func reverseCmp[T any](cmp CompareFunc[T], reverse bool) func(a, b T) int {
	if !reverse {
		return cmp
	}
	return func(a, b T) int {
		switch c := cmp(a, b); {
		case c < 0:
			return 1
		case c > 0:
			return -1
		}
		return 0
	}
}
