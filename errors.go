// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"github.com/cockroachdb/errors"
)

// The error kinds of all containers, test with errors.Is.
// The returned errors carry more details in the message.
var (
	// ErrInvalidArgument is returned for a nil container, a nil comparator,
	// an index out of range, an operation on an empty container or
	// construction parameters violating the invariants.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCapacityExceeded is returned for an insertion into a full container.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrOutOfMemory is returned if an allocation failed or a copy
	// function reported an error.
	ErrOutOfMemory = errors.New("out of memory")
)

var (
	errNilContainer = errors.Wrap(ErrInvalidArgument, "nil container")
	errNilCompare   = errors.Wrap(ErrInvalidArgument, "nil compare func")
	errEmpty        = errors.Wrap(ErrInvalidArgument, "empty container")
	errZeroWidth    = errors.Wrap(ErrInvalidArgument, "zero-sized type")
)

func errIndex(i, n int) error {
	return errors.Wrapf(ErrInvalidArgument, "index %d out of range [0:%d]", i, n)
}

func errLimit(limit int) error {
	return errors.Wrapf(ErrInvalidArgument, "limit %d out of range [1:%d]", limit, LimitMax)
}

func errFull(limit int) error {
	return errors.Wrapf(ErrCapacityExceeded, "limit %d reached", limit)
}

func errAlloc(slots int) error {
	return errors.Wrapf(ErrOutOfMemory, "allocating %d slots", slots)
}

func errAllocBits(size uint) error {
	return errors.Wrapf(ErrOutOfMemory, "allocating %d bits", size)
}

// errCopy reports a failing copy function as ErrOutOfMemory,
// unless the function already returned one of the error kinds.
func errCopy(err error) error {
	if errors.IsAny(err, ErrInvalidArgument, ErrCapacityExceeded, ErrOutOfMemory) {
		return err
	}
	return errors.Mark(errors.Wrap(err, "copy value"), ErrOutOfMemory)
}
