// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/gaissmai/collections/internal/linked"
	"github.com/gaissmai/collections/internal/value"
)

// checkLinked validates the construction parameters of the
// linked containers, limit is an element count cap.
func checkLinked[T any](limit int) error {
	if err := checkWidth[T](); err != nil {
		return err
	}

	if limit <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "limit %d out of range [1:%d]", limit, math.MaxInt)
	}

	return nil
}

// cloneChain duplicates all values of src into a new chain with its own
// node pool, in the same or in reverse order.
// On error all duplicates made so far are released.
func cloneChain[T any](src *linked.Chain[T], o value.Owner[T], reverse bool) (linked.Chain[T], error) {
	dst := linked.Chain[T]{Pool: linked.NewPool[T]()}

	for val := range src.Values() {
		item, err := dup(o, val)
		if err != nil {
			dst.Reset(o.Release)
			return linked.Chain[T]{}, err
		}

		if reverse {
			dst.PushFront(item)
		} else {
			dst.PushBack(item)
		}
	}

	return dst, nil
}

// searchChain returns the index of the first value, front to back,
// comparing equal to key, or -1.
func searchChain[T any](c *linked.Chain[T], key T, cmp CompareFunc[T]) int {
	for i, val := range c.All() {
		if cmp(val, key) == 0 {
			return i
		}
	}
	return -1
}
