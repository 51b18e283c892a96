// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"iter"
	"math/bits"
)

// AllSet iterates over all the set bits in ascending order.
func (b BitSet) AllSet() iter.Seq[uint] {
	return func(yield func(u uint) bool) {
		for idx, bucket := range b.set {
			for bucket != 0 {
				u := uint(idx)*bucketSize + uint(bits.TrailingZeros8(bucket))

				if !yield(u) {
					return
				}

				// clear the rightmost set bit
				bucket &= bucket - 1
			}
		}
	}
}
