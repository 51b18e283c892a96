/*
Copyright 2014 Will Fitzgerald. All rights reserved.
Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file.
*/

// Package bitset implements fixed size bitsets packed into byte buckets,
// a mapping between the integers [0..size) and boolean values.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote the needed parts with byte buckets for this project.
//
// The bits beyond size in the last bucket are always zero,
// all methods keep the buckets sanitized.
package bitset

import (
	"runtime"
	"strings"
)

// bucketSize is the number of bits in a bucket.
const bucketSize = 8

// nibbles is the popcount lookup table for 4-bit values.
var nibbles = [16]uint8{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}

// A BitSet is a fixed size set of bits.
type BitSet struct {
	size uint
	set  []byte
}

// BucketsNeeded calculates the number of buckets needed for size bits.
func BucketsNeeded(size uint) int {
	n := size / bucketSize
	if size%bucketSize != 0 {
		n++
	}
	return int(n)
}

// New creates a new BitSet with size bits, all cleared.
// Sizes the runtime refuses to allocate are reported as !ok.
func New(size uint) (BitSet, bool) {
	set, ok := alloc(BucketsNeeded(size))
	if !ok {
		return BitSet{}, false
	}
	return BitSet{size: size, set: set}, true
}

// alloc allocates n zeroed buckets, recovering the runtime error
// of an impossible allocation.
func alloc(n int) (set []byte, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isRuntime := r.(runtime.Error); !isRuntime {
				panic(r)
			}
			set, ok = nil, false
		}
	}()

	return make([]byte, n), true
}

// Size returns the number of bits.
func (b BitSet) Size() uint {
	return b.size
}

// Buckets returns the number of byte buckets.
func (b BitSet) Buckets() int {
	return len(b.set)
}

// Bytes returns the buckets, giving direct access to the internal representation.
// It is not a copy, so changes to the returned slice will affect the bitset.
func (b BitSet) Bytes() []byte {
	return b.set
}

// lastMask returns the sanitized all-ones pattern of the last bucket.
func (b BitSet) lastMask() byte {
	if rest := b.size % bucketSize; rest != 0 {
		return 0xFF >> (bucketSize - rest)
	}
	return 0xFF
}

// sanitize clears the unused high bits of the last bucket.
func (b *BitSet) sanitize() {
	if len(b.set) == 0 {
		return
	}
	b.set[len(b.set)-1] &= b.lastMask()
}

// Test whether bit i is set.
// The caller must check i < size, like all bit indexed methods.
func (b BitSet) Test(i uint) bool {
	return b.set[i/bucketSize]>>(i%bucketSize)&1 != 0
}

// Set bit i to 1.
func (b *BitSet) Set(i uint) {
	b.set[i/bucketSize] |= 1 << (i % bucketSize)
}

// Clear bit i to 0.
func (b *BitSet) Clear(i uint) {
	b.set[i/bucketSize] &^= 1 << (i % bucketSize)
}

// Flip bit i.
func (b *BitSet) Flip(i uint) {
	b.set[i/bucketSize] ^= 1 << (i % bucketSize)
}

// Any reports whether at least one bit is set.
func (b BitSet) Any() bool {
	for _, x := range b.set {
		if x != 0 {
			return true
		}
	}
	return false
}

// All reports whether all size bits are set.
// The last bucket is compared against the sanitized pattern.
func (b BitSet) All() bool {
	if len(b.set) == 0 {
		return false
	}

	last := len(b.set) - 1
	for _, x := range b.set[:last] {
		if x != 0xFF {
			return false
		}
	}

	return b.set[last] == b.lastMask()
}

// None reports whether no bit is set.
func (b BitSet) None() bool {
	return !b.Any()
}

// Fill sets all size bits.
func (b *BitSet) Fill() {
	for i := range b.set {
		b.set[i] = 0xFF
	}
	b.sanitize()
}

// ClearAll clears all bits.
func (b *BitSet) ClearAll() {
	clear(b.set)
}

// Count (number of set bits).
// Also known as "popcount" or "population count".
//
// Every bucket is counted in two nibble steps with a lookup table.
func (b BitSet) Count() int {
	var cnt int
	for _, x := range b.set {
		cnt += int(nibbles[x&0x0F] + nibbles[x>>4])
	}
	return cnt
}

// Clone this BitSet, returning a new BitSet with the same size and bits.
// A failing allocation is reported as !ok.
func (b BitSet) Clone() (BitSet, bool) {
	c := BitSet{size: b.size}
	if b.set != nil {
		var ok bool
		if c.set, ok = alloc(len(b.set)); !ok {
			return BitSet{}, false
		}
		copy(c.set, b.set)
	}
	return c, true
}

// InPlaceIntersection computes b &= c over the common buckets.
// This is the BitSet equivalent of & (and).
func (b *BitSet) InPlaceIntersection(c BitSet) {
	n := min(len(b.set), len(c.set))
	for i := range n {
		b.set[i] &= c.set[i]
	}
	b.sanitize()
}

// InPlaceUnion computes b |= c over the common buckets.
// This is the BitSet equivalent of | (or).
func (b *BitSet) InPlaceUnion(c BitSet) {
	n := min(len(b.set), len(c.set))
	for i := range n {
		b.set[i] |= c.set[i]
	}
	b.sanitize()
}

// InPlaceSymmetricDifference computes b ^= c over the common buckets.
// This is the BitSet equivalent of ^ (xor).
func (b *BitSet) InPlaceSymmetricDifference(c BitSet) {
	n := min(len(b.set), len(c.set))
	for i := range n {
		b.set[i] ^= c.set[i]
	}
	b.sanitize()
}

// InPlaceComplement flips all size bits.
// This is the BitSet equivalent of ^ (not).
func (b *BitSet) InPlaceComplement() {
	for i := range b.set {
		b.set[i] = ^b.set[i]
	}
	b.sanitize()
}

// String returns the bits as '0' and '1' runes, bit 0 first.
func (b BitSet) String() string {
	var sb strings.Builder
	sb.Grow(int(b.size))
	for i := range b.size {
		if b.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
