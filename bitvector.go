// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/gaissmai/collections/internal/bitset"
)

// BitVector is a fixed size vector of bits packed into byte buckets,
// bit i lives in bucket i/8 at position i%8.
//
// The set algebra combines operands of different sizes over their
// common buckets, see [BitVector.And] and [BitVector.Or].
//
// A BitVector is not safe for concurrent use.
type BitVector struct {
	bs bitset.BitSet
}

// NewBitVector returns a bit vector of size bits, all cleared.
// The size must be positive.
func NewBitVector(size int) (*BitVector, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "size %d out of range [1:]", size)
	}

	bs, ok := bitset.New(uint(size))
	if !ok {
		return nil, errAllocBits(uint(size))
	}

	return &BitVector{bs: bs}, nil
}

// Copy returns a new bit vector with the same size and bits.
func (b *BitVector) Copy() (*BitVector, error) {
	if b == nil {
		return nil, errNilContainer
	}
	return b.clone()
}

// clone duplicates the buckets of b, a failing allocation
// is reported as ErrOutOfMemory.
func (b *BitVector) clone() (*BitVector, error) {
	bs, ok := b.bs.Clone()
	if !ok {
		return nil, errAllocBits(b.bs.Size())
	}
	return &BitVector{bs: bs}, nil
}

// Free releases the buckets, the size drops to zero.
func (b *BitVector) Free() {
	if b == nil {
		return
	}
	b.bs = bitset.BitSet{}
}

func (b *BitVector) check(i int) error {
	if b == nil {
		return errNilContainer
	}
	if i < 0 || uint(i) >= b.bs.Size() {
		return errIndex(i, int(b.bs.Size()))
	}
	return nil
}

// Test reports whether bit i is set.
func (b *BitVector) Test(i int) (bool, error) {
	if err := b.check(i); err != nil {
		return false, err
	}
	return b.bs.Test(uint(i)), nil
}

// Set sets bit i.
func (b *BitVector) Set(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.bs.Set(uint(i))
	return nil
}

// Reset clears bit i.
func (b *BitVector) Reset(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.bs.Clear(uint(i))
	return nil
}

// Flip toggles bit i.
func (b *BitVector) Flip(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.bs.Flip(uint(i))
	return nil
}

// Any reports whether at least one bit is set.
func (b *BitVector) Any() bool {
	if b == nil {
		return false
	}
	return b.bs.Any()
}

// All reports whether all bits are set.
func (b *BitVector) All() bool {
	if b == nil {
		return false
	}
	return b.bs.All()
}

// None reports whether no bit is set.
func (b *BitVector) None() bool {
	if b == nil {
		return false
	}
	return b.bs.None()
}

// Fill sets all bits.
func (b *BitVector) Fill() error {
	if b == nil {
		return errNilContainer
	}
	b.bs.Fill()
	return nil
}

// Clear clears all bits.
func (b *BitVector) Clear() error {
	if b == nil {
		return errNilContainer
	}
	b.bs.ClearAll()
	return nil
}

// Count returns the number of set bits.
func (b *BitVector) Count() int {
	if b == nil {
		return 0
	}
	return b.bs.Count()
}

// Size returns the number of bits.
func (b *BitVector) Size() int {
	if b == nil {
		return 0
	}
	return int(b.bs.Size())
}

// Buckets returns the number of byte buckets, ceil(size/8).
func (b *BitVector) Buckets() int {
	if b == nil {
		return 0
	}
	return b.bs.Buckets()
}

// Bytes returns a copy of the buckets, nil if the copy cannot be allocated.
func (b *BitVector) Bytes() []byte {
	if b == nil {
		return nil
	}
	c, ok := b.bs.Clone()
	if !ok {
		return nil
	}
	return c.Bytes()
}

// AllSet returns an iterator over the indices of the set bits
// in ascending order.
func (b *BitVector) AllSet() iter.Seq[int] {
	return func(yield func(int) bool) {
		if b == nil {
			return
		}
		for i := range b.bs.AllSet() {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// Not returns a new bit vector of the same size with all bits flipped.
func (b *BitVector) Not() (*BitVector, error) {
	if b == nil {
		return nil, errNilContainer
	}

	c, err := b.clone()
	if err != nil {
		return nil, err
	}
	c.bs.InPlaceComplement()

	return c, nil
}

// And returns the intersection of b and o as a new bit vector
// with the size of the narrower operand, b on equal size.
func (b *BitVector) And(o *BitVector) (*BitVector, error) {
	if b == nil || o == nil {
		return nil, errNilContainer
	}

	narrow, wide := b, o
	if o.bs.Size() < b.bs.Size() {
		narrow, wide = o, b
	}

	c, err := narrow.clone()
	if err != nil {
		return nil, err
	}
	c.bs.InPlaceIntersection(wide.bs)

	return c, nil
}

// Or returns the union of b and o as a new bit vector with the
// size of the wider operand, b on equal size. The buckets beyond
// the narrower operand are taken from the wider one.
func (b *BitVector) Or(o *BitVector) (*BitVector, error) {
	if b == nil || o == nil {
		return nil, errNilContainer
	}

	wide, narrow := b.widest(o)

	c, err := wide.clone()
	if err != nil {
		return nil, err
	}
	c.bs.InPlaceUnion(narrow.bs)

	return c, nil
}

// Xor returns the symmetric difference of b and o as a new bit vector
// with the size of the wider operand, b on equal size. The buckets
// beyond the narrower operand are taken from the wider one.
func (b *BitVector) Xor(o *BitVector) (*BitVector, error) {
	if b == nil || o == nil {
		return nil, errNilContainer
	}

	wide, narrow := b.widest(o)

	c, err := wide.clone()
	if err != nil {
		return nil, err
	}
	c.bs.InPlaceSymmetricDifference(narrow.bs)

	return c, nil
}

func (b *BitVector) widest(o *BitVector) (wide, narrow *BitVector) {
	if o.bs.Size() > b.bs.Size() {
		return o, b
	}
	return b, o
}
