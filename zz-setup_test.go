// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"cmp"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

var errBoom = errors.New("boom")

func intCmp(a, b int) int {
	return cmp.Compare(a, b)
}

// tracker records the values passed to the free function
// and fails the copy function on request.
type tracker struct {
	copies int
	freed  []int
	failAt int // fail the n-th copy, 0 never
}

func (tr *tracker) copyFn(src int) (int, error) {
	tr.copies++
	if tr.failAt > 0 && tr.copies >= tr.failAt {
		return 0, errBoom
	}
	return src, nil
}

func (tr *tracker) freeFn(v int) {
	tr.freed = append(tr.freed, v)
}

func (tr *tracker) opts() []Option[int] {
	return []Option[int]{WithCopy(tr.copyFn), WithFree(tr.freeFn)}
}

// failNext arms the copy function to fail from the next call on.
func (tr *tracker) failNext() {
	tr.failAt = tr.copies + 1
}

func (tr *tracker) disarm() {
	tr.failAt = 0
}

func (tr *tracker) sortedFreed() []int {
	s := slices.Clone(tr.freed)
	slices.Sort(s)
	return s
}

// collect returns the values of a single value iterator.
func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// collect2 returns the values of an index value iterator.
func collect2[T any](seq iter.Seq2[int, T]) []T {
	var out []T
	for _, v := range seq {
		out = append(out, v)
	}
	return out
}

// payload is a value with an internal reference, deep cloned.
type payload struct {
	name string
	tags []string
}

func (p *payload) Clone() *payload {
	if p == nil {
		return nil
	}
	return &payload{name: p.name, tags: slices.Clone(p.tags)}
}
