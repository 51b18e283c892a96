// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// fprintSeq writes the values of seq with default format, separated
// by blanks and enclosed in brackets, e.g.
//
//	[2 3 5 1 4]
func fprintSeq[T any](w io.Writer, seq iter.Seq[T]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}

	sep := ""
	for val := range seq {
		if _, err := fmt.Fprintf(w, "%s%v", sep, val); err != nil {
			return err
		}
		sep = " "
	}

	_, err := io.WriteString(w, "]")
	return err
}

// values drops the index of seq.
func values[T any](seq iter.Seq2[int, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range seq {
			if !yield(val) {
				return
			}
		}
	}
}

// stringOf is the String wrapper for all Fprint methods.
// If fprint returns an error, stringOf panics.
func stringOf(fprint func(io.Writer) error) string {
	w := new(strings.Builder)
	if err := fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes the values in index order to w, see [fprintSeq].
func (v *Vector[T]) Fprint(w io.Writer) error {
	if v == nil {
		return errNilContainer
	}
	return fprintSeq(w, values(v.All()))
}

// String returns the values in index order as string,
// just a wrapper for [Vector.Fprint].
func (v *Vector[T]) String() string {
	if v == nil {
		return "[]"
	}
	return stringOf(v.Fprint)
}

// Fprint writes the values from bottom to top to w.
func (s *Stack[T]) Fprint(w io.Writer) error {
	if s == nil {
		return errNilContainer
	}
	return fprintSeq(w, s.All())
}

// String returns the values from bottom to top as string,
// just a wrapper for [Stack.Fprint].
func (s *Stack[T]) String() string {
	if s == nil {
		return "[]"
	}
	return stringOf(s.Fprint)
}

// Fprint writes the values from front to back to w.
func (l *List[T]) Fprint(w io.Writer) error {
	if l == nil {
		return errNilContainer
	}
	return fprintSeq(w, l.chain.Values())
}

// String returns the values from front to back as string,
// just a wrapper for [List.Fprint].
func (l *List[T]) String() string {
	if l == nil {
		return "[]"
	}
	return stringOf(l.Fprint)
}

// Fprint writes the values from head to tail to w.
func (q *Queue[T]) Fprint(w io.Writer) error {
	if q == nil {
		return errNilContainer
	}
	return fprintSeq(w, q.All())
}

// String returns the values from head to tail as string,
// just a wrapper for [Queue.Fprint].
func (q *Queue[T]) String() string {
	if q == nil {
		return "[]"
	}
	return stringOf(q.Fprint)
}

// Fprint writes the values from front to back to w.
func (d *Deque[T]) Fprint(w io.Writer) error {
	if d == nil {
		return errNilContainer
	}
	return fprintSeq(w, d.All())
}

// String returns the values from front to back as string,
// just a wrapper for [Deque.Fprint].
func (d *Deque[T]) String() string {
	if d == nil {
		return "[]"
	}
	return stringOf(d.Fprint)
}

// Fprint writes the bits as '0' and '1' runes to w, bit 0 first.
//
//	1010000010
func (b *BitVector) Fprint(w io.Writer) error {
	if b == nil {
		return errNilContainer
	}
	_, err := io.WriteString(w, b.bs.String())
	return err
}

// String returns the bits as string, bit 0 first,
// just a wrapper for [BitVector.Fprint].
func (b *BitVector) String() string {
	if b == nil {
		return ""
	}
	return stringOf(b.Fprint)
}
