// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package collections

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
)

// TestDataDriven runs the scripts in testdata, every script works
// on one int container at a time, created by the commands
//
//	vector limit=N [capacity=N] [growth=F]
//	stack  limit=N [capacity=N] [growth=F]
//	list   limit=N
//	queue  limit=N
//	deque  limit=N
//	bits   size=N
//
// Mutations print the container, retrievals the value and
// failures the error kind.
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		h := &scriptHarness{}
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			return h.run(t, d)
		})
	})
}

type scriptHarness struct {
	vec   *Vector[int]
	stack *Stack[int]
	list  *List[int]
	queue *Queue[int]
	deque *Deque[int]
	bits  *BitVector
}

func (h *scriptHarness) reset() {
	*h = scriptHarness{}
}

func (h *scriptHarness) run(t *testing.T, d *datadriven.TestData) string {
	switch d.Cmd {
	case "vector":
		h.reset()
		v, err := NewVector[int](intArg(t, d, "limit", 0), intArg(t, d, "capacity", 0), floatArg(t, d, "growth", DefaultGrowth))
		if err != nil {
			return errString(err)
		}
		h.vec = v
		return h.info()
	case "stack":
		h.reset()
		s, err := NewStack[int](intArg(t, d, "limit", 0), intArg(t, d, "capacity", 0), floatArg(t, d, "growth", DefaultGrowth))
		if err != nil {
			return errString(err)
		}
		h.stack = s
		return h.info()
	case "list":
		h.reset()
		l, err := NewList[int](intArg(t, d, "limit", 0))
		if err != nil {
			return errString(err)
		}
		h.list = l
		return h.info()
	case "queue":
		h.reset()
		q, err := NewQueue[int](intArg(t, d, "limit", 0))
		if err != nil {
			return errString(err)
		}
		h.queue = q
		return h.info()
	case "deque":
		h.reset()
		dq, err := NewDeque[int](intArg(t, d, "limit", 0))
		if err != nil {
			return errString(err)
		}
		h.deque = dq
		return h.info()
	case "bits":
		h.reset()
		b, err := NewBitVector(intArg(t, d, "size", 0))
		if err != nil {
			return errString(err)
		}
		h.bits = b
		return h.bits.String()
	case "info":
		return h.info()
	}

	switch {
	case h.vec != nil:
		return h.runVector(t, d)
	case h.stack != nil:
		return h.runStack(t, d)
	case h.list != nil:
		return h.runList(t, d)
	case h.queue != nil:
		return h.runQueue(t, d)
	case h.deque != nil:
		return h.runDeque(t, d)
	case h.bits != nil:
		return h.runBits(t, d)
	}

	t.Fatalf("%s: %s without a container", d.Pos, d.Cmd)
	return ""
}

func (h *scriptHarness) info() string {
	switch {
	case h.vec != nil:
		return fmt.Sprintf("size=%d capacity=%d limit=%d", h.vec.Size(), h.vec.Capacity(), h.vec.Limit())
	case h.stack != nil:
		return fmt.Sprintf("size=%d capacity=%d limit=%d", h.stack.Size(), h.stack.Capacity(), h.stack.Limit())
	case h.list != nil:
		return fmt.Sprintf("size=%d limit=%d", h.list.Size(), h.list.Limit())
	case h.queue != nil:
		return fmt.Sprintf("size=%d limit=%d", h.queue.Size(), h.queue.Limit())
	case h.deque != nil:
		return fmt.Sprintf("size=%d limit=%d", h.deque.Size(), h.deque.Limit())
	case h.bits != nil:
		return fmt.Sprintf("size=%d buckets=%d count=%d", h.bits.Size(), h.bits.Buckets(), h.bits.Count())
	}
	return "none"
}

func (h *scriptHarness) runVector(t *testing.T, d *datadriven.TestData) string {
	v := h.vec
	var err error

	switch d.Cmd {
	case "insert":
		for _, val := range intsArg(t, d, "values") {
			if err = v.Insert(intArg(t, d, "index", v.Size()), val); err != nil {
				return errString(err)
			}
		}
	case "remove":
		return valString(v.Remove(intArg(t, d, "index", 0)))
	case "delete":
		err = v.Delete(intArg(t, d, "index", 0))
	case "remove-all":
		err = v.RemoveAll(intArg(t, d, "value", 0), intCmp)
	case "get":
		return valString(v.Get(intArg(t, d, "index", 0)))
	case "set":
		err = v.Set(intArg(t, d, "index", 0), intArg(t, d, "value", 0))
	case "sort":
		err = v.Sort(d.HasArg("reverse"), intCmp)
	case "search":
		return valString(v.Search(intArg(t, d, "value", 0), intCmp))
	case "contains":
		return valString(v.Contains(intArg(t, d, "value", 0), intCmp))
	case "copy":
		h.vec, err = v.Copy()
	case "reverse":
		h.vec, err = v.Reverse()
	case "reserve":
		err = v.Reserve(intArg(t, d, "n", 0))
		if err == nil {
			return h.info()
		}
	case "trim":
		err = v.Trim()
		if err == nil {
			return h.info()
		}
	case "clear":
		err = v.Clear()
	default:
		t.Fatalf("%s: unknown vector command %q", d.Pos, d.Cmd)
	}

	if err != nil {
		h.vec = v
		return errString(err)
	}
	return h.vec.String()
}

func (h *scriptHarness) runStack(t *testing.T, d *datadriven.TestData) string {
	s := h.stack
	var err error

	switch d.Cmd {
	case "push":
		for _, val := range intsArg(t, d, "values") {
			if err = s.Push(val); err != nil {
				return errString(err)
			}
		}
	case "pop":
		return valString(s.Pop())
	case "peek":
		return valString(s.Peek())
	case "search":
		return valString(s.Search(intArg(t, d, "value", 0), intCmp))
	case "copy":
		h.stack, err = s.Copy()
	case "reverse":
		h.stack, err = s.Reverse()
	case "reserve":
		err = s.Reserve(intArg(t, d, "n", 0))
		if err == nil {
			return h.info()
		}
	case "trim":
		err = s.Trim()
		if err == nil {
			return h.info()
		}
	case "clear":
		err = s.Clear()
	default:
		t.Fatalf("%s: unknown stack command %q", d.Pos, d.Cmd)
	}

	if err != nil {
		h.stack = s
		return errString(err)
	}
	return h.stack.String()
}

func (h *scriptHarness) runList(t *testing.T, d *datadriven.TestData) string {
	l := h.list
	var err error

	switch d.Cmd {
	case "insert":
		for _, val := range intsArg(t, d, "values") {
			if err = l.Insert(intArg(t, d, "index", l.Size()), val); err != nil {
				return errString(err)
			}
		}
	case "remove":
		return valString(l.Remove(intArg(t, d, "index", 0)))
	case "delete":
		err = l.Delete(intArg(t, d, "index", 0))
	case "remove-all":
		err = l.RemoveAll(intArg(t, d, "value", 0), intCmp)
	case "get":
		return valString(l.Get(intArg(t, d, "index", 0)))
	case "set":
		err = l.Set(intArg(t, d, "index", 0), intArg(t, d, "value", 0))
	case "sort":
		err = l.Sort(d.HasArg("reverse"), intCmp)
	case "search":
		return valString(l.Search(intArg(t, d, "value", 0), intCmp))
	case "copy":
		h.list, err = l.Copy()
	case "reverse":
		h.list, err = l.Reverse()
	case "clear":
		err = l.Clear()
	default:
		t.Fatalf("%s: unknown list command %q", d.Pos, d.Cmd)
	}

	if err != nil {
		h.list = l
		return errString(err)
	}
	return h.list.String()
}

func (h *scriptHarness) runQueue(t *testing.T, d *datadriven.TestData) string {
	q := h.queue
	var err error

	switch d.Cmd {
	case "enqueue":
		for _, val := range intsArg(t, d, "values") {
			if err = q.Enqueue(val); err != nil {
				return errString(err)
			}
		}
	case "dequeue":
		return valString(q.Dequeue())
	case "peek":
		return valString(q.Peek())
	case "contains":
		return valString(q.Contains(intArg(t, d, "value", 0), intCmp))
	case "copy":
		h.queue, err = q.Copy()
	case "reverse":
		h.queue, err = q.Reverse()
	case "clear":
		err = q.Clear()
	default:
		t.Fatalf("%s: unknown queue command %q", d.Pos, d.Cmd)
	}

	if err != nil {
		h.queue = q
		return errString(err)
	}
	return h.queue.String()
}

func (h *scriptHarness) runDeque(t *testing.T, d *datadriven.TestData) string {
	dq := h.deque
	var err error

	switch d.Cmd {
	case "push":
		for _, val := range intsArg(t, d, "values") {
			if err = dq.Push(val); err != nil {
				return errString(err)
			}
		}
	case "unshift":
		for _, val := range intsArg(t, d, "values") {
			if err = dq.Unshift(val); err != nil {
				return errString(err)
			}
		}
	case "pop":
		return valString(dq.Pop())
	case "shift":
		return valString(dq.Shift())
	case "front":
		return valString(dq.Front())
	case "back":
		return valString(dq.Back())
	case "contains":
		return valString(dq.Contains(intArg(t, d, "value", 0), intCmp))
	case "copy":
		h.deque, err = dq.Copy()
	case "reverse":
		h.deque, err = dq.Reverse()
	case "clear":
		err = dq.Clear()
	default:
		t.Fatalf("%s: unknown deque command %q", d.Pos, d.Cmd)
	}

	if err != nil {
		h.deque = dq
		return errString(err)
	}
	return h.deque.String()
}

func (h *scriptHarness) runBits(t *testing.T, d *datadriven.TestData) string {
	b := h.bits
	var err error

	// other operand for the algebra
	other := func() *BitVector {
		o, err := NewBitVector(intArg(t, d, "size", 1))
		if err != nil {
			t.Fatalf("%s: %v", d.Pos, err)
		}
		for _, i := range intsArg(t, d, "set") {
			if err := o.Set(i); err != nil {
				t.Fatalf("%s: %v", d.Pos, err)
			}
		}
		return o
	}

	switch d.Cmd {
	case "set":
		for _, i := range intsArg(t, d, "bits") {
			if err = b.Set(i); err != nil {
				return errString(err)
			}
		}
	case "reset":
		err = b.Reset(intArg(t, d, "bit", 0))
	case "flip":
		err = b.Flip(intArg(t, d, "bit", 0))
	case "test":
		return valString(b.Test(intArg(t, d, "bit", 0)))
	case "fill":
		err = b.Fill()
	case "clear":
		err = b.Clear()
	case "count":
		return strconv.Itoa(b.Count())
	case "any":
		return strconv.FormatBool(b.Any())
	case "all":
		return strconv.FormatBool(b.All())
	case "none":
		return strconv.FormatBool(b.None())
	case "bytes":
		return fmt.Sprintf("% x", b.Bytes())
	case "not":
		h.bits, err = b.Not()
	case "and":
		h.bits, err = b.And(other())
	case "or":
		h.bits, err = b.Or(other())
	case "xor":
		h.bits, err = b.Xor(other())
	default:
		t.Fatalf("%s: unknown bits command %q", d.Pos, d.Cmd)
	}

	if err != nil {
		h.bits = b
		return errString(err)
	}
	return h.bits.String()
}

func intArg(t *testing.T, d *datadriven.TestData, key string, def int) int {
	t.Helper()
	for _, arg := range d.CmdArgs {
		if arg.Key != key {
			continue
		}
		if len(arg.Vals) != 1 {
			t.Fatalf("%s: %s needs exactly one value", d.Pos, key)
		}
		n, err := strconv.Atoi(arg.Vals[0])
		if err != nil {
			t.Fatalf("%s: %s: %v", d.Pos, key, err)
		}
		return n
	}
	return def
}

func intsArg(t *testing.T, d *datadriven.TestData, key string) []int {
	t.Helper()
	var out []int
	for _, arg := range d.CmdArgs {
		if arg.Key != key {
			continue
		}
		for _, s := range arg.Vals {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				t.Fatalf("%s: %s: %v", d.Pos, key, err)
			}
			out = append(out, n)
		}
	}
	return out
}

func floatArg(t *testing.T, d *datadriven.TestData, key string, def float64) float64 {
	t.Helper()
	for _, arg := range d.CmdArgs {
		if arg.Key != key {
			continue
		}
		f, err := strconv.ParseFloat(arg.Vals[0], 64)
		if err != nil {
			t.Fatalf("%s: %s: %v", d.Pos, key, err)
		}
		return f
	}
	return def
}

// errString reduces err to its kind, the messages carry details
// not worth pinning in scripts.
func errString(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "error: invalid argument"
	case errors.Is(err, ErrCapacityExceeded):
		return "error: capacity exceeded"
	case errors.Is(err, ErrOutOfMemory):
		return "error: out of memory"
	}
	return "error: " + err.Error()
}

func valString[V any](val V, err error) string {
	if err != nil {
		return errString(err)
	}
	return fmt.Sprint(val)
}
