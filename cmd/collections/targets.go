// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/gaissmai/collections"
)

var intCmp = cmp.Compare[int]

// show formats a retrieved value or the error.
func show[V any](val V, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprint(val), nil
}

type vectorTarget struct {
	*collections.Vector[int]
}

func newVectorTarget(sc scenario) (*vectorTarget, error) {
	v, err := collections.NewVector[int](sc.Limit, sc.Capacity, sc.Growth)
	if err != nil {
		return nil, err
	}
	return &vectorTarget{v}, nil
}

func (t *vectorTarget) apply(o op) (string, error) {
	v := t.Vector
	var err error

	switch o.Op {
	case "insert":
		for _, val := range o.vals() {
			if err = v.Insert(lo.FromPtrOr(o.Index, v.Size()), val); err != nil {
				return "", err
			}
		}
	case "remove":
		return show(v.Remove(lo.FromPtr(o.Index)))
	case "delete":
		err = v.Delete(lo.FromPtr(o.Index))
	case "remove-all":
		err = v.RemoveAll(o.Value, intCmp)
	case "get":
		return show(v.Get(lo.FromPtr(o.Index)))
	case "set":
		err = v.Set(lo.FromPtr(o.Index), o.Value)
	case "sort":
		err = v.Sort(o.Reverse, intCmp)
	case "search":
		return show(v.Search(o.Value, intCmp))
	case "contains":
		return show(v.Contains(o.Value, intCmp))
	case "copy":
		t.Vector, err = v.Copy()
	case "reverse":
		t.Vector, err = v.Reverse()
	case "reserve":
		err = v.Reserve(o.Value)
	case "trim":
		err = v.Trim()
	case "clear":
		err = v.Clear()
	case "capacity":
		return strconv.Itoa(v.Capacity()), nil
	default:
		return "", errUnknownOp("vector", o.Op)
	}

	if err != nil {
		t.Vector = v
		return "", err
	}
	return t.String(), nil
}

type stackTarget struct {
	*collections.Stack[int]
}

func newStackTarget(sc scenario) (*stackTarget, error) {
	s, err := collections.NewStack[int](sc.Limit, sc.Capacity, sc.Growth)
	if err != nil {
		return nil, err
	}
	return &stackTarget{s}, nil
}

func (t *stackTarget) apply(o op) (string, error) {
	s := t.Stack
	var err error

	switch o.Op {
	case "push":
		for _, val := range o.vals() {
			if err = s.Push(val); err != nil {
				return "", err
			}
		}
	case "pop":
		return show(s.Pop())
	case "peek":
		return show(s.Peek())
	case "search":
		return show(s.Search(o.Value, intCmp))
	case "contains":
		return show(s.Contains(o.Value, intCmp))
	case "copy":
		t.Stack, err = s.Copy()
	case "reverse":
		t.Stack, err = s.Reverse()
	case "reserve":
		err = s.Reserve(o.Value)
	case "trim":
		err = s.Trim()
	case "clear":
		err = s.Clear()
	case "capacity":
		return strconv.Itoa(s.Capacity()), nil
	default:
		return "", errUnknownOp("stack", o.Op)
	}

	if err != nil {
		t.Stack = s
		return "", err
	}
	return t.String(), nil
}

type listTarget struct {
	*collections.List[int]
}

func newListTarget(sc scenario) (*listTarget, error) {
	l, err := collections.NewList[int](sc.Limit)
	if err != nil {
		return nil, err
	}
	return &listTarget{l}, nil
}

func (t *listTarget) apply(o op) (string, error) {
	l := t.List
	var err error

	switch o.Op {
	case "insert":
		for _, val := range o.vals() {
			if err = l.Insert(lo.FromPtrOr(o.Index, l.Size()), val); err != nil {
				return "", err
			}
		}
	case "remove":
		return show(l.Remove(lo.FromPtr(o.Index)))
	case "delete":
		err = l.Delete(lo.FromPtr(o.Index))
	case "remove-all":
		err = l.RemoveAll(o.Value, intCmp)
	case "get":
		return show(l.Get(lo.FromPtr(o.Index)))
	case "set":
		err = l.Set(lo.FromPtr(o.Index), o.Value)
	case "sort":
		err = l.Sort(o.Reverse, intCmp)
	case "search":
		return show(l.Search(o.Value, intCmp))
	case "contains":
		return show(l.Contains(o.Value, intCmp))
	case "copy":
		t.List, err = l.Copy()
	case "reverse":
		t.List, err = l.Reverse()
	case "clear":
		err = l.Clear()
	default:
		return "", errUnknownOp("list", o.Op)
	}

	if err != nil {
		t.List = l
		return "", err
	}
	return t.String(), nil
}

type queueTarget struct {
	*collections.Queue[int]
}

func newQueueTarget(sc scenario) (*queueTarget, error) {
	q, err := collections.NewQueue[int](sc.Limit)
	if err != nil {
		return nil, err
	}
	return &queueTarget{q}, nil
}

func (t *queueTarget) apply(o op) (string, error) {
	q := t.Queue
	var err error

	switch o.Op {
	case "enqueue":
		for _, val := range o.vals() {
			if err = q.Enqueue(val); err != nil {
				return "", err
			}
		}
	case "dequeue":
		return show(q.Dequeue())
	case "peek":
		return show(q.Peek())
	case "contains":
		return show(q.Contains(o.Value, intCmp))
	case "copy":
		t.Queue, err = q.Copy()
	case "reverse":
		t.Queue, err = q.Reverse()
	case "clear":
		err = q.Clear()
	default:
		return "", errUnknownOp("queue", o.Op)
	}

	if err != nil {
		t.Queue = q
		return "", err
	}
	return t.String(), nil
}

type dequeTarget struct {
	*collections.Deque[int]
}

func newDequeTarget(sc scenario) (*dequeTarget, error) {
	d, err := collections.NewDeque[int](sc.Limit)
	if err != nil {
		return nil, err
	}
	return &dequeTarget{d}, nil
}

func (t *dequeTarget) apply(o op) (string, error) {
	d := t.Deque
	var err error

	switch o.Op {
	case "push":
		for _, val := range o.vals() {
			if err = d.Push(val); err != nil {
				return "", err
			}
		}
	case "unshift":
		for _, val := range o.vals() {
			if err = d.Unshift(val); err != nil {
				return "", err
			}
		}
	case "pop":
		return show(d.Pop())
	case "shift":
		return show(d.Shift())
	case "front":
		return show(d.Front())
	case "back":
		return show(d.Back())
	case "contains":
		return show(d.Contains(o.Value, intCmp))
	case "copy":
		t.Deque, err = d.Copy()
	case "reverse":
		t.Deque, err = d.Reverse()
	case "clear":
		err = d.Clear()
	default:
		return "", errUnknownOp("deque", o.Op)
	}

	if err != nil {
		t.Deque = d
		return "", err
	}
	return t.String(), nil
}

type bitsTarget struct {
	*collections.BitVector
}

func newBitsTarget(sc scenario) (*bitsTarget, error) {
	b, err := collections.NewBitVector(sc.Size)
	if err != nil {
		return nil, err
	}
	return &bitsTarget{b}, nil
}

// operand builds the other operand of the algebra, o.Values are
// the set bits.
func (t *bitsTarget) operand(o op) (*collections.BitVector, error) {
	b, err := collections.NewBitVector(lo.Ternary(o.Size > 0, o.Size, t.Size()))
	if err != nil {
		return nil, err
	}
	for _, i := range o.Values {
		if err := b.Set(i); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (t *bitsTarget) apply(o op) (string, error) {
	b := t.BitVector
	var err error

	// algebra ops replace the target by the result
	algebra := map[string]func(*collections.BitVector) (*collections.BitVector, error){
		"and": b.And,
		"or":  b.Or,
		"xor": b.Xor,
	}

	switch o.Op {
	case "set":
		for _, i := range o.vals() {
			if err = b.Set(i); err != nil {
				return "", err
			}
		}
	case "reset":
		err = b.Reset(o.Value)
	case "flip":
		err = b.Flip(o.Value)
	case "test":
		return show(b.Test(o.Value))
	case "fill":
		err = b.Fill()
	case "clear":
		err = b.Clear()
	case "count":
		return strconv.Itoa(b.Count()), nil
	case "any":
		return strconv.FormatBool(b.Any()), nil
	case "all":
		return strconv.FormatBool(b.All()), nil
	case "none":
		return strconv.FormatBool(b.None()), nil
	case "not":
		t.BitVector, err = b.Not()
	case "and", "or", "xor":
		var other *collections.BitVector
		if other, err = t.operand(o); err == nil {
			t.BitVector, err = algebra[o.Op](other)
		}
	default:
		return "", errUnknownOp("bits", o.Op)
	}

	if err != nil {
		t.BitVector = b
		return "", err
	}
	return t.String(), nil
}
