// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collections

import (
	"container/heap"
	"container/list"
	"slices"
)

// Deque is a double-ended queue backed by a ring buffer
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

func NewDeque[T any](capacity int) *Deque[T] {
	return &Deque[T]{buf: make([]T, max(capacity, 1))}
}

func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	newBuf := make([]T, max(len(d.buf)*2, 1))
	for i := 0; i < d.count; i++ {
		newBuf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = newBuf
	d.head = 0
}

func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[(d.head+d.count)%len(d.buf)] = v
	d.count++
}

func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.count++
}

func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.count--
	return v, true
}

func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	idx := (d.head + d.count - 1) % len(d.buf)
	v := d.buf[idx]
	d.buf[idx] = zero
	d.count--
	return v, true
}

func (d *Deque[T]) Len() int {
	return d.count
}

// Values returns the contents from front to back
func (d *Deque[T]) Values() []T {
	ret := make([]T, 0, d.count)
	for i := 0; i < d.count; i++ {
		ret = append(ret, d.buf[(d.head+i)%len(d.buf)])
	}
	return ret
}

// Equal reports whether d and other hold the same values from front to back
func (d *Deque[T]) Equal(other *Deque[T]) bool {
	if d == nil || other == nil {
		return d == other
	}
	return equalValues(d.Values(), other.Values())
}

// List is a typed wrapper around container/list
type List[T any] struct {
	l *list.List
}

func NewList[T any]() *List[T] {
	return &List[T]{l: list.New()}
}

func (l *List[T]) PushBack(v T) {
	l.l.PushBack(v)
}

func (l *List[T]) PushFront(v T) {
	l.l.PushFront(v)
}

func (l *List[T]) Len() int {
	return l.l.Len()
}

// Values returns the contents from front to back
func (l *List[T]) Values() []T {
	ret := make([]T, 0, l.l.Len())
	for e := l.l.Front(); e != nil; e = e.Next() {
		ret = append(ret, e.Value.(T))
	}
	return ret
}

// Equal reports whether l and other hold the same values from front to back
func (l *List[T]) Equal(other *List[T]) bool {
	if l == nil || other == nil {
		return l == other
	}
	return equalValues(l.Values(), other.Values())
}

// PriorityQueue pops the greatest element first according to its comparison function
type PriorityQueue[T any] struct {
	h *maxHeap[T]
}

func NewPriorityQueue[T any](cmpFunc func(T, T) int) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: &maxHeap[T]{cmp: cmpFunc}}
}

func (q *PriorityQueue[T]) Push(v T) {
	heap.Push(q.h, v)
}

// Pop removes and returns the greatest element
func (q *PriorityQueue[T]) Pop() (T, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(q.h).(T), true
}

// Peek returns the greatest element without removing it
func (q *PriorityQueue[T]) Peek() (T, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.h.items[0], true
}

func (q *PriorityQueue[T]) Len() int {
	return q.h.Len()
}

// Sorted returns the contents in extraction order without modifying the queue
func (q *PriorityQueue[T]) Sorted() []T {
	ret := slices.Clone(q.h.items)
	slices.SortStableFunc(ret, func(a, b T) int {
		return q.h.cmp(b, a)
	})
	return ret
}

// Equal reports whether q and other would pop the same values in the same order
func (q *PriorityQueue[T]) Equal(other *PriorityQueue[T]) bool {
	if q == nil || other == nil {
		return q == other
	}
	return equalValues(q.Sorted(), other.Sorted())
}

type maxHeap[T any] struct {
	cmp   func(T, T) int
	items []T
}

func (h *maxHeap[T]) Len() int { return len(h.items) }

func (h *maxHeap[T]) Less(i, j int) bool { return h.cmp(h.items[i], h.items[j]) > 0 }

func (h *maxHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *maxHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *maxHeap[T]) Pop() any {
	n := len(h.items)
	v := h.items[n-1]
	var zero T
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	return v
}
