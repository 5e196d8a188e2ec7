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
	"cmp"
	"math"
	"strings"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := NewSet[int](0)
	assert.True(t, s.Add(3))
	assert.False(t, s.Add(3))
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(4))
	assert.Equal(t, 1, s.Len())
}

func TestOrderedSet(t *testing.T) {
	s := NewOrderedSet[int]()
	for _, v := range []int{5, 1, 3, 1, 5, 2} {
		s.Add(v)
	}
	assert.Equal(t, []int{1, 2, 3, 5}, s.Values())
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(4))
}

func TestOrderedSetKeepsFirstEqual(t *testing.T) {
	s := NewOrderedSetFunc(func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	assert.True(t, s.Add("Abc"))
	assert.False(t, s.Add("abc"))
	assert.Equal(t, []string{"Abc"}, s.Values())
}

func TestOrderedMapLaterWriteWins(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, []int{2, 3}, m.Values())
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = m.Get("c")
	assert.False(t, ok)
}

func TestDeque(t *testing.T) {
	d := NewDeque[int](0)
	for i := 1; i <= 5; i++ {
		d.PushBack(i)
	}
	d.PushFront(0)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, d.Values())
	v, ok := d.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	v, ok = d.PopBack()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, 4, d.Len())
	// Wrap around the ring
	d.PushBack(6)
	d.PushBack(7)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7}, d.Values())
	for d.Len() > 0 {
		d.PopFront()
	}
	_, ok = d.PopBack()
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	l := NewList[string]()
	l.PushBack("b")
	l.PushFront("a")
	l.PushBack("b")
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"a", "b", "b"}, l.Values())
}

func TestPriorityQueue(t *testing.T) {
	q := NewPriorityQueue(cmp.Compare[int])
	for _, v := range []int{3, 9, 1, 9, 4} {
		q.Push(v)
	}
	assert.Equal(t, []int{9, 9, 4, 3, 1}, q.Sorted())
	top, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 9, top)
	var popped []int
	for q.Len() > 0 {
		v, _ := q.Pop()
		popped = append(popped, v)
	}
	assert.Equal(t, []int{9, 9, 4, 3, 1}, popped)
	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	s1, s2 := NewOrderedSet[int](), NewOrderedSet[int]()
	for _, v := range []int{3, 1, 2} {
		s1.Add(v)
	}
	for _, v := range []int{2, 3, 1} {
		s2.Add(v)
	}
	assert.True(t, gocmp.Equal(s1, s2))
	s2.Add(4)
	assert.False(t, gocmp.Equal(s1, s2))

	q1, q2 := NewPriorityQueue(cmp.Compare[int]), NewPriorityQueue(cmp.Compare[int])
	for _, v := range []int{5, 1, 4} {
		q1.Push(v)
	}
	for _, v := range []int{1, 4, 5} {
		q2.Push(v)
	}
	assert.True(t, gocmp.Equal(q1, q2))

	m1, m2 := NewOrderedMap[string, float64](), NewOrderedMap[string, float64]()
	m1.Set("a", math.NaN())
	m2.Set("a", math.NaN())
	assert.True(t, gocmp.Equal(m1, m2))
	m2.Set("a", 1)
	assert.False(t, gocmp.Equal(m1, m2))

	d1, d2 := NewDeque[int](1), NewDeque[int](8)
	d1.PushBack(2)
	d1.PushFront(1)
	d2.PushBack(1)
	d2.PushBack(2)
	assert.True(t, gocmp.Equal(d1, d2))

	l1, l2 := NewList[int](), NewList[int]()
	l1.PushBack(1)
	l2.PushFront(1)
	assert.True(t, gocmp.Equal(l1, l2))
	l2.PushBack(2)
	assert.False(t, gocmp.Equal(l1, l2))

	var nilSet *OrderedSet[int]
	assert.False(t, s1.Equal(nilSet))
	assert.True(t, nilSet.Equal(nil))
}
