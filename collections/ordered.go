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
	"slices"
)

// Set is an unordered set of comparable values
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](capacity int) Set[T] {
	return make(Set[T], capacity)
}

// Add inserts v and reports whether it was not already present
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

// OrderedSet keeps unique values sorted by a comparison function
type OrderedSet[T any] struct {
	cmp   func(T, T) int
	items []T
}

// NewOrderedSet returns an OrderedSet using the natural ordering of T
func NewOrderedSet[T cmp.Ordered]() *OrderedSet[T] {
	return NewOrderedSetFunc(cmp.Compare[T])
}

// NewOrderedSetFunc returns an OrderedSet ordered by cmpFunc
func NewOrderedSetFunc[T any](cmpFunc func(T, T) int) *OrderedSet[T] {
	return &OrderedSet[T]{cmp: cmpFunc}
}

// Add inserts v and reports whether it was not already present. An equal value
// already in the set is kept.
func (s *OrderedSet[T]) Add(v T) bool {
	idx, found := slices.BinarySearchFunc(s.items, v, s.cmp)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, idx, v)
	return true
}

func (s *OrderedSet[T]) Has(v T) bool {
	_, found := slices.BinarySearchFunc(s.items, v, s.cmp)
	return found
}

func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Values returns the set contents in ascending order
func (s *OrderedSet[T]) Values() []T {
	return slices.Clone(s.items)
}

// Equal reports whether s and other hold the same values
func (s *OrderedSet[T]) Equal(other *OrderedSet[T]) bool {
	if s == nil || other == nil {
		return s == other
	}
	return equalValues(s.items, other.items)
}

// OrderedMap keeps unique keys sorted by a comparison function
type OrderedMap[K any, V any] struct {
	cmp    func(K, K) int
	keys   []K
	values []V
}

// NewOrderedMap returns an OrderedMap using the natural ordering of K
func NewOrderedMap[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return NewOrderedMapFunc[K, V](cmp.Compare[K])
}

// NewOrderedMapFunc returns an OrderedMap ordered by cmpFunc
func NewOrderedMapFunc[K any, V any](cmpFunc func(K, K) int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{cmp: cmpFunc}
}

// Set stores v under k, replacing any existing value for an equal key
func (m *OrderedMap[K, V]) Set(k K, v V) {
	idx, found := slices.BinarySearchFunc(m.keys, k, m.cmp)
	if found {
		m.values[idx] = v
		return
	}
	m.keys = slices.Insert(m.keys, idx, k)
	m.values = slices.Insert(m.values, idx, v)
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	idx, found := slices.BinarySearchFunc(m.keys, k, m.cmp)
	if !found {
		var zero V
		return zero, false
	}
	return m.values[idx], true
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in ascending order
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns the values in key order
func (m *OrderedMap[K, V]) Values() []V {
	return slices.Clone(m.values)
}

// Equal reports whether m and other hold the same keys mapped to the same values
func (m *OrderedMap[K, V]) Equal(other *OrderedMap[K, V]) bool {
	if m == nil || other == nil {
		return m == other
	}
	return equalValues(m.keys, other.keys) && equalValues(m.values, other.values)
}
