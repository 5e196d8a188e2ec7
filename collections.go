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

package arbitrary

import (
	"cmp"

	"github.com/blinklabs-io/arbitrary/collections"
)

// fill draws a length and builds that many elements in order, handing each to
// add. In rest mode the final element is built in rest mode.
func fill[T any](c *Context, rest bool, elem Generator[T], add func(T)) error {
	n, err := Len(c)
	if err != nil {
		return err
	}
	for i := range n {
		v, err := generate(elem, c, rest && i == n-1)
		if err != nil {
			return err
		}
		add(v)
	}
	return nil
}

// fillPairs is fill for key/value containers. Keys are always bounded; in rest
// mode the final value is built in rest mode.
func fillPairs[K any, V any](
	c *Context,
	rest bool,
	key Generator[K],
	value Generator[V],
	add func(K, V),
) error {
	n, err := Len(c)
	if err != nil {
		return err
	}
	for i := range n {
		k, err := key.Generate(c)
		if err != nil {
			return err
		}
		v, err := generate(value, c, rest && i == n-1)
		if err != nil {
			return err
		}
		add(k, v)
	}
	return nil
}

// Slice builds a slice in insertion order
func Slice[T any](elem Generator[T]) Generator[[]T] {
	return builder[[]T](func(c *Context, rest bool) ([]T, error) {
		var ret []T
		err := fill(c, rest, elem, func(v T) {
			ret = append(ret, v)
		})
		if err != nil {
			return nil, err
		}
		if ret == nil {
			ret = []T{}
		}
		return ret, nil
	})
}

// Deque builds a double-ended queue in insertion order
func Deque[T any](elem Generator[T]) Generator[*collections.Deque[T]] {
	return builder[*collections.Deque[T]](func(c *Context, rest bool) (*collections.Deque[T], error) {
		ret := collections.NewDeque[T](0)
		if err := fill(c, rest, elem, ret.PushBack); err != nil {
			return nil, err
		}
		return ret, nil
	})
}

// List builds a linked list in insertion order
func List[T any](elem Generator[T]) Generator[*collections.List[T]] {
	return builder[*collections.List[T]](func(c *Context, rest bool) (*collections.List[T], error) {
		ret := collections.NewList[T]()
		if err := fill(c, rest, elem, ret.PushBack); err != nil {
			return nil, err
		}
		return ret, nil
	})
}

// Set builds a hashed set. Duplicate elements still consume their bytes but are
// dropped.
func Set[T comparable](elem Generator[T]) Generator[collections.Set[T]] {
	return builder[collections.Set[T]](func(c *Context, rest bool) (collections.Set[T], error) {
		ret := collections.NewSet[T](0)
		err := fill(c, rest, elem, func(v T) {
			ret.Add(v)
		})
		if err != nil {
			return nil, err
		}
		return ret, nil
	})
}

// OrderedSet builds a sorted set using the natural ordering of T. A later
// duplicate is dropped.
func OrderedSet[T cmp.Ordered](elem Generator[T]) Generator[*collections.OrderedSet[T]] {
	return OrderedSetFunc(elem, cmp.Compare[T])
}

// OrderedSetFunc builds a sorted set ordered by cmpFunc
func OrderedSetFunc[T any](
	elem Generator[T],
	cmpFunc func(T, T) int,
) Generator[*collections.OrderedSet[T]] {
	return builder[*collections.OrderedSet[T]](func(c *Context, rest bool) (*collections.OrderedSet[T], error) {
		ret := collections.NewOrderedSetFunc(cmpFunc)
		err := fill(c, rest, elem, func(v T) {
			ret.Add(v)
		})
		if err != nil {
			return nil, err
		}
		return ret, nil
	})
}

// Map builds a hashed map. Each entry draws its key before its value, and a
// later write to the same key wins.
func Map[K comparable, V any](key Generator[K], value Generator[V]) Generator[map[K]V] {
	return builder[map[K]V](func(c *Context, rest bool) (map[K]V, error) {
		ret := make(map[K]V)
		err := fillPairs(c, rest, key, value, func(k K, v V) {
			ret[k] = v
		})
		if err != nil {
			return nil, err
		}
		return ret, nil
	})
}

// OrderedMap builds a sorted map using the natural ordering of K
func OrderedMap[K cmp.Ordered, V any](
	key Generator[K],
	value Generator[V],
) Generator[*collections.OrderedMap[K, V]] {
	return OrderedMapFunc(key, value, cmp.Compare[K])
}

// OrderedMapFunc builds a sorted map ordered by cmpFunc
func OrderedMapFunc[K any, V any](
	key Generator[K],
	value Generator[V],
	cmpFunc func(K, K) int,
) Generator[*collections.OrderedMap[K, V]] {
	return builder[*collections.OrderedMap[K, V]](func(c *Context, rest bool) (*collections.OrderedMap[K, V], error) {
		ret := collections.NewOrderedMapFunc[K, V](cmpFunc)
		if err := fillPairs(c, rest, key, value, ret.Set); err != nil {
			return nil, err
		}
		return ret, nil
	})
}

// PriorityQueue builds a max-first priority queue using the natural ordering of T
func PriorityQueue[T cmp.Ordered](elem Generator[T]) Generator[*collections.PriorityQueue[T]] {
	return PriorityQueueFunc(elem, cmp.Compare[T])
}

// PriorityQueueFunc builds a priority queue that yields the greatest element
// according to cmpFunc first
func PriorityQueueFunc[T any](
	elem Generator[T],
	cmpFunc func(T, T) int,
) Generator[*collections.PriorityQueue[T]] {
	return builder[*collections.PriorityQueue[T]](func(c *Context, rest bool) (*collections.PriorityQueue[T], error) {
		ret := collections.NewPriorityQueue(cmpFunc)
		if err := fill(c, rest, elem, ret.Push); err != nil {
			return nil, err
		}
		return ret, nil
	})
}
