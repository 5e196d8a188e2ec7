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
	"reflect"
)

// Guard wraps gen with a recursion guard keyed on T.
//
// While the cursor still has bytes the guard does nothing. Once the cursor is
// exhausted, every decision resolves to its cheapest branch, which for a
// self-referential type can still mean another nested value. The guard lets one
// nested attempt for T proceed on an exhausted cursor and fails the next with
// ErrRecursionLimitExceeded.
func Guard[T any](gen Generator[T]) Generator[T] {
	key := reflect.TypeFor[T]()
	return builder[T](func(c *Context, rest bool) (T, error) {
		entered, err := c.enter(key)
		if err != nil {
			var zero T
			return zero, err
		}
		if entered {
			defer c.exit(key)
		}
		return generate(gen, c, rest)
	})
}

// Recursive ties the knot for a self-referential type: fn receives the
// generator being defined so that nested values can refer to it. fn should
// return a guarded generator (Enum, Struct or Guard), otherwise nothing stops
// the expansion once the cursor runs dry. Wrapping the same type in two guards
// makes the inner one fire immediately on an exhausted cursor.
func Recursive[T any](fn func(self Generator[T]) Generator[T]) Generator[T] {
	var self Generator[T]
	self = Lazy(func() Generator[T] {
		return fn(self)
	})
	return self
}
