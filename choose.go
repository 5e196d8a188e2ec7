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
	"fmt"

	"fortio.org/safecast"
)

// Bucket maps a uniform 32-bit draw onto one of count buckets by multiplying and
// shifting instead of taking a modulo, which would favour the low buckets
// whenever count does not divide 2^32.
func Bucket(raw uint32, count uint32) uint32 {
	return uint32((uint64(raw) * uint64(count)) >> 32)
}

// Choose picks an index in [0, count). It always consumes one 32-bit draw, so an
// exhausted cursor selects index 0.
func Choose(c *Context, count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: choose from %d options", ErrIncorrectUsage, count)
	}
	n, err := safecast.Conv[uint32](count)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIncorrectUsage, err)
	}
	return int(Bucket(c.cur.Uint32(), n)), nil
}

// OneOf returns a generator that selects one of variants and builds it. The
// chosen variant inherits the mode.
func OneOf[T any](variants ...Generator[T]) Generator[T] {
	return builder[T](func(c *Context, rest bool) (T, error) {
		idx, err := Choose(c, len(variants))
		if err != nil {
			var zero T
			return zero, err
		}
		return generate(variants[idx], c, rest)
	})
}

// Enum is OneOf guarded against unbounded recursion for T. Use it for variant
// types that can contain themselves.
func Enum[T any](variants ...Generator[T]) Generator[T] {
	return Guard(OneOf(variants...))
}

// Element returns a generator that picks one of vals
func Element[T any](vals ...T) Generator[T] {
	return Func[T](func(c *Context) (T, error) {
		idx, err := Choose(c, len(vals))
		if err != nil {
			var zero T
			return zero, err
		}
		return vals[idx], nil
	})
}
