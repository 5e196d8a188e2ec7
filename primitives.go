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
	"math"
	"strings"
	"unicode/utf8"

	"github.com/blinklabs-io/arbitrary/cursor"
)

// Int returns a generator that reads T from as many little-endian bytes as T is
// wide. It never fails: missing bytes read as zero.
func Int[T cursor.Integer]() Generator[T] {
	return Func[T](func(c *Context) (T, error) {
		return cursor.Fixed[T](c.cur), nil
	})
}

// IntRange returns a generator for values in the inclusive range [lo, hi]
func IntRange[T cursor.Integer](lo T, hi T) Generator[T] {
	return Func[T](func(c *Context) (T, error) {
		return cursor.IntInRange(c.cur, lo, hi)
	})
}

// Bool returns a generator that uses the low bit of one byte
func Bool() Generator[bool] {
	return Func[bool](func(c *Context) (bool, error) {
		return c.cur.Byte()&1 == 1, nil
	})
}

// Float64 returns a generator that reinterprets 8 bytes as an IEEE 754 value.
// NaN and infinities are possible.
func Float64() Generator[float64] {
	return Func[float64](func(c *Context) (float64, error) {
		return math.Float64frombits(c.cur.Uint64()), nil
	})
}

// Float32 returns a generator that reinterprets 4 bytes as an IEEE 754 value
func Float32() Generator[float32] {
	return Func[float32](func(c *Context) (float32, error) {
		return math.Float32frombits(c.cur.Uint32()), nil
	})
}

// Bytes returns a generator for byte slices. In bounded mode the length is drawn
// with Len and capped at the remaining input; in rest mode it takes everything
// left. The result never aliases the input buffer.
func Bytes() Generator[[]byte] {
	return builder[[]byte](func(c *Context, rest bool) ([]byte, error) {
		var raw []byte
		if rest {
			raw = c.cur.TakeRest()
		} else {
			n, err := Len(c)
			if err != nil {
				return nil, err
			}
			if raw, err = c.cur.Bytes(n); err != nil {
				return nil, err
			}
		}
		ret := make([]byte, len(raw))
		copy(ret, raw)
		return ret, nil
	})
}

// String returns a generator for strings built like Bytes. Invalid UTF-8
// sequences are replaced with U+FFFD.
func String() Generator[string] {
	gen := Bytes()
	return builder[string](func(c *Context, rest bool) (string, error) {
		raw, err := generate(gen, c, rest)
		if err != nil {
			return "", err
		}
		if utf8.Valid(raw) {
			return string(raw), nil
		}
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError)), nil
	})
}

// Const returns a generator that always yields v without consuming input
func Const[T any](v T) Generator[T] {
	return Func[T](func(*Context) (T, error) {
		return v, nil
	})
}
