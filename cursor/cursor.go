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

package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"fortio.org/safecast"
)

var (
	// ErrInputExhausted is returned when a decision needs entropy and the buffer has none left
	ErrInputExhausted = errors.New("input exhausted")
	// ErrIncorrectUsage is returned for requests that can never be satisfied, such as an empty range
	ErrIncorrectUsage = errors.New("incorrect usage")
)

// Integer is the set of types accepted by IntInRange
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Cursor is a forward-only reader over a fixed byte buffer
type Cursor struct {
	data   []byte
	offset int
}

// New returns a Cursor positioned at the start of data. The buffer is not copied
// and must not be modified while the Cursor is in use.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// IsEmpty reports whether all bytes have been consumed
func (c *Cursor) IsEmpty() bool {
	return c.offset >= len(c.data)
}

// Len returns the number of bytes left to consume
func (c *Cursor) Len() int {
	return len(c.data) - c.offset
}

// Offset returns the number of bytes consumed so far
func (c *Cursor) Offset() int {
	return c.offset
}

// Byte consumes one byte, returning 0 when the buffer is exhausted
func (c *Cursor) Byte() byte {
	if c.IsEmpty() {
		return 0
	}
	b := c.data[c.offset]
	c.offset++
	return b
}

// Uint32 consumes up to 4 bytes as a little-endian value. Missing bytes are zero.
func (c *Cursor) Uint32() uint32 {
	var buf [4]byte
	c.fill(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// Uint64 consumes up to 8 bytes as a little-endian value. Missing bytes are zero.
func (c *Cursor) Uint64() uint64 {
	var buf [8]byte
	c.fill(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// Fixed consumes as many bytes as T is wide and returns them as a little-endian
// value. Missing bytes are zero.
func Fixed[T Integer](c *Cursor) T {
	var buf [8]byte
	var zero T
	width := int(unsafe.Sizeof(zero))
	c.fill(buf[:width])
	return T(binary.LittleEndian.Uint64(buf[:]))
}

// Bytes consumes and returns up to n bytes. The result is shorter than n when
// the buffer runs out. The returned slice aliases the underlying buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", ErrIncorrectUsage, n)
	}
	n = min(n, c.Len())
	ret := c.data[c.offset : c.offset+n]
	c.offset += n
	return ret, nil
}

// TakeRest consumes and returns every remaining byte
func (c *Cursor) TakeRest() []byte {
	ret := c.data[c.offset:]
	c.offset = len(c.data)
	return ret
}

func (c *Cursor) fill(buf []byte) {
	n := copy(buf, c.data[c.offset:])
	c.offset += n
}

// IntInRange returns a value in the inclusive range [lo, hi], consuming only as
// many bytes as are needed to cover the span of the range. Bytes are accumulated
// big-endian and the result is reduced modulo the span, so identical remaining
// bytes always give the same value.
func IntInRange[T Integer](c *Cursor, lo T, hi T) (T, error) {
	if lo > hi {
		return lo, fmt.Errorf(
			"%w: empty range %d..=%d",
			ErrIncorrectUsage,
			lo,
			hi,
		)
	}
	if lo == hi {
		return lo, nil
	}
	// All arithmetic happens on the unsigned representation at the width of T
	width := int(unsafe.Sizeof(lo)) * 8
	mask := uint64(1)<<width - 1
	if width == 64 {
		mask = ^uint64(0)
	}
	span := (uint64(hi) - uint64(lo)) & mask
	var acc uint64
	read := 0
	for read < width && span>>read > 0 {
		if c.IsEmpty() {
			if read == 0 {
				return lo, ErrInputExhausted
			}
			break
		}
		acc = acc<<8 | uint64(c.data[c.offset])
		c.offset++
		read += 8
	}
	if span != mask {
		acc %= span + 1
	}
	return T(uint64(lo) + acc), nil
}

// Ratio returns true with probability numerator/denominator. It draws a value in
// [1, denominator] and reports whether it is at most numerator.
func Ratio[T Integer](c *Cursor, numerator T, denominator T) (bool, error) {
	if numerator <= 0 || numerator > denominator {
		return false, fmt.Errorf(
			"%w: ratio %d/%d",
			ErrIncorrectUsage,
			numerator,
			denominator,
		)
	}
	x, err := IntInRange(c, T(1), denominator)
	if err != nil {
		return false, err
	}
	return x <= numerator, nil
}

// IntN returns a value in [0, n) as an int. It is a convenience wrapper for
// callers that work with lengths and indexes.
func IntN(c *Cursor, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: IntN(%d)", ErrIncorrectUsage, n)
	}
	hi, err := safecast.Conv[uint64](n - 1)
	if err != nil {
		return 0, err
	}
	v, err := IntInRange(c, uint64(0), hi)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[int](v)
}
