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
	"testing"

	"github.com/blinklabs-io/arbitrary/cursor"
	"github.com/blinklabs-io/arbitrary/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X int32
	Y int32
	Z int32
}

var pointGen = Struct(
	Custom("X", func(p *point, v int32) { p.X = v }, func(c *Context) (int32, error) {
		return cursor.IntInRange(c.Cursor(), int32(0), 100)
	}),
	Default("Y", func(p *point, v int32) { p.Y = v }),
	Derived("Z", func(p *point, v int32) { p.Z = v }, Int[int32]()),
)

func TestStructStrategies(t *testing.T) {
	p, err := Generate(test.DecodeHexString("54ee851c"), pointGen)
	require.NoError(t, err)
	assert.Equal(t, point{X: 84, Y: 0, Z: 0x1c85ee}, p)
}

func TestStructFieldError(t *testing.T) {
	_, err := Generate(nil, pointGen)
	require.ErrorIs(t, err, ErrInputExhausted)
	assert.Contains(t, err.Error(), "field X")
}

type record struct {
	Name    string
	Tags    []string
	Payload []byte
	Version int
}

var recordGen = Struct(
	Derived("Name", func(r *record, v string) { r.Name = v }, String()),
	Derived("Payload", func(r *record, v []byte) { r.Payload = v }, Bytes()),
	Fixed("Tags", func(r *record, v []string) { r.Tags = v }, []string{"a", "b"}),
	Fixed("Version", func(r *record, v int) { r.Version = v }, 3),
)

func TestStructRestModeLastConsumingField(t *testing.T) {
	data := test.Concat([]byte{0x00, 0x00, 0x02}, []byte("hi"), []byte{0x01, 0x02, 0x03})
	r, err := Generate(data, recordGen)
	require.NoError(t, err)
	assert.Equal(t, "hi", r.Name)
	// Payload is the last field that consumes input, so it takes the rest even
	// though Fixed fields follow it
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, r.Payload)
	assert.Equal(t, []string{"a", "b"}, r.Tags)
	assert.Equal(t, 3, r.Version)
}

func TestStructFixedDoesNotAlias(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00}
	first, err := Generate(data, recordGen)
	require.NoError(t, err)
	second, err := Generate(data, recordGen)
	require.NoError(t, err)
	first.Tags[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, second.Tags)
}

type node struct {
	Value uint8
	Next  *node
}

func listGen() Generator[node] {
	return Recursive(func(self Generator[node]) Generator[node] {
		return Struct(
			Derived("Value", func(n *node, v uint8) { n.Value = v }, Int[uint8]()),
			Derived("Next", func(n *node, v *node) { n.Next = v }, Option(self)),
		)
	})
}

func TestStructRecursive(t *testing.T) {
	// value 1, present; value 2, present; value 3, absent
	data := []byte{0x01, 0x01, 0x02, 0x01, 0x03, 0x00}
	n, err := GenerateBounded(data, listGen())
	require.NoError(t, err)
	var values []uint8
	for cur := &n; cur != nil; cur = cur.Next {
		values = append(values, cur.Value)
	}
	assert.Equal(t, []uint8{1, 2, 3}, values)
}

func TestStructRecursiveExhausted(t *testing.T) {
	// The presence decision for Next needs a byte once Value drained the input
	_, err := GenerateBounded([]byte{0x01}, listGen())
	require.ErrorIs(t, err, ErrInputExhausted)
}

func TestFieldName(t *testing.T) {
	f := Default("Y", func(p *point, v int32) { p.Y = v })
	assert.Equal(t, "Y", f.Name())
}
