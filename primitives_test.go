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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntLittleEndian(t *testing.T) {
	c := NewContext([]byte{0x01, 0x02, 0x03})
	v, err := Int[int16]().Generate(c)
	require.NoError(t, err)
	assert.Equal(t, int16(0x0201), v)
	// Missing bytes read as zero
	w, err := Int[uint32]().Generate(c)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x03), w)
}

func TestIntRangeIncorrectUsage(t *testing.T) {
	_, err := IntRange(10, 1).Generate(NewContext([]byte{0x01}))
	require.ErrorIs(t, err, ErrIncorrectUsage)
}

func TestBool(t *testing.T) {
	c := NewContext([]byte{0x02, 0x03})
	v, err := Bool().Generate(c)
	require.NoError(t, err)
	assert.False(t, v)
	v, err = Bool().Generate(c)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestFloats(t *testing.T) {
	data := make([]byte, 12)
	bits := math.Float64bits(1.5)
	for i := range 8 {
		data[i] = byte(bits >> (8 * i))
	}
	bits32 := math.Float32bits(-2)
	for i := range 4 {
		data[8+i] = byte(bits32 >> (8 * i))
	}
	c := NewContext(data)
	f, err := Float64().Generate(c)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f, 0)
	g, err := Float32().Generate(c)
	require.NoError(t, err)
	assert.InDelta(t, float32(-2), g, 0)
}

func TestBytesBoundedCapsAtRemaining(t *testing.T) {
	c := NewContext([]byte{0x00, 0x00, 0x05, 0xaa, 0xbb})
	v, err := Bytes().Generate(c)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb}, v)
}

func TestBytesDoesNotAlias(t *testing.T) {
	data := []byte{0x01, 0x02}
	v, err := Generate(data, Bytes())
	require.NoError(t, err)
	v[0] = 0xff
	assert.Equal(t, byte(0x01), data[0])
}

func TestStringInvalidUTF8(t *testing.T) {
	v, err := Generate([]byte{'o', 'k', 0xff}, String())
	require.NoError(t, err)
	assert.Equal(t, "ok�", v)
}

func TestConstConsumesNothing(t *testing.T) {
	c := NewContext([]byte{0x01})
	v, err := Const(42).Generate(c)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 0, c.Cursor().Offset())
}

func TestWithRest(t *testing.T) {
	gen := WithRest(
		func(*Context) (string, error) { return "bounded", nil },
		func(*Context) (string, error) { return "rest", nil },
	)
	v, err := GenerateBounded(nil, gen)
	require.NoError(t, err)
	assert.Equal(t, "bounded", v)
	v, err = Generate(nil, gen)
	require.NoError(t, err)
	assert.Equal(t, "rest", v)
}
