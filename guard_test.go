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
	"testing"

	"github.com/blinklabs-io/arbitrary/cursor"
	"github.com/blinklabs-io/arbitrary/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expr is a self-referential variant type whose first (cheapest) variant recurses
type expr struct {
	nested *expr
	leaf   uint8
}

func (e *expr) depth() int {
	d := 0
	for e.nested != nil {
		d++
		e = e.nested
	}
	return d
}

func exprGen() Generator[*expr] {
	return Recursive(func(self Generator[*expr]) Generator[*expr] {
		return Enum(
			Func[*expr](func(c *Context) (*expr, error) {
				inner, err := self.Generate(c)
				if err != nil {
					return nil, err
				}
				return &expr{nested: inner}, nil
			}),
			Func[*expr](func(c *Context) (*expr, error) {
				return &expr{leaf: cursor.Fixed[uint8](c.Cursor())}, nil
			}),
		)
	})
}

var (
	variantNested = []byte{0x00, 0x00, 0x00, 0x00}
	variantLeaf   = []byte{0xff, 0xff, 0xff, 0xff}
)

func TestGuardEmptyBuffer(t *testing.T) {
	c := NewContext(nil)
	_, err := exprGen().Generate(c)
	require.ErrorIs(t, err, ErrRecursionLimitExceeded)
	assert.Empty(t, c.depth, "counters must be released after a failed attempt")
}

func TestGuardOneNestedLevel(t *testing.T) {
	c := NewContext(test.Concat(variantNested, variantLeaf, []byte{0x2a}))
	e, err := exprGen().Generate(c)
	require.NoError(t, err)
	assert.Equal(t, 1, e.depth())
	assert.Equal(t, uint8(42), e.nested.leaf)
	assert.Empty(t, c.depth)
}

func TestGuardAllowsOneAttemptAfterExhaustion(t *testing.T) {
	// The nested value is entered with an exhausted cursor, picks the nested
	// variant again and is stopped on the second entry
	c := NewContext(variantNested)
	_, err := exprGen().Generate(c)
	require.ErrorIs(t, err, ErrRecursionLimitExceeded)
	assert.Empty(t, c.depth)
}

func TestGuardNoopWithInput(t *testing.T) {
	data := test.Concat(variantNested, variantNested, variantNested, variantLeaf, []byte{0x01})
	c := NewContext(data)
	e, err := exprGen().Generate(c)
	require.NoError(t, err)
	assert.Equal(t, 3, e.depth())
	assert.Nil(t, c.depth, "guard should not touch counters while input remains")
}

func TestGuardLeafOnExhaustedCursor(t *testing.T) {
	// Nested variant, then the leaf variant chosen from the last 4 bytes leaves
	// the leaf value to be read from an exhausted cursor
	c := NewContext(test.Concat(variantNested, variantLeaf))
	e, err := exprGen().Generate(c)
	require.NoError(t, err)
	assert.Equal(t, 1, e.depth())
	assert.Equal(t, uint8(0), e.nested.leaf)
}

func TestGuardAttemptsAreIsolated(t *testing.T) {
	gen := exprGen()
	_, err := gen.Generate(NewContext(nil))
	require.ErrorIs(t, err, ErrRecursionLimitExceeded)
	// A fresh attempt is unaffected by the failure of the previous one
	e, err := gen.Generate(NewContext(test.Concat(variantLeaf, []byte{0x07})))
	require.NoError(t, err)
	assert.Equal(t, uint8(7), e.leaf)
}

func TestGuardCounterNeverExceedsOne(t *testing.T) {
	c := NewContext(nil)
	var observed []int
	var gen Generator[int]
	gen = Guard[int](Func[int](func(c *Context) (int, error) {
		observed = append(observed, c.depth[reflect.TypeFor[int]()])
		return gen.Generate(c)
	}))
	_, err := gen.Generate(c)
	require.ErrorIs(t, err, ErrRecursionLimitExceeded)
	assert.Equal(t, []int{1}, observed)
	assert.Empty(t, c.depth)
}

func TestGuardKeyedPerType(t *testing.T) {
	// Distinct types each get their own nested attempt
	c := NewContext(nil)
	inner := Guard[string](Const("ok"))
	outer := Guard[int](Func[int](func(c *Context) (int, error) {
		s, err := inner.Generate(c)
		return len(s), err
	}))
	v, err := outer.Generate(c)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
