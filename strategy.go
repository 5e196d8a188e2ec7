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

	"github.com/jinzhu/copier"
)

// Field describes how one field of a struct of type T is produced
type Field[T any] struct {
	name     string
	consumes bool
	fill     func(c *Context, dst *T, rest bool) error
}

// Name returns the field name given at registration
func (f Field[T]) Name() string {
	return f.name
}

// Derived builds the field with its own generator
func Derived[T any, F any](name string, set func(*T, F), gen Generator[F]) Field[T] {
	return Field[T]{
		name:     name,
		consumes: true,
		fill: func(c *Context, dst *T, rest bool) error {
			v, err := generate(gen, c, rest)
			if err != nil {
				return err
			}
			set(dst, v)
			return nil
		},
	}
}

// Custom builds the field with a caller-supplied function
func Custom[T any, F any](name string, set func(*T, F), fn func(*Context) (F, error)) Field[T] {
	return Derived(name, set, Func[F](fn))
}

// Default sets the field to its zero value without consuming input
func Default[T any, F any](name string, set func(*T, F)) Field[T] {
	return Field[T]{
		name: name,
		fill: func(_ *Context, dst *T, _ bool) error {
			var zero F
			set(dst, zero)
			return nil
		},
	}
}

// Fixed sets the field to a deep copy of v without consuming input. Slices, maps
// and pointers inside v are not shared between generated values.
func Fixed[T any, F any](name string, set func(*T, F), v F) Field[T] {
	return Field[T]{
		name: name,
		fill: func(_ *Context, dst *T, _ bool) error {
			var tmp F
			if err := copier.CopyWithOption(&tmp, &v, copier.Option{DeepCopy: true}); err != nil {
				return err
			}
			set(dst, tmp)
			return nil
		},
	}
}

// Struct returns a guarded generator that fills a T one field at a time in the
// given order. In rest mode the last field that consumes input is built in rest
// mode.
func Struct[T any](fields ...Field[T]) Generator[T] {
	last := -1
	for i, field := range fields {
		if field.consumes {
			last = i
		}
	}
	return Guard[T](builder[T](func(c *Context, rest bool) (T, error) {
		var ret T
		for i, field := range fields {
			if err := field.fill(c, &ret, rest && i == last); err != nil {
				var zero T
				return zero, fmt.Errorf("field %s: %w", field.name, err)
			}
		}
		return ret, nil
	}))
}
