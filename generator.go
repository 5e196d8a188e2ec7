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

import "sync"

// Generator builds values of type T from a Context
type Generator[T any] interface {
	// Generate builds a value using only the bytes it needs
	Generate(*Context) (T, error)
	// GenerateRest builds a value whose last sub-value absorbs the remaining bytes
	GenerateRest(*Context) (T, error)
}

// Func adapts a plain function to a Generator. Both modes call the function.
type Func[T any] func(*Context) (T, error)

func (f Func[T]) Generate(c *Context) (T, error) {
	return f(c)
}

func (f Func[T]) GenerateRest(c *Context) (T, error) {
	return f(c)
}

// WithRest returns a Generator that uses bounded for Generate and rest for GenerateRest
func WithRest[T any](bounded Func[T], rest Func[T]) Generator[T] {
	return builder[T](func(c *Context, takeRest bool) (T, error) {
		if takeRest {
			return rest(c)
		}
		return bounded(c)
	})
}

// builder is the shared shape of every generator in this package: one function
// with the mode passed explicitly
type builder[T any] func(c *Context, rest bool) (T, error)

func (b builder[T]) Generate(c *Context) (T, error) {
	return b(c, false)
}

func (b builder[T]) GenerateRest(c *Context) (T, error) {
	return b(c, true)
}

func generate[T any](g Generator[T], c *Context, rest bool) (T, error) {
	if rest {
		return g.GenerateRest(c)
	}
	return g.Generate(c)
}

// Lazy defers construction of a generator until first use. It allows
// self-referential generators to refer to themselves. The result is safe to
// share between goroutines, as are all generators in this package.
func Lazy[T any](fn func() Generator[T]) Generator[T] {
	var gen Generator[T]
	var once sync.Once
	return builder[T](func(c *Context, rest bool) (T, error) {
		once.Do(func() {
			gen = fn()
		})
		return generate(gen, c, rest)
	})
}

// Generate builds a value from data in consume-remaining mode. This is the
// entry point for a fuzz target.
func Generate[T any](data []byte, gen Generator[T], opts ...ContextOptionFunc) (T, error) {
	return gen.GenerateRest(NewContext(data, opts...))
}

// GenerateBounded builds a value from data, leaving unneeded bytes unused
func GenerateBounded[T any](data []byte, gen Generator[T], opts ...ContextOptionFunc) (T, error) {
	return gen.Generate(NewContext(data, opts...))
}
