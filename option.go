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
	"github.com/blinklabs-io/arbitrary/cursor"
)

// Presence decides whether an optional value is present. It is absent one time
// in five on average.
func Presence(c *Context) (bool, error) {
	absent, err := cursor.Ratio(c.cur, 1, 5)
	if err != nil {
		return false, err
	}
	return !absent, nil
}

// Option returns a generator for an optional value, represented as a pointer
// that is nil when absent. In rest mode the inner value is built in rest mode.
func Option[T any](inner Generator[T]) Generator[*T] {
	return builder[*T](func(c *Context, rest bool) (*T, error) {
		present, err := Presence(c)
		if err != nil || !present {
			return nil, err
		}
		v, err := generate(inner, c, rest)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
}
