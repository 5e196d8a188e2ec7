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
	"errors"
	"log/slog"
	"reflect"

	"github.com/blinklabs-io/arbitrary/cursor"
)

var (
	ErrInputExhausted         = cursor.ErrInputExhausted
	ErrIncorrectUsage         = cursor.ErrIncorrectUsage
	ErrRecursionLimitExceeded = errors.New("recursion limit exceeded")
)

// Context holds the state of a single generation attempt. It must not be shared
// between attempts or goroutines.
type Context struct {
	cur    *cursor.Cursor
	depth  map[reflect.Type]int
	logger *slog.Logger
}

type ContextOptionFunc func(*Context)

// WithLogger specifies the logger used for debug output during generation
func WithLogger(logger *slog.Logger) ContextOptionFunc {
	return func(c *Context) {
		c.logger = logger
	}
}

// NewContext returns a Context that draws entropy from data
func NewContext(data []byte, opts ...ContextOptionFunc) *Context {
	c := &Context{
		cur: cursor.New(data),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Cursor returns the underlying cursor for use by custom generator functions
func (c *Context) Cursor() *cursor.Cursor {
	return c.cur
}

func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// enter is called by the recursion guard before building a value of type key.
// It reports whether the counter for key was incremented, in which case the
// caller must call exit when done.
func (c *Context) enter(key reflect.Type) (bool, error) {
	if !c.cur.IsEmpty() {
		return false, nil
	}
	if c.depth[key] > 0 {
		c.logger.Debug(
			"recursion guard fired",
			"type", key.String(),
			"offset", c.cur.Offset(),
		)
		return false, ErrRecursionLimitExceeded
	}
	if c.depth == nil {
		c.depth = make(map[reflect.Type]int)
	}
	c.depth[key]++
	return true, nil
}

func (c *Context) exit(key reflect.Type) {
	c.depth[key]--
	if c.depth[key] == 0 {
		delete(c.depth, key)
	}
}
