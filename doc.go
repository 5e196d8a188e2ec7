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

// Package arbitrary turns a fuzzer-supplied byte buffer into structured Go values.
//
// # Overview
//
// Generation is deterministic: the same bytes always produce the same value and
// leave the cursor at the same offset, so a saved corpus reproduces the exact
// values it produced when it was recorded.
//
// Every generator implements Generator[T], which has two entry points:
//   - Generate: bounded mode, consumes only what the value needs
//   - GenerateRest: consume-remaining mode, where the last sub-value built
//     receives whatever is left of the buffer
//
// Generate (the package function) is the outermost entry point and uses
// consume-remaining mode.
//
// # Building blocks
//
//   - Len: tiered collection length, biased toward 0..=5
//   - Option, Presence: present with probability 4/5
//   - Bucket, Choose, OneOf, Enum, Element: bias-free variant selection
//   - Slice, Deque, List, Set, OrderedSet, Map, OrderedMap, PriorityQueue:
//     collection builders
//   - Guard, Recursive: recursion guard for self-referential types
//   - Struct with Derived, Custom, Default and Fixed field strategies
//
// # Example
//
//	type Point struct {
//	    X, Y, Z int32
//	}
//
//	var pointGen = arbitrary.Struct(
//	    arbitrary.Custom("X", func(p *Point, v int32) { p.X = v },
//	        func(c *arbitrary.Context) (int32, error) {
//	            return cursor.IntInRange(c.Cursor(), int32(0), 100)
//	        }),
//	    arbitrary.Default("Y", func(p *Point, v int32) { p.Y = v }),
//	    arbitrary.Derived("Z", func(p *Point, v int32) { p.Z = v }, arbitrary.Int[int32]()),
//	)
//
//	point, err := arbitrary.Generate(data, pointGen)
//
// # Failures
//
// A failed attempt returns one of ErrInputExhausted, ErrRecursionLimitExceeded
// or ErrIncorrectUsage (possibly wrapped). They are routine for short inputs and
// the caller is expected to discard the attempt.
package arbitrary
