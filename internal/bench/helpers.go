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

// Package bench provides benchmark utilities and fixtures for the generators
// in this module.
package bench

import (
	"github.com/blinklabs-io/arbitrary"
	"github.com/blinklabs-io/arbitrary/collections"
	"github.com/blinklabs-io/arbitrary/internal/test"
)

// Document is a nested fixture type exercising most builders at once
type Document struct {
	Title    string
	Sections map[uint16][]*int64
	Tags     *collections.OrderedSet[string]
	Queue    *collections.PriorityQueue[uint32]
	Body     []byte
}

// DocumentGenerator returns a generator for Document values
func DocumentGenerator() arbitrary.Generator[Document] {
	return arbitrary.Struct(
		arbitrary.Derived("Title", func(d *Document, v string) { d.Title = v }, arbitrary.String()),
		arbitrary.Derived(
			"Sections",
			func(d *Document, v map[uint16][]*int64) { d.Sections = v },
			arbitrary.Map(
				arbitrary.Int[uint16](),
				arbitrary.Slice(arbitrary.Option(arbitrary.Int[int64]())),
			),
		),
		arbitrary.Derived(
			"Tags",
			func(d *Document, v *collections.OrderedSet[string]) { d.Tags = v },
			arbitrary.OrderedSet(arbitrary.String()),
		),
		arbitrary.Derived(
			"Queue",
			func(d *Document, v *collections.PriorityQueue[uint32]) { d.Queue = v },
			arbitrary.PriorityQueue(arbitrary.Int[uint32]()),
		),
		arbitrary.Derived("Body", func(d *Document, v []byte) { d.Body = v }, arbitrary.Bytes()),
	)
}

// Corpus returns count pseudo-random buffers of the given size from a fixed seed
func Corpus(count int, size int) [][]byte {
	return test.RandomBuffers(0xbe7c4, count, size)
}
