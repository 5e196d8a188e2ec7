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

package corpus

import (
	"encoding/hex"
	"slices"

	"github.com/blinklabs-io/arbitrary/cbor"
	"golang.org/x/crypto/blake2b"
)

// Length of an entry name in hex digits
const entryNameLength = 16

// Entry is a single corpus input
type Entry struct {
	cbor.StructAsArray `msgpack:"-"`
	Name               string `msgpack:"name"`
	Data               []byte `msgpack:"data"`
}

// NewEntry copies data into a new Entry named after its blake2b-256 hash
func NewEntry(data []byte) Entry {
	return Entry{
		Name: EntryName(data),
		Data: slices.Clone(data),
	}
}

// EntryName returns the content-derived name for data
func EntryName(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])[:entryNameLength]
}
