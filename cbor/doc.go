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

// Package cbor provides CBOR encoding/decoding utilities for corpus archives.
//
// This package wraps github.com/fxamacker/cbor/v2 with cached encoding and
// decoding modes so that archives written by one run are byte-identical to
// archives written by another.
//
// # Key Types
//
//   - StructAsArray: Embed to encode struct fields as CBOR array instead of map
//   - RawMessage: Deferred decoding (like json.RawMessage)
//   - StreamDecoder: Sequential decoding of a CBOR sequence with offsets
//
// # Encoding Gotchas
//
//  1. Map keys are sorted (core deterministic encoding), so maps round-trip to
//     the same bytes regardless of Go map iteration order
//  2. Unknown struct fields are a decode error, which catches archives written
//     by a newer version of this module
package cbor
