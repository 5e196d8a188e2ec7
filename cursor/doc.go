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

// Package cursor provides the byte-consuming primitives that every generator in
// this module draws its entropy from.
//
// A Cursor wraps an immutable byte buffer and a read offset that only moves
// forward. Decisions are made by consuming the fewest bytes possible so that a
// fuzzer mutating the buffer gets a smooth relationship between input bytes and
// generated values.
//
// # Failure modes
//
// Ranged draws (IntInRange, Ratio) fail with ErrInputExhausted when a byte is
// required and none remain. Fixed-width draws (Byte, Uint32, Uint64) never fail
// and zero-fill missing bytes instead, which makes them resolve to the "first"
// choice once the buffer is exhausted.
package cursor
