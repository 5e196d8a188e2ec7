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

// Package corpus stores fuzz corpus entries and replays them through generators.
//
// Entries are raw byte buffers named by a content hash. They can be kept one
// file per entry in a directory (the same layout as a Go fuzz corpus) or packed
// into a single archive encoded as CBOR or msgpack.
//
// Replay runs a generator over every entry using a pool of workers. Each entry
// gets its own generation context, so results never depend on scheduling.
package corpus
