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

// lengthTier maps an outer draw in [0, 1000] to the range the final length is drawn from
type lengthTier struct {
	upper int
	lo    int
	hi    int
}

// These boundaries are part of the corpus format and must not change:
//
//	P(len = 0..=5)       = 90%
//	P(len = 6..=20)      = 5%
//	P(len = 21..=50)     = 4%
//	P(len = 51..=100)    = 0.9%
//	P(len = 101..=1000)  = 0.1%
var lengthTiers = []lengthTier{
	{upper: 900, lo: 0, hi: 5},
	{upper: 950, lo: 6, hi: 20},
	{upper: 990, lo: 21, hi: 50},
	{upper: 999, lo: 51, hi: 100},
	{upper: 1000, lo: 101, hi: 1000},
}

// Len draws a collection length. The outer draw picks a tier and a second draw
// picks the length uniformly within it.
func Len(c *Context) (int, error) {
	n, err := cursor.IntInRange(c.cur, 0, 1000)
	if err != nil {
		return 0, err
	}
	for _, tier := range lengthTiers {
		if n <= tier.upper {
			return cursor.IntInRange(c.cur, tier.lo, tier.hi)
		}
	}
	// IntInRange never returns more than 1000
	panic("unreachable")
}
