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
	"errors"
	"fmt"
	"slices"

	"github.com/blinklabs-io/arbitrary"
	"github.com/blinklabs-io/arbitrary/collections"
	"github.com/google/go-cmp/cmp"
)

var ErrNondeterministic = errors.New("nondeterministic generation")

// VerifyDeterminism generates a value from entry twice, each time from an
// independent copy of its data, and checks that both attempts agree on the
// value, the error and the number of bytes consumed. Values are compared by
// contents, so containers with comparison functions and NaN floats compare equal
// when both runs built them from the same bytes.
func VerifyDeterminism[T any](entry Entry, gen arbitrary.Generator[T]) error {
	first := arbitrary.NewContext(slices.Clone(entry.Data))
	v1, err1 := gen.GenerateRest(first)
	second := arbitrary.NewContext(slices.Clone(entry.Data))
	v2, err2 := gen.GenerateRest(second)
	if Classify(err1) != Classify(err2) {
		return fmt.Errorf(
			"%w: entry %s: outcome %s then %s",
			ErrNondeterministic,
			entry.Name,
			Classify(err1),
			Classify(err2),
		)
	}
	if first.Cursor().Offset() != second.Cursor().Offset() {
		return fmt.Errorf(
			"%w: entry %s: consumed %d then %d bytes",
			ErrNondeterministic,
			entry.Name,
			first.Cursor().Offset(),
			second.Cursor().Offset(),
		)
	}
	if err1 == nil {
		if diff := cmp.Diff(v1, v2, collections.EqualOptions()...); diff != "" {
			return fmt.Errorf(
				"%w: entry %s: values differ (-first +second):\n%s",
				ErrNondeterministic,
				entry.Name,
				diff,
			)
		}
	}
	return nil
}
