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

package collections

import (
	"reflect"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// EqualOptions returns the go-cmp options used to compare container contents.
// NaN equals NaN and unexported struct fields take part in the comparison.
func EqualOptions() []gocmp.Option {
	return []gocmp.Option{
		cmpopts.EquateNaNs(),
		gocmp.Exporter(func(reflect.Type) bool { return true }),
	}
}

func equalValues[T any](a, b []T) bool {
	return gocmp.Equal(a, b, EqualOptions()...)
}
