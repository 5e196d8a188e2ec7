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

// Package bench provides allocation regression tests and benchmarks for the
// generators in this module.
package bench

import (
	"os"
	"strconv"
	"testing"

	"github.com/blinklabs-io/arbitrary"
	"github.com/stretchr/testify/require"
)

// getThresholdMultiplier returns a multiplier for allocation limits, allowing
// slower or instrumented environments (race detector, coverage) to relax them
func getThresholdMultiplier() float64 {
	if v := os.Getenv("ARBITRARY_ALLOC_THRESHOLD_MULTIPLIER"); v != "" {
		if m, err := strconv.ParseFloat(v, 64); err == nil && m > 0 {
			return m
		}
	}
	return 1.0
}

var (
	lenInput    = []byte{0x00, 0x10, 0x03}
	chooseInput = []byte{0x01, 0x02, 0x03, 0x04}
	emptyInput  = []byte{}
	guardedExpr = arbitrary.Recursive(func(self arbitrary.Generator[[]byte]) arbitrary.Generator[[]byte] {
		return arbitrary.Enum(self, arbitrary.Const([]byte(nil)))
	})
)

func lenOnce() error {
	_, err := arbitrary.Len(arbitrary.NewContext(lenInput))
	return err
}

func chooseOnce() error {
	_, err := arbitrary.Choose(arbitrary.NewContext(chooseInput), 251)
	return err
}

func guardFireOnce() error {
	_, err := guardedExpr.Generate(arbitrary.NewContext(emptyInput))
	return err
}

// TestAllocationRegression guards the per-decision cost of the samplers and the
// recursion guard. Limits include headroom; set
// ARBITRARY_ALLOC_THRESHOLD_MULTIPLIER to relax them.
func TestAllocationRegression(t *testing.T) {
	multiplier := getThresholdMultiplier()

	tests := []struct {
		name      string
		fn        func() error
		maxAllocs int64
		wantErr   error
	}{
		// Context and cursor setup dominate; the draws themselves do not allocate
		{"Len", lenOnce, 4, nil},
		{"Choose", chooseOnce, 4, nil},
		// Counter map plus the debug log attributes
		{"GuardFire", guardFireOnce, 32, arbitrary.ErrRecursionLimitExceeded},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Run the function once to warm up and check its result
			err := tc.fn()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			allocs := testing.AllocsPerRun(100, func() {
				_ = tc.fn()
			})

			adjustedLimit := float64(tc.maxAllocs) * multiplier
			if allocs > adjustedLimit {
				t.Errorf(
					"%s: %.0f allocs > %.0f limit (base: %d, multiplier: %.2f)",
					tc.name,
					allocs,
					adjustedLimit,
					tc.maxAllocs,
					multiplier,
				)
			} else {
				t.Logf("%s: %.0f allocs (limit: %.0f)", tc.name, allocs, adjustedLimit)
			}
		})
	}
}
