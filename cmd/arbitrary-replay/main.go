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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/blinklabs-io/arbitrary"
	"github.com/blinklabs-io/arbitrary/cmd/common"
	"github.com/blinklabs-io/arbitrary/corpus"
	"github.com/blinklabs-io/arbitrary/cursor"
	"github.com/blinklabs-io/arbitrary/utils"
)

type replayFlags struct {
	*common.GlobalFlags
}

// Point is the demo value built from each corpus entry
type Point struct {
	X int32
	Y int32
	Z int32
}

var pointGen = arbitrary.Struct(
	arbitrary.Custom(
		"X",
		func(p *Point, v int32) { p.X = v },
		func(c *arbitrary.Context) (int32, error) {
			return cursor.IntInRange(c.Cursor(), int32(0), 100)
		},
	),
	arbitrary.Default("Y", func(p *Point, v int32) { p.Y = v }),
	arbitrary.Derived("Z", func(p *Point, v int32) { p.Z = v }, arbitrary.Int[int32]()),
)

func main() {
	// Parse commandline
	f := replayFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Parse()
	logger := f.Logger()

	entries, err := f.LoadEntries()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := corpus.Replay(
		ctx,
		entries,
		pointGen,
		corpus.WithWorkers(f.Workers),
		corpus.WithBounded(f.Bounded),
		corpus.WithLogger(logger),
	)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	for _, result := range report.Results {
		fmt.Printf("Entry %s (%d of %d bytes used):\n", result.Entry.Name, result.Consumed, len(result.Entry.Data))
		if result.Err != nil {
			fmt.Printf("  %s: %s\n", result.Outcome, result.Err)
			continue
		}
		fmt.Print(utils.DumpStructure(result.Value, "  "))
	}

	if f.Verify {
		failed := 0
		for _, entry := range entries {
			if err := corpus.VerifyDeterminism(entry, pointGen); err != nil {
				fmt.Printf("ERROR: %s\n", err)
				failed++
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
	}

	fmt.Printf(
		"\n%d entries: %d ok, %d exhausted, %d recursion limit, %d incorrect usage\n",
		len(report.Results),
		report.Count(corpus.OutcomeOK),
		report.Count(corpus.OutcomeExhausted),
		report.Count(corpus.OutcomeRecursionLimit),
		report.Count(corpus.OutcomeIncorrectUsage),
	)
}
