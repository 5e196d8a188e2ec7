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
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/blinklabs-io/arbitrary"
	"golang.org/x/sync/errgroup"
)

// Outcome classifies the result of generating a value from one entry
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeExhausted
	OutcomeRecursionLimit
	OutcomeIncorrectUsage
	OutcomeOther
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeRecursionLimit:
		return "recursion-limit"
	case OutcomeIncorrectUsage:
		return "incorrect-usage"
	default:
		return "other"
	}
}

// Classify maps a generation error to its Outcome
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, arbitrary.ErrInputExhausted):
		return OutcomeExhausted
	case errors.Is(err, arbitrary.ErrRecursionLimitExceeded):
		return OutcomeRecursionLimit
	case errors.Is(err, arbitrary.ErrIncorrectUsage):
		return OutcomeIncorrectUsage
	default:
		return OutcomeOther
	}
}

// Result is the outcome of generating a value from one entry
type Result[T any] struct {
	Entry    Entry
	Value    T
	Consumed int
	Err      error
	Outcome  Outcome
}

// Report holds the results of a replay in entry order
type Report[T any] struct {
	Results  []Result[T]
	Duration time.Duration
	counts   map[Outcome]int
}

// Count returns the number of entries with the given outcome
func (r *Report[T]) Count(outcome Outcome) int {
	return r.counts[outcome]
}

type replayConfig struct {
	workers int
	bounded bool
	logger  *slog.Logger
}

type ReplayOptionFunc func(*replayConfig)

// WithWorkers specifies how many entries are generated concurrently. Values
// below 1 select GOMAXPROCS.
func WithWorkers(workers int) ReplayOptionFunc {
	return func(c *replayConfig) {
		c.workers = workers
	}
}

// WithBounded uses bounded mode instead of consume-remaining mode
func WithBounded(bounded bool) ReplayOptionFunc {
	return func(c *replayConfig) {
		c.bounded = bounded
	}
}

// WithLogger specifies the logger for replay progress
func WithLogger(logger *slog.Logger) ReplayOptionFunc {
	return func(c *replayConfig) {
		c.logger = logger
	}
}

// Replay generates a value from every entry. Generation failures are recorded in
// the report and do not stop the replay. An error is returned only when ctx is
// cancelled before every entry has been processed.
func Replay[T any](
	ctx context.Context,
	entries []Entry,
	gen arbitrary.Generator[T],
	opts ...ReplayOptionFunc,
) (*Report[T], error) {
	cfg := replayConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	start := time.Now()
	report := &Report[T]{
		Results: make([]Result[T], len(entries)),
		counts:  make(map[Outcome]int),
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i, entry := range entries {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			report.Results[i] = generateEntry(entry, gen, cfg)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, result := range report.Results {
		report.counts[result.Outcome]++
	}
	report.Duration = time.Since(start)
	cfg.logger.Info(
		"corpus replay complete",
		"entries", len(entries),
		"ok", report.Count(OutcomeOK),
		"exhausted", report.Count(OutcomeExhausted),
		"recursion_limit", report.Count(OutcomeRecursionLimit),
		"duration", report.Duration,
	)
	return report, nil
}

func generateEntry[T any](entry Entry, gen arbitrary.Generator[T], cfg replayConfig) Result[T] {
	c := arbitrary.NewContext(entry.Data, arbitrary.WithLogger(cfg.logger))
	var value T
	var err error
	if cfg.bounded {
		value, err = gen.Generate(c)
	} else {
		value, err = gen.GenerateRest(c)
	}
	result := Result[T]{
		Entry:    entry,
		Value:    value,
		Consumed: c.Cursor().Offset(),
		Err:      err,
		Outcome:  Classify(err),
	}
	if err != nil {
		cfg.logger.Debug(
			"corpus entry failed",
			"entry", entry.Name,
			"outcome", result.Outcome.String(),
			"consumed", result.Consumed,
			"error", err,
		)
	}
	return result
}
