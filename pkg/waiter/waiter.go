// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package waiter polls a status sampler until a record reaches a wanted state
// or a deadline passes.
package waiter

import (
	"fmt"
	"time"

	"k8s.io/utils/clock"

	"kfcheck/pkg/logging"
	"kfcheck/pkg/status"
)

// ErrorPolicy decides what a sampler's ExternalToolError does to a wait.
type ErrorPolicy int

const (
	// TolerateToolErrors treats tool failures as "not available yet" and
	// keeps polling.
	TolerateToolErrors ErrorPolicy = iota
	// FailFast aborts the wait on the first tool failure.
	FailFast
)

func (p ErrorPolicy) String() string {
	switch p {
	case TolerateToolErrors:
		return "tolerate"
	case FailFast:
		return "fail-fast"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}

// Spec configures one wait operation.
type Spec struct {
	Predicate    Predicate
	Timeout      time.Duration
	PollInterval time.Duration
	ErrorPolicy  ErrorPolicy
}

// Outcome is the terminal state of a wait. The zero value is not a valid
// outcome.
type Outcome int

const (
	Success Outcome = iota + 1
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case TimedOut:
		return "TimedOut"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is produced once per WaitFor call.
type Result struct {
	Outcome Outcome
	// Record is the matching record; only set on Success.
	Record   status.Record
	Attempts int
	Elapsed  time.Duration
	// LastErr is the most recent tolerated sampler error, if any.
	LastErr error
}

// SampleFunc returns the current records.
type SampleFunc func() ([]status.Record, error)

// Waiter runs poll loops against a clock.
type Waiter struct {
	Clock clock.Clock
}

// New returns a Waiter on the real clock.
func New() *Waiter {
	return &Waiter{Clock: clock.RealClock{}}
}

// WaitFor polls sample every spec.PollInterval until a record satisfies
// spec.Predicate or spec.Timeout has elapsed. The first matching record in
// sampler order wins. Timing out is a normal Result, not an error; an error
// is returned only when the wait is aborted, either by a non-tool sampler
// error or by a tool error under FailFast.
//
// The timeout is a lower bound: the loop may overshoot by one poll interval
// plus one sampler call.
func (w *Waiter) WaitFor(spec Spec, sample SampleFunc) (Result, error) {
	if spec.Predicate == nil {
		return Result{}, fmt.Errorf("wait spec has no predicate")
	}
	if spec.PollInterval <= 0 {
		return Result{}, fmt.Errorf("wait spec poll interval must be positive, got %v", spec.PollInterval)
	}

	start := w.Clock.Now()
	res := Result{}
	for {
		res.Attempts++
		records, err := sample()
		if err != nil {
			if !status.IsExternalToolError(err) || spec.ErrorPolicy == FailFast {
				return Result{}, fmt.Errorf("failed to sample status on attempt %d: %w", res.Attempts, err)
			}
			logging.Debug("Resource not available yet (attempt %d): %v", res.Attempts, err)
			res.LastErr = err
		} else {
			for _, r := range records {
				if spec.Predicate(r) {
					res.Outcome = Success
					res.Record = r
					res.Elapsed = w.Clock.Since(start)
					return res, nil
				}
			}
			logging.Debug("No matching record among %d (attempt %d)", len(records), res.Attempts)
		}

		res.Elapsed = w.Clock.Since(start)
		if res.Elapsed >= spec.Timeout {
			res.Outcome = TimedOut
			return res, nil
		}
		w.Clock.Sleep(spec.PollInterval)
	}
}

// Query adapts a Sampler and filter to a SampleFunc.
func Query(s status.Sampler, filter string) SampleFunc {
	return func() ([]status.Record, error) {
		return s.Query(filter)
	}
}
