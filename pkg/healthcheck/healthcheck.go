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

// Package healthcheck verifies that every pod in a scope is in an allowed state.
package healthcheck

import (
	"errors"
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"kfcheck/pkg/logging"
	"kfcheck/pkg/status"
)

var (
	// ErrUnhealthy is returned when at least one pod is outside the allow-list.
	ErrUnhealthy = errors.New("pods not in an allowed state")
	// ErrNoPods is returned when the scope matched no pods at all.
	ErrNoPods = errors.New("no pods matched filter")
)

// DefaultAllowedStates are the states a healthy platform pod may report.
var DefaultAllowedStates = []string{"Running", "Completed"}

// Report is the outcome of one health check.
type Report struct {
	Filter  string
	Records []status.Record
	// Failing holds every record whose state is not allowed, in sampler order.
	Failing []status.Record

	// failed is parallel to Records; names are not unique across namespaces.
	failed []bool
}

// IsFailing reports whether Records[i] is outside the allow-list.
func (r Report) IsFailing(i int) bool {
	return i >= 0 && i < len(r.failed) && r.failed[i]
}

// Healthy reports whether the scope had pods and none of them failed.
func (r Report) Healthy() bool {
	return len(r.Records) > 0 && len(r.Failing) == 0
}

// Err converts the report to an error listing every offending pod.
func (r Report) Err() error {
	if len(r.Records) == 0 {
		return fmt.Errorf("%w %q", ErrNoPods, r.Filter)
	}
	if len(r.Failing) == 0 {
		return nil
	}
	entries := make([]string, 0, len(r.Failing))
	for _, rec := range r.Failing {
		entries = append(entries, rec.String())
	}
	return fmt.Errorf("%w: %d of %d pods: [%s]", ErrUnhealthy, len(r.Failing), len(r.Records), strings.Join(entries, ", "))
}

// Check classifies records against allowed. Matching is exact.
func Check(filter string, records []status.Record, allowed []string) Report {
	allowedSet := sets.New(allowed...)
	report := Report{Filter: filter, Records: records, failed: make([]bool, len(records))}
	for i, rec := range records {
		if !allowedSet.Has(rec.State) {
			report.Failing = append(report.Failing, rec)
			report.failed[i] = true
		}
	}
	return report
}

// Run queries the sampler once and checks the result. Sampler errors are
// returned as is; a one-shot check does not retry.
func Run(sampler status.Sampler, filter string, allowed []string) (Report, error) {
	if len(allowed) == 0 {
		allowed = DefaultAllowedStates
	}
	logging.Info("Checking pods matching %q are in one of %v...", filter, allowed)
	records, err := sampler.Query(filter)
	if err != nil {
		return Report{Filter: filter}, fmt.Errorf("failed to list pods: %w", err)
	}
	report := Check(filter, records, allowed)
	switch {
	case report.Healthy():
		logging.Info("All %d pods matching %q are in an allowed state.", len(records), filter)
	case len(report.Failing) > 0:
		logging.Warn("Pods not in an allowed state: %v", status.Names(report.Failing))
	}
	return report, nil
}
