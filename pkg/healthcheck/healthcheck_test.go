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

package healthcheck

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"kfcheck/pkg/status"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name        string
		records     []status.Record
		wantFailing []string
		wantHealthy bool
	}{
		{
			name:        "one failing pod",
			records:     status.ParseTable("ns pod-a 1/1 Running 0 2d\nns pod-b 0/1 Error 3 1h", "", status.AllNamespacesLayout),
			wantFailing: []string{"pod-b"},
			wantHealthy: false,
		},
		{
			name: "running and completed allowed",
			records: []status.Record{
				{Name: "ml-pipeline", State: "Running"},
				{Name: "katib-init", State: "Completed"},
			},
			wantFailing: []string{},
			wantHealthy: true,
		},
		{
			name: "all failing pods reported",
			records: []status.Record{
				{Name: "a", State: "CrashLoopBackOff"},
				{Name: "b", State: "Running"},
				{Name: "c", State: "Pending"},
				{Name: "d", State: "running"},
			},
			wantFailing: []string{"a", "c", "d"},
			wantHealthy: false,
		},
		{
			name:        "empty scope",
			records:     nil,
			wantFailing: []string{},
			wantHealthy: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Check("kubeflow", tt.records, DefaultAllowedStates)
			if diff := cmp.Diff(tt.wantFailing, status.Names(report.Failing)); diff != "" {
				t.Errorf("Failing mismatch (-want +got):\n%s", diff)
			}
			if got := report.Healthy(); got != tt.wantHealthy {
				t.Errorf("Healthy() = %v, want %v", got, tt.wantHealthy)
			}
		})
	}
}

func TestIsFailingByPosition(t *testing.T) {
	report := Check("", []status.Record{
		{Name: "ml-pipeline", State: "Running"},
		{Name: "ml-pipeline", State: "Error"},
	}, DefaultAllowedStates)

	for i, want := range []bool{false, true} {
		if got := report.IsFailing(i); got != want {
			t.Errorf("IsFailing(%d) = %v, want %v", i, got, want)
		}
	}
	if report.IsFailing(2) || report.IsFailing(-1) {
		t.Errorf("Expected out-of-range index to report not failing")
	}
}

func TestReportErr(t *testing.T) {
	report := Check("kubeflow", []status.Record{
		{Name: "pod-a", State: "Running"},
		{Name: "pod-b", State: "Error"},
		{Name: "pod-c", State: "Pending"},
	}, DefaultAllowedStates)

	err := report.Err()
	if !errors.Is(err, ErrUnhealthy) {
		t.Fatalf("Expected ErrUnhealthy, got %v", err)
	}
	for _, want := range []string{"pod-b (Error)", "pod-c (Pending)", "2 of 3"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %q in error %q", want, err.Error())
		}
	}

	if err := Check("kubeflow", nil, DefaultAllowedStates).Err(); !errors.Is(err, ErrNoPods) {
		t.Errorf("Expected ErrNoPods for empty scope, got %v", err)
	}
	if err := Check("kubeflow", []status.Record{{Name: "pod-a", State: "Running"}}, DefaultAllowedStates).Err(); err != nil {
		t.Errorf("Expected nil error for healthy report, got %v", err)
	}
}

func TestRun(t *testing.T) {
	var gotFilter string
	sampler := status.SamplerFunc(func(filter string) ([]status.Record, error) {
		gotFilter = filter
		return []status.Record{{Name: "pod-a", State: "Running"}, {Name: "pod-b", State: "Error"}}, nil
	})

	report, err := Run(sampler, "kubeflow", nil)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if gotFilter != "kubeflow" {
		t.Errorf("Expected filter %q, got %q", "kubeflow", gotFilter)
	}
	if diff := cmp.Diff([]string{"pod-b"}, status.Names(report.Failing)); diff != "" {
		t.Errorf("Failing mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSurfacesToolError(t *testing.T) {
	toolErr := &status.ExternalToolError{Command: "kubectl get pods -A", ExitCode: 1, Stderr: "Unable to connect to the server"}
	sampler := status.SamplerFunc(func(string) ([]status.Record, error) {
		return nil, toolErr
	})

	_, err := Run(sampler, "kubeflow", []string{"Running"})
	if !errors.Is(err, toolErr) {
		t.Fatalf("Expected tool error to surface, got %v", err)
	}
	if !strings.Contains(err.Error(), "Unable to connect to the server") {
		t.Errorf("Expected captured diagnostic text verbatim, got %q", err.Error())
	}
}
