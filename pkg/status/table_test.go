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

package status

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"kfcheck/pkg/shell"
)

func TestParseTable(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		filter string
		layout Layout
		want   []Record
	}{
		{
			name:   "all namespaces layout",
			text:   "kubeflow pod-a 1/1 Running 0 2d\nkubeflow pod-b 0/1 Error 3 1h\n",
			layout: AllNamespacesLayout,
			want:   []Record{{Name: "pod-a", State: "Running"}, {Name: "pod-b", State: "Error"}},
		},
		{
			name:   "short and empty lines dropped",
			text:   "\nkubeflow pod-a 1/1\n   \nkubeflow pod-b 0/1 Pending\n",
			layout: AllNamespacesLayout,
			want:   []Record{{Name: "pod-b", State: "Pending"}},
		},
		{
			name:   "filter keeps matching lines only",
			text:   "kubeflow pod-a 1/1 Running 0 2d\nkube-system coredns-1 1/1 Running 0 9d\n",
			filter: "kubeflow",
			layout: AllNamespacesLayout,
			want:   []Record{{Name: "pod-a", State: "Running"}},
		},
		{
			name:   "namespaced layout",
			text:   "validate-kubeflow-installation-x7k 1/1 Running 0 10s\n",
			filter: "validate-kubeflow-installation",
			layout: NamespacedLayout,
			want:   []Record{{Name: "validate-kubeflow-installation-x7k", State: "Running"}},
		},
		{
			name:   "tabs and repeated spaces split",
			text:   "ns\tpod-c   1/1\t\tCompleted 0 5m",
			layout: AllNamespacesLayout,
			want:   []Record{{Name: "pod-c", State: "Completed"}},
		},
		{
			name:   "nothing matches",
			text:   "kube-system coredns-1 1/1 Running 0 9d\n",
			filter: "kubeflow",
			layout: AllNamespacesLayout,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTable(tt.text, tt.filter, tt.layout)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseTable() mismatch (-want +got):\n%s", diff)
			}
			if lines := len(strings.Split(tt.text, "\n")); len(got) > lines {
				t.Errorf("ParseTable() returned %d records for %d lines", len(got), lines)
			}
		})
	}
}

func TestParseTableDeterministic(t *testing.T) {
	text := "ns pod-a 1/1 Running 0 2d\nns pod-b 0/1 Error 3 1h"
	first := ParseTable(text, "", AllNamespacesLayout)
	second := ParseTable(text, "", AllNamespacesLayout)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ParseTable() not deterministic (-first +second):\n%s", diff)
	}
}

type recordedCall struct {
	name string
	args []string
}

func fakeExec(calls *[]recordedCall, res shell.CommandResult) shell.ExecFunc {
	return func(name string, args ...string) shell.CommandResult {
		*calls = append(*calls, recordedCall{name: name, args: args})
		return res
	}
}

func TestTableSamplerQuery(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		stdout    string
		filter    string
		wantArgs  []string
		want      []Record
	}{
		{
			name:     "all namespaces",
			stdout:   "kubeflow pod-a 1/1 Running 0 2d\ndefault web 1/1 Running 0 2d\n",
			filter:   "kubeflow",
			wantArgs: []string{"--kubeconfig", "/tmp/kc", "get", "pods", "--no-headers", "-A"},
			want:     []Record{{Name: "pod-a", State: "Running"}},
		},
		{
			name:      "single namespace",
			namespace: "kubeflow",
			stdout:    "job-pod-1 0/1 ContainerCreating 0 3s\n",
			filter:    "job-pod",
			wantArgs:  []string{"--kubeconfig", "/tmp/kc", "get", "pods", "--no-headers", "-n", "kubeflow"},
			want:      []Record{{Name: "job-pod-1", State: "ContainerCreating"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			s := NewTableSampler("kubectl", "/tmp/kc", tt.namespace)
			s.Exec = fakeExec(&calls, shell.CommandResult{Stdout: tt.stdout})

			got, err := s.Query(tt.filter)
			if err != nil {
				t.Fatalf("Query() returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Query() mismatch (-want +got):\n%s", diff)
			}
			if len(calls) != 1 {
				t.Fatalf("Expected 1 kubectl call, got %d", len(calls))
			}
			if calls[0].name != "kubectl" {
				t.Errorf("Expected binary %q, got %q", "kubectl", calls[0].name)
			}
			if diff := cmp.Diff(tt.wantArgs, calls[0].args); diff != "" {
				t.Errorf("kubectl args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableSamplerToolError(t *testing.T) {
	var calls []recordedCall
	s := NewTableSampler("kubectl", "", "")
	s.Exec = fakeExec(&calls, shell.CommandResult{ExitCode: 1, Stderr: "The connection to the server localhost:8080 was refused"})

	_, err := s.Query("kubeflow")
	if err == nil {
		t.Fatalf("Expected error, got nil")
	}
	if !IsExternalToolError(err) {
		t.Fatalf("Expected ExternalToolError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "connection to the server localhost:8080 was refused") {
		t.Errorf("Expected captured stderr in error, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "exit code 1") {
		t.Errorf("Expected exit code in error, got %q", err.Error())
	}
}

func TestNames(t *testing.T) {
	got := Names([]Record{{Name: "pod-a", State: "Running"}, {Name: "pod-b", State: "Error"}})
	if diff := cmp.Diff([]string{"pod-a", "pod-b"}, got); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
