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

	"kfcheck/pkg/shell"
)

// Layout locates the name and state columns in a listing line.
type Layout struct {
	MinFields  int
	NameIndex  int
	StateIndex int
}

var (
	// AllNamespacesLayout matches `kubectl get pods -A`:
	// NAMESPACE NAME READY STATUS RESTARTS AGE.
	AllNamespacesLayout = Layout{MinFields: 4, NameIndex: 1, StateIndex: 3}
	// NamespacedLayout matches `kubectl get pods -n <ns>`:
	// NAME READY STATUS RESTARTS AGE.
	NamespacedLayout = Layout{MinFields: 3, NameIndex: 0, StateIndex: 2}
)

// ParseTable turns listing text into records. Empty lines, lines that do not
// contain filter, and lines with fewer than layout.MinFields fields are
// dropped. An empty filter keeps every line.
func ParseTable(text, filter string, layout Layout) []Record {
	var records []Record
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if filter != "" && !strings.Contains(line, filter) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < layout.MinFields {
			continue
		}
		records = append(records, Record{
			Name:  fields[layout.NameIndex],
			State: fields[layout.StateIndex],
		})
	}
	return records
}

// TableSampler lists pods through kubectl's default text output.
type TableSampler struct {
	Kubectl    string
	Kubeconfig string
	// Namespace limits the listing to one namespace; empty lists all of them.
	Namespace string
	Exec      shell.ExecFunc
}

// NewTableSampler returns a sampler that runs the given kubectl binary.
func NewTableSampler(kubectl, kubeconfig, namespace string) *TableSampler {
	return &TableSampler{
		Kubectl:    kubectl,
		Kubeconfig: kubeconfig,
		Namespace:  namespace,
		Exec:       shell.ExecuteCommand,
	}
}

// Query runs the listing and parses it.
func (s *TableSampler) Query(filter string) ([]Record, error) {
	args, layout := s.listArgs()
	res := s.Exec(s.Kubectl, args...)
	if res.ExitCode != 0 {
		return nil, &ExternalToolError{
			Command:  s.Kubectl + " " + strings.Join(args, " "),
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Stdout:   res.Stdout,
		}
	}
	return ParseTable(res.Stdout, filter, layout), nil
}

func (s *TableSampler) listArgs() ([]string, Layout) {
	args := kubeconfigArgs(s.Kubeconfig)
	args = append(args, "get", "pods", "--no-headers")
	if s.Namespace == "" {
		return append(args, "-A"), AllNamespacesLayout
	}
	return append(args, "-n", s.Namespace), NamespacedLayout
}

func kubeconfigArgs(kubeconfig string) []string {
	if kubeconfig == "" {
		return nil
	}
	return []string{"--kubeconfig", kubeconfig}
}
