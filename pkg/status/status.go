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

// Package status samples pod name/state pairs from the cluster.
package status

import (
	"errors"
	"fmt"
	"strings"
)

// Record is a single pod observed in one query. Records carry no identity
// beyond the snapshot that produced them.
type Record struct {
	Name  string
	State string
}

func (r Record) String() string {
	return fmt.Sprintf("%s (%s)", r.Name, r.State)
}

// Sampler lists the records whose listing line contains filter.
type Sampler interface {
	Query(filter string) ([]Record, error)
}

// SamplerFunc adapts a plain function to Sampler.
type SamplerFunc func(filter string) ([]Record, error)

// Query calls f(filter).
func (f SamplerFunc) Query(filter string) ([]Record, error) {
	return f(filter)
}

// ExternalToolError reports a non-zero exit from the cluster tool, carrying
// the captured output verbatim.
type ExternalToolError struct {
	Command  string
	ExitCode int
	Stderr   string
	Stdout   string
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("%s failed with exit code %d: %s", e.Command, e.ExitCode, strings.TrimSpace(e.Stderr))
	if out := strings.TrimSpace(e.Stdout); out != "" {
		msg += "\n" + out
	}
	return msg
}

// IsExternalToolError reports whether err wraps an *ExternalToolError.
func IsExternalToolError(err error) bool {
	var toolErr *ExternalToolError
	return errors.As(err, &toolErr)
}

// Names returns the record names in order.
func Names(records []Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names
}
