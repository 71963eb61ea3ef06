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

package orchestrator

import (
	"io"
	"time"
)

// JobDefinition holds all the parameters of one validation job run.
type JobDefinition struct {
	// ManifestPath is the declarative definition submitted and later deleted.
	ManifestPath string
	// Namespace the job's pods run in.
	Namespace string
	// PodFilter is the name fragment identifying the job's pods.
	PodFilter    string
	LogDir       string
	Timeout      time.Duration
	PollInterval time.Duration
}

// Orchestrator defines the interface for submitting and managing jobs on a cluster.
type Orchestrator interface {
	// NamespaceExists reports whether the namespace is present.
	NamespaceExists(namespace string) (bool, error)
	// SubmitJob creates the resources in job.ManifestPath.
	SubmitJob(job JobDefinition) error
	// CollectLogs writes the pod's logs to w.
	CollectLogs(namespace, podName string, w io.Writer) error
	// DeleteJob removes the resources in job.ManifestPath.
	DeleteJob(job JobDefinition) error
}
