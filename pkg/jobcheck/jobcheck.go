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

// Package jobcheck submits a validation job, waits for its pod to run,
// collects the pod's logs and deletes the job again.
package jobcheck

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"kfcheck/pkg/logging"
	"kfcheck/pkg/manifest"
	"kfcheck/pkg/orchestrator"
	"kfcheck/pkg/status"
	"kfcheck/pkg/waiter"
)

// RunningState is matched as a substring of the pod state.
const RunningState = "Running"

// ErrPodNotRunning is returned when no job pod reached RunningState in time.
var ErrPodNotRunning = errors.New("the pod associated with the job is not running within the timeout")

// Result describes a completed job check.
type Result struct {
	PodFilter string
	Wait      waiter.Result
	// LogPath is empty when no logs were collected.
	LogPath string
}

// Runner wires the pieces of a job check together.
type Runner struct {
	Orchestrator orchestrator.Orchestrator
	// Sampler must list pods of the job's namespace.
	Sampler status.Sampler
	Waiter  *waiter.Waiter
	Fs      afero.Fs
}

// NewRunner returns a Runner on the real clock and filesystem.
func NewRunner(orch orchestrator.Orchestrator, sampler status.Sampler) *Runner {
	return &Runner{
		Orchestrator: orch,
		Sampler:      sampler,
		Waiter:       waiter.New(),
		Fs:           afero.NewOsFs(),
	}
}

// Run submits job, waits for a running pod, saves its logs and tears the job
// down. Teardown is attempted whenever submission succeeded, and a teardown
// failure is reported alongside any earlier failure.
func (r *Runner) Run(job orchestrator.JobDefinition) (res Result, err error) {
	podFilter, err := r.podFilter(job)
	if err != nil {
		return res, err
	}
	res.PodFilter = podFilter

	exists, err := r.Orchestrator.NamespaceExists(job.Namespace)
	if err != nil {
		return res, fmt.Errorf("failed to check namespace %s: %w", job.Namespace, err)
	}
	if !exists {
		return res, fmt.Errorf("namespace %s does not exist", job.Namespace)
	}

	if err := r.Orchestrator.SubmitJob(job); err != nil {
		return res, err
	}
	defer func() {
		if delErr := r.Orchestrator.DeleteJob(job); delErr != nil {
			err = errors.Join(err, delErr)
		}
	}()

	logging.Info("Waiting up to %v for a pod matching %q to be %s...", job.Timeout, podFilter, RunningState)
	res.Wait, err = r.Waiter.WaitFor(waiter.Spec{
		Predicate:    waiter.All(waiter.NameContains(podFilter), waiter.StateContains(RunningState)),
		Timeout:      job.Timeout,
		PollInterval: job.PollInterval,
		ErrorPolicy:  waiter.TolerateToolErrors,
	}, waiter.Query(r.Sampler, podFilter))
	if err != nil {
		return res, err
	}
	if res.Wait.Outcome == waiter.TimedOut {
		if res.Wait.LastErr != nil {
			return res, fmt.Errorf("%w (%v, %d attempts): last error: %v", ErrPodNotRunning, job.Timeout, res.Wait.Attempts, res.Wait.LastErr)
		}
		return res, fmt.Errorf("%w (%v, %d attempts)", ErrPodNotRunning, job.Timeout, res.Wait.Attempts)
	}
	logging.Info("Pod %s associated with the job is in the %s state.", res.Wait.Record.Name, res.Wait.Record.State)

	res.LogPath, err = r.collectLogs(job, res.Wait.Record.Name)
	return res, err
}

func (r *Runner) podFilter(job orchestrator.JobDefinition) (string, error) {
	if job.PodFilter != "" {
		return job.PodFilter, nil
	}
	objects, err := manifest.Read(r.Fs, job.ManifestPath)
	if err != nil {
		return "", err
	}
	name := manifest.WorkloadName(objects)
	if name == "" {
		return "", fmt.Errorf("cannot derive pod filter: manifest %s has no named objects", job.ManifestPath)
	}
	logging.Debug("Using pod filter %q from manifest %s", name, job.ManifestPath)
	return name, nil
}

// LogPath is where the logs of podName are saved.
func LogPath(logDir, podName string) string {
	return filepath.Join(logDir, podName+"_logs.txt")
}

// collectLogs writes the pod's logs to LogPath. A partial file is removed when
// collection fails.
func (r *Runner) collectLogs(job orchestrator.JobDefinition, podName string) (string, error) {
	path := LogPath(job.LogDir, podName)
	f, err := r.Fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create log file %s: %w", path, err)
	}
	if err := r.Orchestrator.CollectLogs(job.Namespace, podName, f); err != nil {
		f.Close()
		if rmErr := r.Fs.Remove(path); rmErr != nil {
			logging.Warn("Failed to remove partial log file %s: %v", path, rmErr)
		}
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write log file %s: %w", path, err)
	}
	logging.Info("Logs collected for pod %s and saved to %s.", podName, path)
	return path, nil
}
