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

package kubectl

import (
	"fmt"
	"io"
	"strings"

	"kfcheck/pkg/logging"
	"kfcheck/pkg/orchestrator"
	"kfcheck/pkg/shell"
	"kfcheck/pkg/status"
)

// KubectlOrchestrator implements the Orchestrator interface by shelling out to kubectl.
type KubectlOrchestrator struct {
	Binary     string
	Kubeconfig string
	Run        shell.RunFunc
}

var _ orchestrator.Orchestrator = (*KubectlOrchestrator)(nil)

// NewKubectlOrchestrator creates and returns a new KubectlOrchestrator instance.
func NewKubectlOrchestrator(binary, kubeconfig string) *KubectlOrchestrator {
	if binary == "" {
		binary = "kubectl"
	}
	return &KubectlOrchestrator{Binary: binary, Kubeconfig: kubeconfig, Run: shell.Run}
}

func (k *KubectlOrchestrator) command(args ...string) *shell.Command {
	if k.Kubeconfig != "" {
		args = append([]string{"--kubeconfig", k.Kubeconfig}, args...)
	}
	return shell.NewCommand(k.Binary, args...)
}

func (k *KubectlOrchestrator) execute(cmd *shell.Command) error {
	logging.Debug("Executing: %s", cmd.String())
	res := k.Run(cmd)
	if res.ExitCode != 0 {
		return &status.ExternalToolError{
			Command:  cmd.String(),
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Stdout:   res.Stdout,
		}
	}
	return nil
}

// NamespaceExists checks for the namespace with `kubectl get namespace`.
func (k *KubectlOrchestrator) NamespaceExists(namespace string) (bool, error) {
	logging.Info("Checking for namespace %q...", namespace)
	cmd := k.command("get", "namespace", namespace)
	res := k.Run(cmd)
	if res.ExitCode == 0 {
		return true, nil
	}
	if strings.Contains(res.Stderr, "not found") || strings.Contains(res.Stderr, "NotFound") {
		logging.Info("Namespace %q not found.", namespace)
		return false, nil
	}
	return false, &status.ExternalToolError{
		Command:  cmd.String(),
		ExitCode: res.ExitCode,
		Stderr:   res.Stderr,
		Stdout:   res.Stdout,
	}
}

// SubmitJob applies the job manifest.
func (k *KubectlOrchestrator) SubmitJob(job orchestrator.JobDefinition) error {
	logging.Info("Applying manifest %s...", job.ManifestPath)
	if err := k.execute(k.command("apply", "-f", job.ManifestPath)); err != nil {
		return fmt.Errorf("failed to create job from %s: %w", job.ManifestPath, err)
	}
	logging.Info("Job from %s created successfully.", job.ManifestPath)
	return nil
}

// CollectLogs streams `kubectl logs` for the pod into w.
func (k *KubectlOrchestrator) CollectLogs(namespace, podName string, w io.Writer) error {
	cmd := k.command("logs", "-n", namespace, podName)
	cmd.SetOutput(w)
	if err := k.execute(cmd); err != nil {
		return fmt.Errorf("failed to collect logs for pod %s: %w", podName, err)
	}
	return nil
}

// DeleteJob deletes everything the job manifest created.
func (k *KubectlOrchestrator) DeleteJob(job orchestrator.JobDefinition) error {
	logging.Info("Deleting resources from %s...", job.ManifestPath)
	if err := k.execute(k.command("delete", "-f", job.ManifestPath)); err != nil {
		return fmt.Errorf("failed to delete job from %s: %w", job.ManifestPath, err)
	}
	logging.Info("Job and associated pods cleaned up successfully.")
	return nil
}
