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

package cmd

import (
	"time"

	"kfcheck/pkg/jobcheck"
	"kfcheck/pkg/logging"
	"kfcheck/pkg/orchestrator/kubectl"
	"kfcheck/pkg/status"

	"github.com/spf13/cobra"
)

var (
	manifestPath string
	jobNamespace string
	podFilter    string
	logDir       string
	timeout      time.Duration
	pollInterval time.Duration
)

func init() {
	rootCmd.AddCommand(jobCmd)

	jobCmd.Flags().StringVarP(&manifestPath, "manifest", "f", "", "Path to the job manifest to apply and later delete.")
	jobCmd.Flags().StringVarP(&jobNamespace, "namespace", "n", "", "Namespace the job's pods run in.")
	jobCmd.Flags().StringVar(&podFilter, "pod-filter", "", "Name fragment of the job's pods. If empty, the job name from the manifest is used.")
	jobCmd.Flags().StringVar(&logDir, "log-dir", "", "Directory the pod logs are written to.")
	jobCmd.Flags().DurationVar(&timeout, "timeout", 0, "How long to wait for the pod to be Running (e.g. 120s).")
	jobCmd.Flags().DurationVar(&pollInterval, "poll-interval", 0, "How often to poll the pod status (e.g. 5s).")
}

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Submits a validation job and waits for its pod to run.",
	Long: `The 'job' command applies the job manifest, polls until a pod whose name
contains the pod filter reports a Running state, saves that pod's logs to
<log-dir>/<pod>_logs.txt and finally deletes everything the manifest created.
Deletion is attempted even when waiting or log collection fails.`,
	Run:          runJobCmd,
	SilenceUsage: true,
}

func runJobCmd(cmd *cobra.Command, args []string) {
	logging.Info("Executing kfcheck job command...")

	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.Job.Manifest = manifestPath
	}
	if flags.Changed("namespace") {
		cfg.Job.Namespace = jobNamespace
	}
	if flags.Changed("pod-filter") {
		cfg.Job.PodFilter = podFilter
	}
	if flags.Changed("log-dir") {
		cfg.Job.LogDir = logDir
	}
	if flags.Changed("timeout") {
		cfg.Job.Timeout = timeout
	}
	if flags.Changed("poll-interval") {
		cfg.Job.PollInterval = pollInterval
	}
	if err := cfg.ValidateJob(); err != nil {
		logging.Fatal("Invalid configuration: %v", err)
	}

	sampler, err := status.NewSampler(cfg.SamplerOptions(cfg.Job.Namespace))
	if err != nil {
		logging.Fatal("Failed to create status sampler: %v", err)
	}
	runner := jobcheck.NewRunner(kubectl.NewKubectlOrchestrator(cfg.Kubectl, cfg.Kubeconfig), sampler)
	runner.Fs = appFs

	res, err := runner.Run(cfg.JobDefinition())
	if err != nil {
		logging.Fatal("kfcheck job failed: %v", err)
	}
	logging.Info("Job check passed: pod %s reached %s after %v; logs at %s.",
		res.Wait.Record.Name, res.Wait.Record.State, res.Wait.Elapsed, res.LogPath)
}
