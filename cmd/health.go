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
	"fmt"
	"io"

	"kfcheck/pkg/healthcheck"
	"kfcheck/pkg/logging"
	"kfcheck/pkg/status"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	healthFilter  string
	allowedStates []string
)

func init() {
	rootCmd.AddCommand(healthCmd)

	healthCmd.Flags().StringVar(&healthFilter, "filter", "", "Substring selecting pod listing lines (namespace or name fragment). Defaults to the config value.")
	healthCmd.Flags().StringSliceVar(&allowedStates, "allowed-state", nil, "Pod state counted as healthy. Repeatable. Defaults to Running and Completed.")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Checks that every matching pod is Running or Completed.",
	Long: `The 'health' command lists pods across all namespaces, keeps those whose
listing line contains the filter, and fails if any of them is in a state
outside the allow-list. Every offending pod is reported.`,
	Run:          runHealthCmd,
	SilenceUsage: true,
}

func runHealthCmd(cmd *cobra.Command, args []string) {
	if cmd.Flags().Changed("filter") {
		cfg.Health.Filter = healthFilter
	}
	if cmd.Flags().Changed("allowed-state") {
		cfg.Health.AllowedStates = allowedStates
	}
	if err := cfg.ValidateHealth(); err != nil {
		logging.Fatal("Invalid configuration: %v", err)
	}

	sampler, err := status.NewSampler(cfg.SamplerOptions(""))
	if err != nil {
		logging.Fatal("Failed to create status sampler: %v", err)
	}

	report, err := healthcheck.Run(sampler, cfg.Health.Filter, cfg.Health.AllowedStates)
	if err != nil {
		logging.Fatal("Failed to execute kubectl command: %v", err)
	}
	printReport(cmd.OutOrStdout(), report)
	if err := report.Err(); err != nil {
		logging.Fatal("Some pods matching %q are not in an allowed state: %v", cfg.Health.Filter, err)
	}
}

func printReport(w io.Writer, report healthcheck.Report) {
	for i, r := range report.Records {
		if report.IsFailing(i) {
			fmt.Fprintf(w, "%s %s\n", color.RedString("FAIL"), r)
		} else {
			fmt.Fprintf(w, "%s %s\n", color.GreenString("OK  "), r)
		}
	}
}
