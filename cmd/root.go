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

// Package cmd defines the kfcheck command line.
package cmd

import (
	"os"

	"kfcheck/pkg/config"
	"kfcheck/pkg/logging"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	verbose     bool
	kubectlPath string
	kubeconfig  string
	samplerKind string

	// cfg is loaded before any subcommand runs.
	cfg config.Config

	appFs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "kfcheck",
	Short: "Validates a Kubeflow installation through kubectl.",
	Long: `kfcheck verifies that every pod of a Kubeflow installation is healthy and
that a validation job can be submitted, reaches the Running state, produces
logs and can be cleaned up again.`,
	PersistentPreRun: loadConfig,
	SilenceUsage:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a kfcheck YAML config file.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	rootCmd.PersistentFlags().StringVar(&kubectlPath, "kubectl", "", "Path to the kubectl binary (default from config, else \"kubectl\").")
	rootCmd.PersistentFlags().StringVar(&kubeconfig, "kubeconfig", "", "Path to the kubeconfig file used by kubectl.")
	rootCmd.PersistentFlags().StringVar(&samplerKind, "sampler", "", "How pod status is read: table, json or client.")
}

func loadConfig(cmd *cobra.Command, args []string) {
	logging.SetVerbose(verbose)

	var err error
	cfg, err = config.Load(appFs, configPath)
	if err != nil {
		logging.Fatal("Failed to load config: %v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("kubectl") {
		cfg.Kubectl = kubectlPath
	}
	if flags.Changed("kubeconfig") {
		cfg.Kubeconfig = kubeconfig
	}
	if flags.Changed("sampler") {
		cfg.Sampler = samplerKind
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
