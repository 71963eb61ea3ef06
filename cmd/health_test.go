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
	"bytes"
	"testing"

	"kfcheck/pkg/healthcheck"
	"kfcheck/pkg/status"

	"github.com/fatih/color"
	"github.com/spf13/afero"
)

func TestPrintReport(t *testing.T) {
	color.NoColor = true
	report := healthcheck.Check("kubeflow", []status.Record{
		{Name: "pod-a", State: "Running"},
		{Name: "pod-b", State: "Error"},
	}, healthcheck.DefaultAllowedStates)

	var buf bytes.Buffer
	printReport(&buf, report)

	want := "OK   pod-a (Running)\nFAIL pod-b (Error)\n"
	if buf.String() != want {
		t.Errorf("Expected report %q, got %q", want, buf.String())
	}
}

func TestPrintReportSameNameAcrossNamespaces(t *testing.T) {
	color.NoColor = true
	records := status.ParseTable("kubeflow ml-pipeline 1/1 Running 0 1d\nkubeflow-user ml-pipeline 0/1 Error 2 1h", "", status.AllNamespacesLayout)
	report := healthcheck.Check("", records, healthcheck.DefaultAllowedStates)

	var buf bytes.Buffer
	printReport(&buf, report)

	want := "OK   ml-pipeline (Running)\nFAIL ml-pipeline (Error)\n"
	if buf.String() != want {
		t.Errorf("Expected report %q, got %q", want, buf.String())
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	origFs := appFs
	defer func() { appFs = origFs }()
	appFs = afero.NewMemMapFs()
	if err := afero.WriteFile(appFs, "/kfcheck.yaml", []byte("kubectl: /opt/bin/kubectl\nsampler: json\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := rootCmd.ParseFlags([]string{"--config", "/kfcheck.yaml", "--sampler", "client"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	defer func() { configPath, samplerKind = "", "" }()

	loadConfig(rootCmd, nil)
	if cfg.Kubectl != "/opt/bin/kubectl" {
		t.Errorf("Expected kubectl from config file, got %q", cfg.Kubectl)
	}
	if cfg.Sampler != "client" {
		t.Errorf("Expected sampler flag to override config, got %q", cfg.Sampler)
	}
}
