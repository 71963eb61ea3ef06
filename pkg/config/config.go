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

// Package config loads kfcheck settings from a YAML file.
package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"kfcheck/pkg/orchestrator"
	"kfcheck/pkg/status"
)

// Config is the full set of kfcheck settings.
type Config struct {
	Kubectl    string `yaml:"kubectl"`
	Kubeconfig string `yaml:"kubeconfig,omitempty"`
	// Sampler is one of "table", "json" or "client".
	Sampler string      `yaml:"sampler"`
	Health  HealthCheck `yaml:"health"`
	Job     JobCheck    `yaml:"job"`
}

// HealthCheck configures the bulk pod health check.
type HealthCheck struct {
	Filter        string   `yaml:"filter"`
	AllowedStates []string `yaml:"allowedStates"`
}

// JobCheck configures the submit-wait-collect-cleanup check.
type JobCheck struct {
	Manifest     string        `yaml:"manifest"`
	Namespace    string        `yaml:"namespace"`
	PodFilter    string        `yaml:"podFilter,omitempty"`
	LogDir       string        `yaml:"logDir"`
	Timeout      time.Duration `yaml:"timeout"`
	PollInterval time.Duration `yaml:"pollInterval"`
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		Kubectl: "kubectl",
		Sampler: status.KindTable,
		Health: HealthCheck{
			Filter:        "kubeflow",
			AllowedStates: []string{"Running", "Completed"},
		},
		Job: JobCheck{
			Manifest:     "/home/mystic/validate-kubeflow-job.yaml",
			Namespace:    "kubeflow",
			LogDir:       "/home/mystic",
			Timeout:      120 * time.Second,
			PollInterval: 5 * time.Second,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Only the global settings are validated here; each check validates its own
// section with ValidateHealth or ValidateJob.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	if err := cfg.validateGlobal(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %s", path)
	}
	return cfg, nil
}

// Validate checks the settings for values no check can run with.
func (c Config) Validate() error {
	if err := c.ValidateHealth(); err != nil {
		return err
	}
	return c.ValidateJob()
}

func (c Config) validateGlobal() error {
	if c.Kubectl == "" {
		return errors.New("kubectl binary must not be empty")
	}
	switch c.Sampler {
	case status.KindTable, status.KindJSON, status.KindClient:
	default:
		return errors.Errorf("unknown sampler %q, expected one of %q, %q, %q", c.Sampler, status.KindTable, status.KindJSON, status.KindClient)
	}
	return nil
}

// ValidateHealth checks only the settings the health check reads.
func (c Config) ValidateHealth() error {
	if err := c.validateGlobal(); err != nil {
		return err
	}
	if len(c.Health.AllowedStates) == 0 {
		return errors.New("health.allowedStates must list at least one state")
	}
	return nil
}

// ValidateJob checks only the settings the job check reads.
func (c Config) ValidateJob() error {
	if err := c.validateGlobal(); err != nil {
		return err
	}
	if c.Job.Manifest == "" {
		return errors.New("job.manifest must not be empty")
	}
	if c.Job.Namespace == "" {
		return errors.New("job.namespace must not be empty")
	}
	if c.Job.Timeout <= 0 {
		return errors.Errorf("job.timeout must be positive, got %v", c.Job.Timeout)
	}
	if c.Job.PollInterval <= 0 {
		return errors.Errorf("job.pollInterval must be positive, got %v", c.Job.PollInterval)
	}
	return nil
}

// SamplerOptions returns the sampler settings for namespace.
func (c Config) SamplerOptions(namespace string) status.Options {
	return status.Options{
		Kind:       c.Sampler,
		Kubectl:    c.Kubectl,
		Kubeconfig: c.Kubeconfig,
		Namespace:  namespace,
	}
}

// JobDefinition converts the job settings.
func (c Config) JobDefinition() orchestrator.JobDefinition {
	return orchestrator.JobDefinition{
		ManifestPath: c.Job.Manifest,
		Namespace:    c.Job.Namespace,
		PodFilter:    c.Job.PodFilter,
		LogDir:       c.Job.LogDir,
		Timeout:      c.Job.Timeout,
		PollInterval: c.Job.PollInterval,
	}
}
