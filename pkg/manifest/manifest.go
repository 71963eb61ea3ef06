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

// Package manifest reads the identifying fields of a declarative definition.
package manifest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// Object identifies one document of a manifest.
type Object struct {
	APIVersion string
	Kind       string
	Name       string
	Namespace  string
}

type document struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
	Metadata   struct {
		Name         string `yaml:"name"`
		GenerateName string `yaml:"generateName"`
		Namespace    string `yaml:"namespace"`
	} `yaml:"metadata"`
}

// Parse decodes every non-empty document in a multi-document manifest.
func Parse(content []byte) ([]Object, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	var objects []Object
	for {
		var doc document
		if err := decoder.Decode(&doc); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to decode YAML document: %w", err)
		}
		if doc.Kind == "" && doc.APIVersion == "" {
			continue
		}
		name := doc.Metadata.Name
		if name == "" {
			name = doc.Metadata.GenerateName
		}
		objects = append(objects, Object{
			APIVersion: doc.APIVersion,
			Kind:       doc.Kind,
			Name:       name,
			Namespace:  doc.Metadata.Namespace,
		})
	}
	return objects, nil
}

// Read parses the manifest at path.
func Read(fs afero.Fs, path string) ([]Object, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	objects, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if len(objects) == 0 {
		return nil, fmt.Errorf("manifest %s contains no objects", path)
	}
	return objects, nil
}

// WorkloadName picks the name pods created from the manifest are prefixed
// with: the first Job-like object, else the first object.
func WorkloadName(objects []Object) string {
	for _, o := range objects {
		switch o.Kind {
		case "Job", "JobSet", "PyTorchJob", "TFJob", "MPIJob", "TrainJob":
			return o.Name
		}
	}
	if len(objects) > 0 {
		return objects[0].Name
	}
	return ""
}
