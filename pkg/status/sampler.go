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

package status

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

// Sampler kinds accepted by NewSampler.
const (
	KindTable  = "table"
	KindJSON   = "json"
	KindClient = "client"
)

// Options selects and configures a sampler.
type Options struct {
	Kind       string
	Kubectl    string
	Kubeconfig string
	Namespace  string
}

// NewSampler builds the sampler named by opts.Kind.
func NewSampler(opts Options) (Sampler, error) {
	switch opts.Kind {
	case "", KindTable:
		return NewTableSampler(opts.Kubectl, opts.Kubeconfig, opts.Namespace), nil
	case KindJSON:
		return NewJSONSampler(opts.Kubectl, opts.Kubeconfig, opts.Namespace), nil
	case KindClient:
		loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
		if opts.Kubeconfig != "" {
			loadingRules.ExplicitPath = opts.Kubeconfig
		}
		restConfig, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{}).ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
		}
		client, err := kubernetes.NewForConfig(restConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kubernetes client: %w", err)
		}
		return NewClientSampler(client, opts.Namespace), nil
	default:
		return nil, fmt.Errorf("unknown sampler kind %q, expected one of %q, %q, %q", opts.Kind, KindTable, KindJSON, KindClient)
	}
}
