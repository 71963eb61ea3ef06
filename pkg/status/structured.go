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
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"sigs.k8s.io/yaml"

	"kfcheck/pkg/shell"
)

// JSONSampler lists pods through `kubectl get pods -o json` and avoids the
// positional column contract of TableSampler.
type JSONSampler struct {
	Kubectl    string
	Kubeconfig string
	Namespace  string
	Exec       shell.ExecFunc
}

// NewJSONSampler returns a sampler that runs the given kubectl binary.
func NewJSONSampler(kubectl, kubeconfig, namespace string) *JSONSampler {
	return &JSONSampler{
		Kubectl:    kubectl,
		Kubeconfig: kubeconfig,
		Namespace:  namespace,
		Exec:       shell.ExecuteCommand,
	}
}

// Query runs the listing and decodes the pod list.
func (s *JSONSampler) Query(filter string) ([]Record, error) {
	args := kubeconfigArgs(s.Kubeconfig)
	args = append(args, "get", "pods", "-o", "json")
	if s.Namespace == "" {
		args = append(args, "-A")
	} else {
		args = append(args, "-n", s.Namespace)
	}

	res := s.Exec(s.Kubectl, args...)
	if res.ExitCode != 0 {
		return nil, &ExternalToolError{
			Command:  s.Kubectl + " " + strings.Join(args, " "),
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Stdout:   res.Stdout,
		}
	}

	var list corev1.PodList
	if err := yaml.Unmarshal([]byte(res.Stdout), &list); err != nil {
		return nil, fmt.Errorf("failed to decode pod list: %w", err)
	}
	return recordsFromPods(list.Items, filter), nil
}

// ClientSampler lists pods through the Kubernetes API.
type ClientSampler struct {
	Client    kubernetes.Interface
	Namespace string
}

// NewClientSampler wraps a clientset. An empty namespace lists all namespaces.
func NewClientSampler(client kubernetes.Interface, namespace string) *ClientSampler {
	return &ClientSampler{Client: client, Namespace: namespace}
}

// Query lists pods. API failures are reported as ExternalToolError so waiters
// retry them the same way they retry kubectl failures.
func (s *ClientSampler) Query(filter string) ([]Record, error) {
	list, err := s.Client.CoreV1().Pods(s.Namespace).List(context.Background(), metav1.ListOptions{})
	if err != nil {
		return nil, &ExternalToolError{
			Command:  fmt.Sprintf("list pods in namespace %q", s.Namespace),
			ExitCode: 1,
			Stderr:   err.Error(),
		}
	}
	return recordsFromPods(list.Items, filter), nil
}
