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

package waiter

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"kfcheck/pkg/status"
)

// Predicate selects records.
type Predicate func(status.Record) bool

// StateContains matches records whose state contains s as a substring.
func StateContains(s string) Predicate {
	return func(r status.Record) bool {
		return strings.Contains(r.State, s)
	}
}

// StateIn matches records whose state equals one of states.
func StateIn(states ...string) Predicate {
	allowed := sets.New(states...)
	return func(r status.Record) bool {
		return allowed.Has(r.State)
	}
}

// NameContains matches records whose name contains s.
func NameContains(s string) Predicate {
	return func(r status.Record) bool {
		return strings.Contains(r.Name, s)
	}
}

// All matches records accepted by every predicate.
func All(preds ...Predicate) Predicate {
	return func(r status.Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}
