// Copyright 2026 The SOL Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package optmodel

// Scope is the element class a resource is consumed on.
type Scope int

const (
	ScopeLinks Scope = iota
	ScopeNodes
	ScopeMboxes
)

func (s Scope) String() string {
	switch s {
	case ScopeLinks:
		return "links"
	case ScopeNodes:
		return "nodes"
	case ScopeMboxes:
		return "mboxes"
	default:
		return "unknown"
	}
}

// ResourceCost annotates one declared resource with its consumption scope
// and unit cost. CostFunc is a placeholder for future non-linear cost curves
// and is always 0 today.
type ResourceCost struct {
	Scope    Scope
	Cost     float64
	CostFunc int
}

// ResourceDecl is a client-declared resource with a unit cost.
type ResourceDecl struct {
	Resource string
	Cost     float64
}

// TranslateResourceCosts binds each declared resource to a link-scoped cost
// model.
func TranslateResourceCosts(decls []ResourceDecl) map[string]ResourceCost {
	costs := make(map[string]ResourceCost, len(decls))
	for _, d := range decls {
		costs[d.Resource] = ResourceCost{Scope: ScopeLinks, Cost: d.Cost}
	}
	return costs
}
