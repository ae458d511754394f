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

// Package optmodel translates the client-facing constraint, objective and
// resource-cost vocabulary into the composition engine's internal model.
package optmodel

import (
	"context"

	"github.com/solproject/sol/pkg/log"
)

// ConstraintKind enumerates the constraints understood by the composition
// engine.
type ConstraintKind int

const (
	RouteAll ConstraintKind = iota
	AllocateFlow
	ReqAllLinks
	ReqAllNodes
	ReqSomeLinks
	ReqSomeNodes
	CapLinks
	CapNodes
	FixPaths
	MinDiff
	NodeBudget
)

func (k ConstraintKind) String() string {
	switch k {
	case RouteAll:
		return "route_all"
	case AllocateFlow:
		return "allocate_flow"
	case ReqAllLinks:
		return "req_all_links"
	case ReqAllNodes:
		return "req_all_nodes"
	case ReqSomeLinks:
		return "req_some_links"
	case ReqSomeNodes:
		return "req_some_nodes"
	case CapLinks:
		return "cap_links"
	case CapNodes:
		return "cap_nodes"
	case FixPaths:
		return "fix_path"
	case MinDiff:
		return "mindiff"
	case NodeBudget:
		return "node_budget"
	default:
		return "unknown"
	}
}

// ConstraintSpec is one translated constraint. Args and KWArgs are reserved
// for future parameterized constraints and are always empty today.
type ConstraintSpec struct {
	Kind   ConstraintKind
	Args   []any
	KWArgs map[string]any
}

var constraintTokens = map[string]ConstraintKind{
	"route_all":      RouteAll,
	"req_all_links":  ReqAllLinks,
	"req_all_nodes":  ReqAllNodes,
	"req_some_links": ReqSomeLinks,
	"req_some_nodes": ReqSomeNodes,
	"cap_links":      CapLinks,
	"cap_nodes":      CapNodes,
	"fix_path":       FixPaths,
	"mindiff":        MinDiff,
	"node_budget":    NodeBudget,
}

// TranslateConstraints maps client constraint tokens to constraint specs.
//
// The token "allocate_flow" yields no explicit entry: flow allocation is
// asserted implicitly when the engine initializes an optimization, and
// translating it as well would apply it twice. Unrecognized tokens are logged
// and dropped so that forward-compatible client vocabularies do not fail the
// request.
func TranslateConstraints(ctx context.Context, tokens []string) []ConstraintSpec {
	logger := log.FromCtx(ctx)
	specs := make([]ConstraintSpec, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "allocate_flow" {
			continue
		}
		kind, ok := constraintTokens[tok]
		if !ok {
			logger.Info("Dropping unrecognized constraint token", "token", tok)
			continue
		}
		specs = append(specs, ConstraintSpec{
			Kind:   kind,
			Args:   []any{},
			KWArgs: map[string]any{},
		})
	}
	return specs
}
