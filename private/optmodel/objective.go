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

import (
	"github.com/solproject/sol/pkg/private/serrors"
)

// ErrUnknownObjective indicates an objective name outside the fixed
// vocabulary. Unlike constraint tokens, an unknown objective fails the
// affected application's model construction: solving with an undefined
// objective would silently produce meaningless results.
var ErrUnknownObjective = serrors.New("unknown objective")

// ObjectiveKind enumerates the optimization objectives understood by the
// composition engine.
type ObjectiveKind int

const (
	MinLinkLoad ObjectiveKind = iota
	MinNodeLoad
	MinLatency
	MaxFlow
	MinEnabledNodes
)

func (k ObjectiveKind) String() string {
	switch k {
	case MinLinkLoad:
		return "minlinkload"
	case MinNodeLoad:
		return "minnodeload"
	case MinLatency:
		return "minlatency"
	case MaxFlow:
		return "maxflow"
	case MinEnabledNodes:
		return "minenablednodes"
	default:
		return "unknown"
	}
}

// ObjectiveSpec is the translated objective of one application. Resource is
// empty unless the client refined a resource-scoped objective with a resource
// name. Args and KWArgs are reserved for future parameterization.
type ObjectiveSpec struct {
	Kind     ObjectiveKind
	Resource string
	Args     []any
	KWArgs   map[string]any
}

var objectiveNames = map[string]ObjectiveKind{
	"minlinkload":     MinLinkLoad,
	"minnodeload":     MinNodeLoad,
	"minlatency":      MinLatency,
	"maxflow":         MaxFlow,
	"minenablednodes": MinEnabledNodes,
}

// TranslateObjective maps a client objective name, plus an optional resource
// refinement, to an objective spec.
func TranslateObjective(name, resource string) (ObjectiveSpec, error) {
	kind, ok := objectiveNames[name]
	if !ok {
		return ObjectiveSpec{}, serrors.JoinNoStack(ErrUnknownObjective, nil, "name", name)
	}
	return ObjectiveSpec{
		Kind:     kind,
		Resource: resource,
		Args:     []any{},
		KWArgs:   map[string]any{},
	}, nil
}
