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

package path

import (
	"github.com/solproject/sol/pkg/private/serrors"
	"github.com/solproject/sol/private/topology"
)

// ErrUnknownPredicate indicates a predicate name that is not in the registry.
var ErrUnknownPredicate = serrors.New("unknown predicate")

// Predicate is a pure boolean path-acceptance test. Predicates are stateless
// and side-effect free.
type Predicate func(p Path, topo *topology.Topology) bool

// Null accepts every path.
func Null(Path, *topology.Topology) bool {
	return true
}

// HasMbox accepts a path iff at least one of its interior nodes is
// middlebox-capable in the given topology.
func HasMbox(p Path, topo *topology.Topology) bool {
	for _, n := range p.Interior() {
		if topo.HasMbox(n) {
			return true
		}
	}
	return false
}

var predicates = map[string]Predicate{
	"null":                    Null,
	"null_predicate":          Null,
	"has_mbox":                HasMbox,
	"has_mbox_predicate":      HasMbox,
	"has_middlebox":           HasMbox,
	"has_middlebox_predicate": HasMbox,
}

// ResolvePredicate looks up a predicate by its registered name.
func ResolvePredicate(name string) (Predicate, error) {
	p, ok := predicates[name]
	if !ok {
		return nil, serrors.JoinNoStack(ErrUnknownPredicate, nil, "name", name)
	}
	return p, nil
}
