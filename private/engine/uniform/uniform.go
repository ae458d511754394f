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

// Package uniform provides the built-in reference composer. It does not run
// an LP; it spreads each traffic class's flow uniformly across its candidate
// paths. The split is deterministic, honors the worst-case epoch mode by
// construction (fractions are volume-independent), and keeps the full
// composition pipeline runnable and testable without an external solver.
package uniform

import (
	"context"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/pkg/private/serrors"
	"github.com/solproject/sol/private/engine"
	"github.com/solproject/sol/private/optmodel"
	"github.com/solproject/sol/private/topology"
)

// Composer implements engine.Composer with a uniform fraction split.
type Composer struct{}

var _ engine.Composer = Composer{}

// Compose assigns every traffic class of every application an equal flow
// fraction on each of its candidate paths. A traffic class without candidate
// paths receives no routed paths.
func (Composer) Compose(ctx context.Context, apps []optmodel.App,
	topo *topology.Topology, cfg engine.ComposeConfig) (*engine.Solution, error) {

	if err := ctx.Err(); err != nil {
		return nil, serrors.Wrap("composing", err)
	}
	logger := log.FromCtx(ctx)
	sol := &engine.Solution{
		Fractions: make(map[string]map[string][]engine.RoutedPath, len(apps)),
	}
	for _, app := range apps {
		perTC := make(map[string][]engine.RoutedPath)
		for _, entry := range app.PPTC.Entries() {
			if len(entry.Paths) == 0 {
				perTC[entry.TC.ID] = nil
				continue
			}
			fraction := 1.0 / float64(len(entry.Paths))
			routed := make([]engine.RoutedPath, 0, len(entry.Paths))
			for _, p := range entry.Paths {
				routed = append(routed, engine.RoutedPath{
					Nodes:    p,
					Fraction: fraction,
				})
			}
			perTC[entry.TC.ID] = routed
		}
		sol.Fractions[app.Name] = perTC
		logger.Debug("Composed app", "app", app.Name,
			"objective", app.Objective.Kind.String(), "tcs", len(perTC))
	}
	return sol, nil
}
