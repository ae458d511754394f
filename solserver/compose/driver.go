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

// Package compose drives one composition request through the pipeline:
// per-application predicate filtering, traffic-class assignment,
// constraint/objective translation, engine invocation and result extraction.
package compose

import (
	"context"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/pkg/private/serrors"
	"github.com/solproject/sol/private/engine"
	"github.com/solproject/sol/private/optmodel"
	"github.com/solproject/sol/private/path"
	"github.com/solproject/sol/private/topology"
	"github.com/solproject/sol/private/traffic"
)

// resourceCap is the global per-resource capacity ceiling. Capacities are
// not yet derived from topology properties.
const resourceCap = 1

// AppSpec is the parsed declaration of one application in a compose request.
type AppSpec struct {
	Name              string
	Predicate         string
	TrafficClasses    []traffic.Class
	ObjectiveName     string
	ObjectiveResource string
	ResourceCosts     []optmodel.ResourceDecl
	Constraints       []string
}

// PathResult is one routed path of the response.
type PathResult struct {
	Nodes    []int   `json:"nodes"`
	Fraction float64 `json:"fraction"`
}

// TCResult collects the routed paths of one traffic class. Paths is empty,
// never absent, when no viable path exists for the class.
type TCResult struct {
	TCID  string       `json:"tcid"`
	Paths []PathResult `json:"paths"`
}

// AppResult is the per-application slice of the response.
type AppResult struct {
	App string     `json:"app"`
	TCs []TCResult `json:"tcs"`
}

// Driver assembles translated app models and runs them through the
// composition engine.
type Driver struct {
	Composer engine.Composer
}

// Compose runs the full pipeline for one request. topo is the request's
// normalized topology; table is a private snapshot of the stored path table.
// Each application filters the snapshot under its own predicate, so apps
// with different predicates see independent views.
//
// Predicate and objective translation failures abort the request as client
// errors. Empty filtered pairs and unknown constraint tokens recover locally.
func (d *Driver) Compose(ctx context.Context, topo *topology.Topology,
	table path.Table, specs []AppSpec) ([]AppResult, error) {

	logger := log.FromCtx(ctx)
	apps := make([]optmodel.App, 0, len(specs))
	for _, spec := range specs {
		app, err := d.buildApp(ctx, topo, table, spec)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	cfg := engine.ComposeConfig{
		Caps:      buildCaps(apps),
		EpochMode: engine.EpochWorst,
		Fairness:  engine.FairnessWeighted,
	}
	solution, err := d.Composer.Compose(ctx, apps, topo, cfg)
	if err != nil {
		return nil, serrors.Wrap("composing apps", err)
	}
	results := extractResults(apps, solution)
	logger.Debug("Computed app composition", "apps", len(results))
	return results, nil
}

func (d *Driver) buildApp(ctx context.Context, topo *topology.Topology,
	table path.Table, spec AppSpec) (optmodel.App, error) {

	logger := log.FromCtx(ctx)
	pred, err := path.ResolvePredicate(spec.Predicate)
	if err != nil {
		return optmodel.App{}, serrors.Wrap("resolving predicate", err, "app", spec.Name)
	}
	logger.Debug("Filtering paths", "app", spec.Name, "predicate", spec.Predicate)
	filtered := path.Filter(ctx, table, pred, topo)
	pptc := traffic.Assign(spec.TrafficClasses, filtered, spec.Name)

	objective, err := optmodel.TranslateObjective(spec.ObjectiveName, spec.ObjectiveResource)
	if err != nil {
		return optmodel.App{}, serrors.Wrap("translating objective", err, "app", spec.Name)
	}
	return optmodel.App{
		Name:          spec.Name,
		PPTC:          pptc,
		Constraints:   optmodel.TranslateConstraints(ctx, spec.Constraints),
		Objective:     objective,
		ResourceCosts: optmodel.TranslateResourceCosts(spec.ResourceCosts),
	}, nil
}

// buildCaps builds the global capacity model from the union of all declared
// resource names.
func buildCaps(apps []optmodel.App) engine.NetworkCaps {
	caps := make(engine.NetworkCaps)
	for _, app := range apps {
		for name := range app.ResourceCosts {
			caps[name] = resourceCap
		}
	}
	return caps
}

// extractResults retains, per app and traffic class, only the paths that
// carry a non-zero flow fraction.
func extractResults(apps []optmodel.App, solution *engine.Solution) []AppResult {
	results := make([]AppResult, 0, len(apps))
	for _, app := range apps {
		appResult := AppResult{App: app.Name, TCs: []TCResult{}}
		for _, entry := range app.PPTC.Entries() {
			tcResult := TCResult{TCID: entry.TC.ID, Paths: []PathResult{}}
			for _, routed := range solution.Paths(app.Name, entry.TC.ID) {
				if routed.Fraction == 0 {
					continue
				}
				tcResult.Paths = append(tcResult.Paths, PathResult{
					Nodes:    routed.Nodes,
					Fraction: routed.Fraction,
				})
			}
			appResult.TCs = append(appResult.TCs, tcResult)
		}
		results = append(results, appResult)
	}
	return results
}
