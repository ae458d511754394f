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

// Package engine defines the narrow interfaces to the path-enumeration and
// composition/solve collaborators. The core pipeline only depends on these
// interfaces; the built-in reference implementations live in the kspath and
// uniform subpackages.
package engine

import (
	"context"

	"github.com/solproject/sol/private/optmodel"
	"github.com/solproject/sol/private/path"
	"github.com/solproject/sol/private/topology"
)

// EpochMode selects how per-epoch volume samples are composed into a single
// optimization.
type EpochMode int

const (
	// EpochWorst composes the worst-case epoch of every traffic class.
	EpochWorst EpochMode = iota
	// EpochAverage composes the mean over all epochs.
	EpochAverage
)

// Fairness selects the inter-application fairness mode of the composition.
type Fairness int

const (
	// FairnessWeighted applies proportional weights across applications.
	FairnessWeighted Fairness = iota
	// FairnessMaxMin applies max-min fairness across applications.
	FairnessMaxMin
)

// NetworkCaps is the global capacity model: one cap per declared resource
// name.
type NetworkCaps map[string]float64

// ComposeConfig carries the knobs of one composition run.
type ComposeConfig struct {
	Caps      NetworkCaps
	EpochMode EpochMode
	Fairness  Fairness
	// Weights are optional per-application fairness weights. Nil means equal
	// weights.
	Weights map[string]float64
}

// RoutedPath is one path of a solution together with the flow fraction
// assigned to it.
type RoutedPath struct {
	Nodes    path.Path
	Fraction float64
}

// Solution is the solved composition: the flow fractions per application and
// traffic class, in the iteration order of each application's PPTC.
type Solution struct {
	// Fractions maps application name and traffic class id to routed paths.
	Fractions map[string]map[string][]RoutedPath
}

// Paths returns the routed paths of the given application and traffic class.
func (s *Solution) Paths(app, tcID string) []RoutedPath {
	return s.Fractions[app][tcID]
}

// Enumerator generates candidate paths between an ingress-egress pair. It is
// a synchronous, potentially long-running black box; the context is the only
// cancellation mechanism.
type Enumerator interface {
	// Paths returns up to k paths from ingress to egress that satisfy pred,
	// each with at most maxHops hops.
	Paths(ctx context.Context, ingress, egress int, topo *topology.Topology,
		pred path.Predicate, k, maxHops int) ([]path.Path, error)
}

// Composer solves the composed multi-application optimization. It is a
// synchronous, potentially long-running black box; the context is the only
// cancellation mechanism.
type Composer interface {
	Compose(ctx context.Context, apps []optmodel.App, topo *topology.Topology,
		cfg ComposeConfig) (*Solution, error)
}
