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

package mgmtapi

import (
	"encoding/json"

	"github.com/solproject/sol/pkg/private/serrors"
	"github.com/solproject/sol/private/optmodel"
	"github.com/solproject/sol/private/traffic"
	"github.com/solproject/sol/solserver/compose"
)

// composeRequest is the wire shape of a compose request. Required fields are
// pointers so their absence is diagnosable.
type composeRequest struct {
	Topology json.RawMessage `json:"topology"`
	Apps     *[]appJSON      `json:"apps"`
}

type appJSON struct {
	ID             *string            `json:"id"`
	Predicate      *string            `json:"predicate"`
	TrafficClasses *[]tcJSON          `json:"traffic_classes"`
	Objective      *objectiveJSON     `json:"objective"`
	ResourceCosts  []resourceCostJSON `json:"resource_costs"`
	Constraints    []string           `json:"constraints"`
}

type tcJSON struct {
	TCID     *flexString `json:"tcid"`
	Src      *int        `json:"src"`
	Dst      *int        `json:"dst"`
	VolFlows *volumes    `json:"vol_flows"`
}

type objectiveJSON struct {
	Name     *string `json:"name"`
	Resource string  `json:"resource"`
}

type resourceCostJSON struct {
	Resource *string  `json:"resource"`
	Cost     *float64 `json:"cost"`
}

func missingField(field string) error {
	return serrors.JoinNoStack(ErrMalformedRequest, nil, "missing", field)
}

// validate checks all required fields and converts the request to app specs.
// It runs before any state mutation, so a malformed request never leaves a
// partial effect.
func (r composeRequest) validate() ([]compose.AppSpec, json.RawMessage, error) {
	if r.Topology == nil {
		return nil, nil, missingField("topology")
	}
	if r.Apps == nil {
		return nil, nil, missingField("apps")
	}
	specs := make([]compose.AppSpec, 0, len(*r.Apps))
	for _, aj := range *r.Apps {
		spec, err := aj.validate()
		if err != nil {
			return nil, nil, err
		}
		specs = append(specs, spec)
	}
	return specs, r.Topology, nil
}

func (aj appJSON) validate() (compose.AppSpec, error) {
	switch {
	case aj.ID == nil:
		return compose.AppSpec{}, missingField("id")
	case aj.Predicate == nil:
		return compose.AppSpec{}, missingField("predicate")
	case aj.TrafficClasses == nil:
		return compose.AppSpec{}, missingField("traffic_classes")
	case aj.Objective == nil:
		return compose.AppSpec{}, missingField("objective")
	case aj.Objective.Name == nil:
		return compose.AppSpec{}, missingField("objective.name")
	}
	tcs := make([]traffic.Class, 0, len(*aj.TrafficClasses))
	for _, tcj := range *aj.TrafficClasses {
		switch {
		case tcj.TCID == nil:
			return compose.AppSpec{}, missingField("tcid")
		case tcj.Src == nil:
			return compose.AppSpec{}, missingField("src")
		case tcj.Dst == nil:
			return compose.AppSpec{}, missingField("dst")
		case tcj.VolFlows == nil:
			return compose.AppSpec{}, missingField("vol_flows")
		}
		tcs = append(tcs, traffic.Class{
			ID:      string(*tcj.TCID),
			Tag:     "tc",
			Src:     *tcj.Src,
			Dst:     *tcj.Dst,
			Volumes: *tcj.VolFlows,
		})
	}
	decls := make([]optmodel.ResourceDecl, 0, len(aj.ResourceCosts))
	for _, rc := range aj.ResourceCosts {
		if rc.Resource == nil {
			return compose.AppSpec{}, missingField("resource")
		}
		if rc.Cost == nil {
			return compose.AppSpec{}, missingField("cost")
		}
		decls = append(decls, optmodel.ResourceDecl{
			Resource: *rc.Resource,
			Cost:     *rc.Cost,
		})
	}
	return compose.AppSpec{
		Name:              *aj.ID,
		Predicate:         *aj.Predicate,
		TrafficClasses:    tcs,
		ObjectiveName:     *aj.Objective.Name,
		ObjectiveResource: aj.Objective.Resource,
		ResourceCosts:     decls,
		Constraints:       aj.Constraints,
	}, nil
}

// flexString decodes a JSON string or any scalar rendered as its literal.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

// volumes decodes a single JSON number or an array of numbers, one per
// scheduling epoch.
type volumes []float64

func (v *volumes) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '[' {
		var vals []float64
		if err := json.Unmarshal(b, &vals); err != nil {
			return err
		}
		*v = vals
		return nil
	}
	var val float64
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}
	*v = volumes{val}
	return nil
}
