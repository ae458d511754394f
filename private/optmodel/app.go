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
	"github.com/solproject/sol/private/traffic"
)

// App is the fully translated model of one application: its paths per
// traffic class, constraints, resource costs and objective. App models are
// built fresh per compose request and are not persisted.
type App struct {
	Name          string
	PPTC          traffic.PPTC
	Constraints   []ConstraintSpec
	Objective     ObjectiveSpec
	ResourceCosts map[string]ResourceCost
}
