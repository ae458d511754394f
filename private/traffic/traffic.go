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

// Package traffic models traffic classes, the demands between ingress and
// egress nodes, and their assignment to candidate paths.
package traffic

import (
	"github.com/solproject/sol/private/path"
)

// Class identifies one demand between an ingress and an egress node.
// Immutable once constructed from a request.
type Class struct {
	// ID is the client-supplied traffic class identifier.
	ID string
	// Tag is a free-form label for the class.
	Tag string
	// Src is the ingress node.
	Src int
	// Dst is the egress node.
	Dst int
	// Volumes holds one flow-volume sample per scheduling epoch.
	Volumes []float64
}

// WorstVolume returns the largest per-epoch volume sample of the class.
func (c Class) WorstVolume() float64 {
	worst := 0.0
	for _, v := range c.Volumes {
		if v > worst {
			worst = v
		}
	}
	return worst
}

// Entry binds one traffic class of an application to its candidate paths.
type Entry struct {
	App   string
	TC    Class
	Paths []path.Path
}

// PPTC is the paths-per-traffic-class structure: the ordered set of
// (application, traffic class) bindings produced for one compose request.
// It is built once per request and never mutated afterwards.
type PPTC struct {
	entries []Entry
}

// Add appends a binding for the given application and traffic class.
func (p *PPTC) Add(app string, tc Class, paths []path.Path) {
	p.entries = append(p.entries, Entry{App: app, TC: tc, Paths: paths})
}

// Entries returns the bindings in insertion order.
func (p *PPTC) Entries() []Entry {
	return p.entries
}

// Assign binds each traffic class to the path list of its ingress-egress
// pair in the filtered table.
//
// Precondition: all traffic classes of one application share the same
// predicate-filtered view, so assignment is a direct lookup per pair. Mixed
// predicates within an application would require a search-based assignment
// instead. A pair with no paths yields an empty binding, not an error.
func Assign(tcs []Class, filtered path.Table, app string) PPTC {
	var pptc PPTC
	for _, tc := range tcs {
		pptc.Add(app, tc, filtered.Lookup(tc.Src, tc.Dst))
	}
	return pptc
}
