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

// Package path defines candidate routes through a topology, the per-pair
// path table, and the predicate machinery used to filter paths per
// application.
package path

// Path is an ordered sequence of node identifiers describing one route from
// an ingress to an egress node. Paths are immutable once generated.
type Path []int

// Ingress returns the first node of the path, or -1 if the path is empty.
func (p Path) Ingress() int {
	if len(p) == 0 {
		return -1
	}
	return p[0]
}

// Egress returns the last node of the path, or -1 if the path is empty.
func (p Path) Egress() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

// Interior returns the nodes of the path excluding ingress and egress.
func (p Path) Interior() []int {
	if len(p) <= 2 {
		return nil
	}
	return p[1 : len(p)-1]
}

// Copy returns a copy of the path.
func (p Path) Copy() Path {
	return append(Path(nil), p...)
}

// Table maps ingress node to egress node to the ordered list of candidate
// paths for that pair. A table covers every ordered pair of distinct nodes;
// the entry may be empty. Tables are recomputed wholesale when a topology is
// set and must never be partially updated.
type Table map[int]map[int][]Path

// NewTable creates a table with an empty entry for every ordered pair of
// distinct node identifiers.
func NewTable(nodeIDs []int) Table {
	t := make(Table, len(nodeIDs))
	for _, s := range nodeIDs {
		t[s] = make(map[int][]Path, len(nodeIDs)-1)
		for _, d := range nodeIDs {
			if s != d {
				t[s][d] = nil
			}
		}
	}
	return t
}

// Copy returns a deep copy of the table. The path lists are copied so the
// copy can be filtered without aliasing the original; the paths themselves
// are immutable and shared.
func (t Table) Copy() Table {
	c := make(Table, len(t))
	for s, dsts := range t {
		c[s] = make(map[int][]Path, len(dsts))
		for d, paths := range dsts {
			c[s][d] = append([]Path(nil), paths...)
		}
	}
	return c
}

// NumPaths returns the total number of paths in the table.
func (t Table) NumPaths() int {
	n := 0
	for _, dsts := range t {
		for _, paths := range dsts {
			n += len(paths)
		}
	}
	return n
}

// Lookup returns the candidate paths for the given ingress-egress pair. A
// missing entry yields nil.
func (t Table) Lookup(ingress, egress int) []Path {
	return t[ingress][egress]
}
