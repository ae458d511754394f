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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathEndpoints(t *testing.T) {
	testCases := map[string]struct {
		path     Path
		ingress  int
		egress   int
		interior []int
	}{
		"empty":     {path: nil, ingress: -1, egress: -1},
		"single":    {path: Path{3}, ingress: 3, egress: 3},
		"two hops":  {path: Path{0, 1}, ingress: 0, egress: 1},
		"with core": {path: Path{0, 4, 5, 2}, ingress: 0, egress: 2, interior: []int{4, 5}},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.ingress, tc.path.Ingress())
			assert.Equal(t, tc.egress, tc.path.Egress())
			assert.Equal(t, tc.interior, tc.path.Interior())
		})
	}
}

func TestNewTable(t *testing.T) {
	table := NewTable([]int{0, 1, 2})
	assert.Len(t, table, 3)
	for _, s := range []int{0, 1, 2} {
		assert.Len(t, table[s], 2)
		_, ok := table[s][s]
		assert.False(t, ok, "no entry for the pair (%d, %d)", s, s)
	}
	assert.Zero(t, table.NumPaths())
}

func TestTableCopy(t *testing.T) {
	table := NewTable([]int{0, 1})
	table[0][1] = []Path{{0, 1}}

	c := table.Copy()
	c[0][1] = append(c[0][1], Path{0, 2, 1})
	assert.Len(t, table.Lookup(0, 1), 1, "copy must not alias the original")
	assert.Len(t, c.Lookup(0, 1), 2)
	assert.Equal(t, 1, table.NumPaths())
}

func TestTableLookupMissing(t *testing.T) {
	table := NewTable([]int{0, 1})
	assert.Nil(t, table.Lookup(5, 6))
	assert.Nil(t, table.Lookup(0, 0))
}
