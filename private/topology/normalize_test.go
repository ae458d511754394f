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

package topology

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/pkg/log/testlog"
)

func TestNormalize(t *testing.T) {
	// Node keys 10, 20, 30 carry the stable names 0, 1, 2 on their links.
	raw := []byte(`{
		"nodes": [{"id": 10}, {"id": 20}, {"id": 30, "hasMbox": true}],
		"links": [
			{"src": 10, "dst": 20, "srcname": 0, "dstname": 1},
			{"src": 20, "dst": 30, "srcname": 1, "dstname": 2}
		]
	}`)
	ctx := log.CtxWith(context.Background(), testlog.NewLogger(t))
	topo, err := Normalize(ctx, raw)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, topo.NodeIDs())
	assert.Equal(t, []Link{
		{Src: 0, Dst: 1, SrcName: 0, DstName: 1},
		{Src: 1, Dst: 2, SrcName: 1, DstName: 2},
	}, topo.Links)
	assert.False(t, topo.HasMbox(0))
	assert.False(t, topo.HasMbox(1))
	assert.True(t, topo.HasMbox(2))
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := []byte(`{
		"nodes": [{"id": 7}, {"id": 8}],
		"links": [
			{"src": 7, "dst": 8, "srcname": 1, "dstname": 0},
			{"src": 8, "dst": 7, "srcname": 0, "dstname": 1}
		]
	}`)
	first, err := Normalize(context.Background(), raw)
	require.NoError(t, err)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	second, err := Normalize(context.Background(), encoded)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeLateName(t *testing.T) {
	// Node 5 only learns its name through the second link, after node 4 was
	// already covered by the first sweep.
	raw := []byte(`{
		"nodes": [{"id": 4}, {"id": 5}, {"id": 6}],
		"links": [
			{"src": 4, "dst": 6, "srcname": 0, "dstname": 2},
			{"src": 6, "dst": 5, "srcname": 2, "dstname": 1}
		]
	}`)
	topo, err := Normalize(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, topo.NodeIDs())
}

func TestNormalizeStringValues(t *testing.T) {
	raw := []byte(`{
		"nodes": [{"id": 1, "hasMbox": "true"}, {"id": 2}],
		"links": [{"src": 1, "dst": 2, "srcname": "0", "dstname": "1"}]
	}`)
	topo, err := Normalize(context.Background(), raw)
	require.NoError(t, err)
	assert.True(t, topo.HasMbox(0))
	assert.Equal(t, []Link{{Src: 0, Dst: 1, SrcName: 0, DstName: 1}}, topo.Links)
}

func TestNormalizeErrors(t *testing.T) {
	testCases := map[string]struct {
		raw      string
		assertIs error
	}{
		"disconnected node": {
			raw: `{
				"nodes": [{"id": 1}, {"id": 2}, {"id": 3}],
				"links": [{"src": 1, "dst": 2, "srcname": 0, "dstname": 1}]
			}`,
			assertIs: ErrDisconnectedNode,
		},
		"duplicate stable name": {
			raw: `{
				"nodes": [{"id": 1}, {"id": 2}],
				"links": [{"src": 1, "dst": 2, "srcname": 0, "dstname": 0}]
			}`,
		},
		"sparse stable names": {
			raw: `{
				"nodes": [{"id": 1}, {"id": 2}],
				"links": [{"src": 1, "dst": 2, "srcname": 0, "dstname": 2}]
			}`,
		},
		"not json": {
			raw: `nodes`,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Normalize(context.Background(), []byte(tc.raw))
			require.Error(t, err)
			if tc.assertIs != nil {
				assert.ErrorIs(t, err, tc.assertIs)
			}
		})
	}
}

func TestTopologyCopy(t *testing.T) {
	topo := &Topology{
		Nodes: []Node{{ID: 0}, {ID: 1}},
		Links: []Link{{Src: 0, Dst: 1, SrcName: 0, DstName: 1}},
	}
	c := topo.Copy()
	require.NoError(t, c.SetMbox(1))
	assert.True(t, c.HasMbox(1))
	assert.False(t, topo.HasMbox(1))
}

func TestTopologyMarshalSorted(t *testing.T) {
	topo := &Topology{
		Nodes: []Node{{ID: 2}, {ID: 0}, {ID: 1}},
		Links: []Link{{Src: 0, Dst: 1, SrcName: 0, DstName: 1}},
	}
	encoded, err := json.Marshal(topo)
	require.NoError(t, err)
	var decoded struct {
		Nodes []Node `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, []Node{{ID: 0}, {ID: 1}, {ID: 2}}, decoded.Nodes)
}

func TestSetMboxUnknownNode(t *testing.T) {
	topo := &Topology{Nodes: []Node{{ID: 0}}}
	assert.Error(t, topo.SetMbox(3))
}
