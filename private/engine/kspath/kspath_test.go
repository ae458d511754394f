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

package kspath

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solproject/sol/private/path"
	"github.com/solproject/sol/private/topology"
)

// diamond is 0 -> {1, 2} -> 3 plus the direct link 0 -> 3, all directed.
func diamond() *topology.Topology {
	topo := &topology.Topology{
		Nodes: []topology.Node{{ID: 0}, {ID: 1, Mbox: true}, {ID: 2}, {ID: 3}},
	}
	for _, l := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 3}, {2, 3}} {
		topo.Links = append(topo.Links, topology.Link{
			Src: l[0], Dst: l[1], SrcName: l[0], DstName: l[1],
		})
	}
	return topo
}

func TestPathsOrder(t *testing.T) {
	paths, err := Enumerator{}.Paths(
		context.Background(), 0, 3, diamond(), path.Null, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, []path.Path{{0, 3}, {0, 1, 3}, {0, 2, 3}}, paths)
}

func TestPathsBounds(t *testing.T) {
	topo := diamond()
	t.Run("k caps the result", func(t *testing.T) {
		paths, err := Enumerator{}.Paths(
			context.Background(), 0, 3, topo, path.Null, 2, 4)
		require.NoError(t, err)
		assert.Equal(t, []path.Path{{0, 3}, {0, 1, 3}}, paths)
	})
	t.Run("hop bound prunes", func(t *testing.T) {
		paths, err := Enumerator{}.Paths(
			context.Background(), 0, 3, topo, path.Null, 10, 1)
		require.NoError(t, err)
		assert.Equal(t, []path.Path{{0, 3}}, paths)
	})
	t.Run("k zero", func(t *testing.T) {
		paths, err := Enumerator{}.Paths(
			context.Background(), 0, 3, topo, path.Null, 0, 4)
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
	t.Run("ingress equals egress", func(t *testing.T) {
		paths, err := Enumerator{}.Paths(
			context.Background(), 0, 0, topo, path.Null, 10, 4)
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}

func TestPathsPredicate(t *testing.T) {
	paths, err := Enumerator{}.Paths(
		context.Background(), 0, 3, diamond(), path.HasMbox, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, []path.Path{{0, 1, 3}}, paths)
}

func TestPathsSimpleOnly(t *testing.T) {
	// A cycle 0 -> 1 -> 0 must not produce paths revisiting a node.
	topo := &topology.Topology{
		Nodes: []topology.Node{{ID: 0}, {ID: 1}, {ID: 2}},
		Links: []topology.Link{
			{Src: 0, Dst: 1, SrcName: 0, DstName: 1},
			{Src: 1, Dst: 0, SrcName: 1, DstName: 0},
			{Src: 1, Dst: 2, SrcName: 1, DstName: 2},
		},
	}
	paths, err := Enumerator{}.Paths(
		context.Background(), 0, 2, topo, path.Null, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, []path.Path{{0, 1, 2}}, paths)
}

func TestPathsUnreachable(t *testing.T) {
	topo := &topology.Topology{
		Nodes: []topology.Node{{ID: 0}, {ID: 1}},
		Links: []topology.Link{{Src: 1, Dst: 0, SrcName: 1, DstName: 0}},
	}
	paths, err := Enumerator{}.Paths(
		context.Background(), 0, 1, topo, path.Null, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestPathsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Enumerator{}.Paths(ctx, 0, 3, diamond(), path.Null, 10, 4)
	assert.Error(t, err)
}
