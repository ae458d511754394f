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

package compose

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solproject/sol/private/engine"
	"github.com/solproject/sol/private/engine/uniform"
	"github.com/solproject/sol/private/optmodel"
	"github.com/solproject/sol/private/path"
	"github.com/solproject/sol/private/topology"
	"github.com/solproject/sol/private/traffic"
)

func diamondTopo() *topology.Topology {
	topo := &topology.Topology{
		Nodes: []topology.Node{{ID: 0}, {ID: 1, Mbox: true}, {ID: 2}, {ID: 3}},
	}
	for _, l := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		topo.Links = append(topo.Links, topology.Link{
			Src: l[0], Dst: l[1], SrcName: l[0], DstName: l[1],
		})
	}
	return topo
}

func diamondTable() path.Table {
	table := path.NewTable([]int{0, 1, 2, 3})
	table[0][3] = []path.Path{{0, 1, 3}, {0, 2, 3}}
	return table
}

func TestCompose(t *testing.T) {
	d := &Driver{Composer: uniform.Composer{}}
	specs := []AppSpec{{
		Name:      "web",
		Predicate: "null",
		TrafficClasses: []traffic.Class{
			{ID: "1", Tag: "tc", Src: 0, Dst: 3, Volumes: []float64{100}},
		},
		ObjectiveName: "maxflow",
		ResourceCosts: []optmodel.ResourceDecl{{Resource: "bandwidth", Cost: 1}},
		Constraints:   []string{"route_all", "allocate_flow"},
	}}

	results, err := d.Compose(context.Background(), diamondTopo(), diamondTable(), specs)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "web", results[0].App)
	require.Len(t, results[0].TCs, 1)
	assert.Equal(t, "1", results[0].TCs[0].TCID)
	assert.Equal(t, []PathResult{
		{Nodes: []int{0, 1, 3}, Fraction: 0.5},
		{Nodes: []int{0, 2, 3}, Fraction: 0.5},
	}, results[0].TCs[0].Paths)
}

func TestComposeIndependentPredicates(t *testing.T) {
	// Two apps with different predicates must filter independent views of
	// the same table.
	d := &Driver{Composer: uniform.Composer{}}
	tcs := []traffic.Class{{ID: "1", Src: 0, Dst: 3, Volumes: []float64{1}}}
	specs := []AppSpec{
		{
			Name: "strict", Predicate: "has_mbox", TrafficClasses: tcs,
			ObjectiveName: "minlatency",
		},
		{
			Name: "lax", Predicate: "null", TrafficClasses: tcs,
			ObjectiveName: "minlatency",
		},
	}

	results, err := d.Compose(context.Background(), diamondTopo(), diamondTable(), specs)
	require.NoError(t, err)
	require.Len(t, results, 2)

	strict := results[0]
	require.Len(t, strict.TCs, 1)
	require.Len(t, strict.TCs[0].Paths, 1)
	assert.Equal(t, []int{0, 1, 3}, strict.TCs[0].Paths[0].Nodes)

	lax := results[1]
	require.Len(t, lax.TCs, 1)
	assert.Len(t, lax.TCs[0].Paths, 2,
		"the strict app's filter must not narrow the lax app's view")
}

func TestComposeNoViablePath(t *testing.T) {
	d := &Driver{Composer: uniform.Composer{}}
	specs := []AppSpec{{
		Name: "app", Predicate: "has_mbox",
		TrafficClasses: []traffic.Class{{ID: "1", Src: 0, Dst: 3}},
		ObjectiveName:  "minlinkload",
	}}
	// No middlebox anywhere, so filtering empties the pair.
	topo := diamondTopo()
	topo.Nodes[1].Mbox = false

	results, err := d.Compose(context.Background(), topo, diamondTable(), specs)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].TCs, 1)
	assert.Equal(t, []PathResult{}, results[0].TCs[0].Paths,
		"empty pair yields an empty path list, not an error")
}

func TestComposeErrors(t *testing.T) {
	d := &Driver{Composer: uniform.Composer{}}
	t.Run("unknown predicate", func(t *testing.T) {
		specs := []AppSpec{{Name: "app", Predicate: "bogus", ObjectiveName: "maxflow"}}
		_, err := d.Compose(context.Background(), diamondTopo(), diamondTable(), specs)
		assert.ErrorIs(t, err, path.ErrUnknownPredicate)
	})
	t.Run("unknown objective", func(t *testing.T) {
		specs := []AppSpec{{Name: "app", Predicate: "null", ObjectiveName: "bogus"}}
		_, err := d.Compose(context.Background(), diamondTopo(), diamondTable(), specs)
		assert.ErrorIs(t, err, optmodel.ErrUnknownObjective)
	})
}

type recordingComposer struct {
	cfg  engine.ComposeConfig
	apps []optmodel.App
}

func (c *recordingComposer) Compose(ctx context.Context, apps []optmodel.App,
	topo *topology.Topology, cfg engine.ComposeConfig) (*engine.Solution, error) {

	c.cfg = cfg
	c.apps = apps
	return &engine.Solution{}, nil
}

func TestComposeEngineConfig(t *testing.T) {
	rec := &recordingComposer{}
	d := &Driver{Composer: rec}
	specs := []AppSpec{{
		Name: "app", Predicate: "null",
		ObjectiveName: "maxflow",
		ResourceCosts: []optmodel.ResourceDecl{{Resource: "bandwidth", Cost: 2}},
	}}

	_, err := d.Compose(context.Background(), diamondTopo(), diamondTable(), specs)
	require.NoError(t, err)

	assert.Equal(t, engine.EpochWorst, rec.cfg.EpochMode)
	assert.Equal(t, engine.FairnessWeighted, rec.cfg.Fairness)
	assert.Equal(t, engine.NetworkCaps{"bandwidth": 1}, rec.cfg.Caps)
	require.Len(t, rec.apps, 1)
	assert.Equal(t, optmodel.MaxFlow, rec.apps[0].Objective.Kind)
	assert.Equal(t, map[string]optmodel.ResourceCost{
		"bandwidth": {Scope: optmodel.ScopeLinks, Cost: 2},
	}, rec.apps[0].ResourceCosts)
}
