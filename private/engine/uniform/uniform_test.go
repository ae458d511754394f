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

package uniform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solproject/sol/private/engine"
	"github.com/solproject/sol/private/optmodel"
	"github.com/solproject/sol/private/path"
	"github.com/solproject/sol/private/topology"
	"github.com/solproject/sol/private/traffic"
)

func TestCompose(t *testing.T) {
	var pptc traffic.PPTC
	pptc.Add("web", traffic.Class{ID: "1", Src: 0, Dst: 2},
		[]path.Path{{0, 2}, {0, 1, 2}})
	pptc.Add("web", traffic.Class{ID: "2", Src: 2, Dst: 0}, nil)
	apps := []optmodel.App{{Name: "web", PPTC: pptc}}

	sol, err := Composer{}.Compose(
		context.Background(), apps, &topology.Topology{}, engine.ComposeConfig{})
	require.NoError(t, err)

	routed := sol.Paths("web", "1")
	require.Len(t, routed, 2)
	assert.Equal(t, path.Path{0, 2}, routed[0].Nodes)
	assert.Equal(t, 0.5, routed[0].Fraction)
	assert.Equal(t, 0.5, routed[1].Fraction)

	assert.Empty(t, sol.Paths("web", "2"))
	assert.Empty(t, sol.Paths("web", "nope"))
	assert.Empty(t, sol.Paths("nope", "1"))
}

func TestComposeSinglePath(t *testing.T) {
	var pptc traffic.PPTC
	pptc.Add("app", traffic.Class{ID: "1", Src: 0, Dst: 1}, []path.Path{{0, 1}})
	apps := []optmodel.App{{Name: "app", PPTC: pptc}}

	sol, err := Composer{}.Compose(
		context.Background(), apps, &topology.Topology{}, engine.ComposeConfig{})
	require.NoError(t, err)
	routed := sol.Paths("app", "1")
	require.Len(t, routed, 1)
	assert.Equal(t, 1.0, routed[0].Fraction)
}

func TestComposeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Composer{}.Compose(ctx, nil, &topology.Topology{}, engine.ComposeConfig{})
	assert.Error(t, err)
}
