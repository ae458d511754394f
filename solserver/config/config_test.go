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

package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solproject/sol/private/config"
	"github.com/solproject/sol/private/store"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.InitDefaults()
	assert.Equal(t, DefaultAPIAddr, cfg.API.Addr)
	assert.Equal(t, store.DefaultMaxPaths, cfg.Engine.MaxPaths)
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var cfg Config
		cfg.InitDefaults()
		cfg.General.ID = "sol-1"
		assert.NoError(t, cfg.Validate())
	})
	t.Run("missing id", func(t *testing.T) {
		var cfg Config
		cfg.InitDefaults()
		assert.Error(t, cfg.Validate())
	})
	t.Run("negative max_paths", func(t *testing.T) {
		var cfg Config
		cfg.InitDefaults()
		cfg.General.ID = "sol-1"
		cfg.Engine.MaxPaths = -1
		assert.Error(t, cfg.Validate())
	})
}

func TestConfigSample(t *testing.T) {
	var sample bytes.Buffer
	var cfg Config
	cfg.Sample(&sample, nil, config.CtxMap{config.ID: "sol-1"})

	var decoded Config
	require.NoError(t, config.Decode(sample.Bytes(), &decoded))
	decoded.InitDefaults()
	assert.NoError(t, decoded.Validate())
}
