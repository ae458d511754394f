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

// Package config describes the configuration of the traffic-engineering
// server.
package config

import (
	"io"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/pkg/private/serrors"
	"github.com/solproject/sol/private/config"
	"github.com/solproject/sol/private/env"
	"github.com/solproject/sol/private/store"
)

const (
	// DefaultAPIAddr is the address the API listens on if not configured.
	DefaultAPIAddr = "127.0.0.1:5000"
)

var _ config.Config = (*Config)(nil)

// Config is the traffic-engineering server configuration.
type Config struct {
	General env.General `toml:"general,omitempty"`
	Log     log.Config  `toml:"log,omitempty"`
	Metrics env.Metrics `toml:"metrics,omitempty"`
	Tracing env.Tracing `toml:"tracing,omitempty"`
	API     API         `toml:"api,omitempty"`
	Engine  Engine      `toml:"engine,omitempty"`
}

// InitDefaults initializes the default values of all sections.
func (cfg *Config) InitDefaults() {
	config.InitAll(
		&cfg.General,
		&cfg.Log,
		&cfg.Metrics,
		&cfg.Tracing,
		&cfg.API,
		&cfg.Engine,
	)
}

// Validate validates all sections.
func (cfg *Config) Validate() error {
	return config.ValidateAll(
		&cfg.General,
		&cfg.Log,
		&cfg.Metrics,
		&cfg.Tracing,
		&cfg.API,
		&cfg.Engine,
	)
}

// Sample writes a sample configuration to dst.
func (cfg *Config) Sample(dst io.Writer, path config.Path, ctx config.CtxMap) {
	config.WriteSample(dst, path, ctx,
		&cfg.General,
		&cfg.Log,
		&cfg.Metrics,
		&cfg.Tracing,
		&cfg.API,
		&cfg.Engine,
	)
}

// Logging returns the logging section, as required by the launcher.
func (cfg *Config) Logging() log.Config {
	return cfg.Log
}

var _ config.Config = (*API)(nil)

// API configures the HTTP API.
type API struct {
	config.NoValidator
	// Addr is the address the API server listens on.
	Addr string `toml:"addr,omitempty"`
}

// InitDefaults sets the default listen address.
func (cfg *API) InitDefaults() {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAPIAddr
	}
}

// Sample writes the sample configuration to dst.
func (cfg *API) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, apiSample)
}

// ConfigName returns the name this config should have in a config file.
func (cfg *API) ConfigName() string {
	return "api"
}

var _ config.Config = (*Engine)(nil)

// Engine configures the path-enumeration bounds.
type Engine struct {
	// MaxPaths bounds the number of paths enumerated per ingress-egress
	// pair when a topology is set.
	MaxPaths int `toml:"max_paths,omitempty"`
}

// InitDefaults sets the default enumeration bound.
func (cfg *Engine) InitDefaults() {
	if cfg.MaxPaths == 0 {
		cfg.MaxPaths = store.DefaultMaxPaths
	}
}

// Validate checks the enumeration bound is positive.
func (cfg *Engine) Validate() error {
	if cfg.MaxPaths < 0 {
		return serrors.New("max_paths must be positive", "max_paths", cfg.MaxPaths)
	}
	return nil
}

// Sample writes the sample configuration to dst.
func (cfg *Engine) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, engineSample)
}

// ConfigName returns the name this config should have in a config file.
func (cfg *Engine) ConfigName() string {
	return "engine"
}
