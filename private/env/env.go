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

// Package env contains common configuration sections shared by service
// configurations: general identification, metrics and tracing.
package env

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/pkg/private/serrors"
	"github.com/solproject/sol/private/config"
)

const (
	// ShutdownGraceInterval is the time the service waits after a clean
	// shutdown signal before forcefully tearing down.
	ShutdownGraceInterval = 5 * time.Second

	// HandlerTimeout is the time after which an http handler gives up on a
	// request and returns an error instead.
	HandlerTimeout = time.Minute
)

var _ config.Config = (*General)(nil)

// General contains the common service identification options.
type General struct {
	config.NoDefaulter
	// ID is the service instance id, used to identify the instance in logs
	// and traces.
	ID string `toml:"id,omitempty"`
}

// Validate checks that an instance id is set.
func (cfg *General) Validate() error {
	if cfg.ID == "" {
		return serrors.New("no instance id specified")
	}
	return nil
}

// Sample writes the sample configuration to dst.
func (cfg *General) Sample(dst io.Writer, _ config.Path, ctx config.CtxMap) {
	config.WriteString(dst, "\n[general]\n# The instance id of the service.\nid = \""+
		ctx[config.ID]+"\"\n")
}

// ConfigName returns the name this config should have in a config file.
func (cfg *General) ConfigName() string {
	return "general"
}

var _ config.Config = (*Metrics)(nil)

// Metrics configures the prometheus exporter.
type Metrics struct {
	config.NoDefaulter
	config.NoValidator
	// Prometheus contains the address to export prometheus metrics on. If
	// not set, metrics are not exported.
	Prometheus string `toml:"prometheus,omitempty"`
}

// Sample writes the sample configuration to dst.
func (cfg *Metrics) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, metricsSample)
}

// ConfigName returns the name this config should have in a config file.
func (cfg *Metrics) ConfigName() string {
	return "metrics"
}

// ServePrometheus serves the prometheus metrics until the context is
// cancelled. If no address is configured this is a no-op.
func (cfg *Metrics) ServePrometheus(ctx context.Context) error {
	if cfg.Prometheus == "" {
		return nil
	}
	handler := promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(
			prometheus.DefaultGatherer,
			promhttp.HandlerOpts{Timeout: HandlerTimeout},
		),
	)
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	log.Info("Exporting prometheus metrics", "addr", cfg.Prometheus)

	server := &http.Server{Addr: cfg.Prometheus, Handler: mux}
	go func() {
		defer log.HandlePanic()
		<-ctx.Done()
		server.Close()
	}()
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return serrors.Wrap("serving prometheus metrics", err)
	}
	return nil
}

var _ config.Config = (*Tracing)(nil)

// Tracing contains configuration for tracing.
type Tracing struct {
	config.NoValidator
	// Enabled enables tracing for this service.
	Enabled bool `toml:"enabled,omitempty"`
	// Debug enables debug mode.
	Debug bool `toml:"debug,omitempty"`
	// Agent is the address of the local agent that handles the reported
	// traces. (default: localhost:6831)
	Agent string `toml:"agent,omitempty"`
}

// InitDefaults sets the default agent address.
func (cfg *Tracing) InitDefaults() {
	if cfg.Agent == "" {
		cfg.Agent = net.JoinHostPort(
			jaeger.DefaultUDPSpanServerHost,
			strconv.Itoa(jaeger.DefaultUDPSpanServerPort),
		)
	}
}

// Sample writes the sample configuration to dst.
func (cfg *Tracing) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, tracingSample)
}

// ConfigName returns the name this config should have in a config file.
func (cfg *Tracing) ConfigName() string {
	return "tracing"
}

// NewTracer creates a new Tracer for the given configuration. In case
// tracing is disabled this still returns noop-objects for convenience of the
// caller.
func (cfg *Tracing) NewTracer(id string) (opentracing.Tracer, io.Closer, error) {
	traceConfig := jaegercfg.Configuration{
		ServiceName: id,
		Disabled:    !cfg.Enabled,
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.Agent,
		},
	}
	if cfg.Debug {
		traceConfig.Sampler = &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		}
	}
	return traceConfig.NewTracer()
}
