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

package mgmtapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOk        = "ok"
	resultErrClient = "err_client"
	resultErrServer = "err_server"
)

var (
	composeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sol_compose_requests_total",
			Help: "Total compose requests, by result.",
		},
		[]string{"result"},
	)
	topologySets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sol_topology_sets_total",
			Help: "Total topology-set requests, by result.",
		},
		[]string{"result"},
	)
	topologyNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sol_topology_nodes",
			Help: "Number of nodes in the currently stored topology.",
		},
	)
	composeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sol_compose_duration_seconds",
			Help:    "Duration of successful compose requests.",
			Buckets: prometheus.DefBuckets,
		},
	)
)
