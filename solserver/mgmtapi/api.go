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

// Package mgmtapi implements the HTTP API of the traffic-engineering
// service: topology management and composition requests.
package mgmtapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/pkg/private/serrors"
	"github.com/solproject/sol/private/optmodel"
	"github.com/solproject/sol/private/path"
	"github.com/solproject/sol/private/store"
	"github.com/solproject/sol/private/topology"
	"github.com/solproject/sol/solserver/compose"
)

// APIVersion is the current API version.
const APIVersion = 1

// ErrMalformedRequest indicates a request body missing a required field.
// Such requests are rejected before any state mutation.
var ErrMalformedRequest = serrors.New("malformed request")

// Server implements the service API. All fields must be set.
type Server struct {
	Store  *store.Store
	Driver *compose.Driver
}

// Handler returns an http.Handler with all routes of the service API.
func Handler(s *Server, middleware ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware...)
	r.Get("/", s.Hi)
	r.Get("/api/v1/hi", s.Hi)
	r.Get("/api/v1/topology", s.GetTopology)
	r.Post("/api/v1/topology", s.SetTopology)
	r.Post("/api/v1/compose", s.Compose)
	return r
}

// Hi answers with a greeting, so clients can probe that the server is up.
func (s *Server) Hi(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Hello, this is SOL API version 1")
}

// GetTopology returns the stored normalized topology.
func (s *Server) GetTopology(w http.ResponseWriter, r *http.Request) {
	topo, ok := s.Store.Topology()
	if !ok {
		writeError(w, http.StatusNotFound, serrors.New("no topology set"))
		return
	}
	writeJSON(w, http.StatusOK, topo)
}

// SetTopology normalizes the posted topology, derives its path table and
// atomically installs both as the new process state. It responds with the
// normalized topology.
func (s *Server) SetTopology(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.FromCtx(ctx)
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, serrors.Wrap("reading body", err))
		return
	}
	topo, err := topology.Normalize(ctx, raw)
	if err != nil {
		topologySets.WithLabelValues(resultErrClient).Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.Store.SetTopology(ctx, topo); err != nil {
		logger.Error("Deriving path table failed", "err", err)
		topologySets.WithLabelValues(resultErrServer).Inc()
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	topologySets.WithLabelValues(resultOk).Inc()
	topologyNodes.Set(float64(topo.NumNodes()))
	writeJSON(w, http.StatusOK, topo)
}

// Compose translates the posted apps against the stored path table, solves
// the composition and returns the routed paths with flow fractions.
func (s *Server) Compose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.FromCtx(ctx)
	start := time.Now()
	defer r.Body.Close()

	var req composeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		composeRequests.WithLabelValues(resultErrClient).Inc()
		writeError(w, http.StatusBadRequest, serrors.Wrap("parsing request", err))
		return
	}
	specs, rawTopo, err := req.validate()
	if err != nil {
		composeRequests.WithLabelValues(resultErrClient).Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	}
	// The request topology only provides node attributes (middlebox flags)
	// for predicate evaluation; the path table always comes from the store.
	topo, err := topology.Normalize(ctx, rawTopo)
	if err != nil {
		composeRequests.WithLabelValues(resultErrClient).Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	}
	_, table, ok := s.Store.Snapshot()
	if !ok {
		composeRequests.WithLabelValues(resultErrClient).Inc()
		writeError(w, http.StatusBadRequest, serrors.New("no topology set"))
		return
	}

	results, err := s.Driver.Compose(ctx, topo, table, specs)
	switch {
	case errors.Is(err, path.ErrUnknownPredicate),
		errors.Is(err, optmodel.ErrUnknownObjective):
		composeRequests.WithLabelValues(resultErrClient).Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		logger.Error("Composition failed", "err", err)
		composeRequests.WithLabelValues(resultErrServer).Inc()
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	composeRequests.WithLabelValues(resultOk).Inc()
	composeDuration.Observe(time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, results)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	_ = enc.Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Status: status})
}

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}
