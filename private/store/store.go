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

// Package store holds the process-wide topology state: the current topology
// and the path table derived from it. Both are installed together; readers
// never observe a topology paired with a stale path table.
package store

import (
	"context"
	"sync"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/pkg/private/serrors"
	"github.com/solproject/sol/private/engine"
	"github.com/solproject/sol/private/path"
	"github.com/solproject/sol/private/topology"
)

// DefaultMaxPaths is the enumeration bound per ingress-egress pair.
const DefaultMaxPaths = 100

// Store is the shared topology and path-table state. The zero Store is not
// usable; create instances with New.
type Store struct {
	enumerator engine.Enumerator
	maxPaths   int

	mu    sync.RWMutex
	topo  *topology.Topology
	table path.Table
}

// New creates a store that derives path tables with the given enumerator.
// maxPaths bounds the enumerated paths per pair; 0 means DefaultMaxPaths.
func New(enumerator engine.Enumerator, maxPaths int) *Store {
	if maxPaths <= 0 {
		maxPaths = DefaultMaxPaths
	}
	return &Store{
		enumerator: enumerator,
		maxPaths:   maxPaths,
	}
}

// SetTopology derives the path table for topo and atomically replaces the
// stored topology and table with the new pair. Enumeration runs with the
// accept-all predicate and a hop bound equal to the node count, for every
// ordered pair of distinct nodes. On error the previous state is left
// untouched.
func (s *Store) SetTopology(ctx context.Context, topo *topology.Topology) error {
	logger := log.FromCtx(ctx)
	ids := topo.NodeIDs()
	table := path.NewTable(ids)
	for _, src := range ids {
		for _, dst := range ids {
			if src == dst {
				continue
			}
			paths, err := s.enumerator.Paths(
				ctx, src, dst, topo, path.Null, s.maxPaths, topo.NumNodes())
			if err != nil {
				return serrors.Wrap("enumerating paths", err, "src", src, "dst", dst)
			}
			table[src][dst] = paths
		}
	}
	logger.Debug("Computed path table", "nodes", len(ids), "paths", table.NumPaths())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.topo = topo
	s.table = table
	return nil
}

// Snapshot returns the current topology together with a deep copy of the
// path table. The copy is taken under the same lock that guards replacement,
// so concurrent SetTopology calls cannot tear the pair apart. The boolean is
// false if no topology has been set.
func (s *Store) Snapshot() (*topology.Topology, path.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.topo == nil {
		return nil, nil, false
	}
	return s.topo, s.table.Copy(), true
}

// Topology returns the current topology, or false if none has been set.
func (s *Store) Topology() (*topology.Topology, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.topo == nil {
		return nil, false
	}
	return s.topo, true
}
