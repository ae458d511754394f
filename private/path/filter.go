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

package path

import (
	"context"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/private/topology"
)

// Filter returns a fresh table containing, per ingress-egress pair, the
// paths of t accepted by pred, in their original relative order. The input
// table is never mutated, so concurrent filters under different predicates
// can share it.
//
// A pair whose filtered list becomes empty is logged as a diagnosable
// condition but is not an error: traffic classes referencing that pair later
// surface as an empty-route result. Failure isolation is per traffic class,
// not per request.
func Filter(ctx context.Context, t Table, pred Predicate, topo *topology.Topology) Table {
	logger := log.FromCtx(ctx)
	filtered := make(Table, len(t))
	for src, dsts := range t {
		filtered[src] = make(map[int][]Path, len(dsts))
		for dst, paths := range dsts {
			kept := make([]Path, 0, len(paths))
			for _, p := range paths {
				if pred(p, topo) {
					kept = append(kept, p)
					continue
				}
				if logger.Enabled(log.DebugLevel) {
					logger.Debug("Path removed under predicate", "path", []int(p))
				}
			}
			filtered[src][dst] = kept
			if len(kept) == 0 && len(paths) > 0 {
				logger.Debug("No valid path between pair under predicate",
					"src", src, "dst", dst)
			}
		}
	}
	return filtered
}
