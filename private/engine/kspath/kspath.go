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

// Package kspath provides the built-in path enumerator: an exhaustive
// bounded-hop depth-first search over simple paths, shortest first.
package kspath

import (
	"context"
	"sort"

	"github.com/solproject/sol/private/engine"
	"github.com/solproject/sol/private/path"
	"github.com/solproject/sol/private/topology"
)

// Enumerator enumerates simple paths by depth-first search. It implements
// engine.Enumerator.
type Enumerator struct{}

var _ engine.Enumerator = Enumerator{}

// Paths returns up to k simple paths from ingress to egress with at most
// maxHops hops that satisfy pred, ordered by hop count and then
// lexicographically by node sequence.
func (Enumerator) Paths(ctx context.Context, ingress, egress int,
	topo *topology.Topology, pred path.Predicate, k, maxHops int) ([]path.Path, error) {

	if ingress == egress || k <= 0 {
		return nil, nil
	}
	adj := adjacency(topo)
	var (
		found   []path.Path
		current = path.Path{ingress}
		visited = map[int]bool{ingress: true}
	)
	var walk func(node int) error
	walk = func(node int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if node == egress {
			if pred(current, topo) {
				found = append(found, current.Copy())
			}
			return nil
		}
		if len(current)-1 >= maxHops {
			return nil
		}
		for _, next := range adj[node] {
			if visited[next] {
				continue
			}
			visited[next] = true
			current = append(current, next)
			if err := walk(next); err != nil {
				return err
			}
			current = current[:len(current)-1]
			visited[next] = false
		}
		return nil
	}
	if err := walk(ingress); err != nil {
		return nil, err
	}
	sort.Slice(found, func(i, j int) bool {
		if len(found[i]) != len(found[j]) {
			return len(found[i]) < len(found[j])
		}
		return lexLess(found[i], found[j])
	})
	if len(found) > k {
		found = found[:k]
	}
	return found, nil
}

func adjacency(topo *topology.Topology) map[int][]int {
	adj := make(map[int][]int, topo.NumNodes())
	for _, l := range topo.Links {
		adj[l.Src] = append(adj[l.Src], l.Dst)
	}
	for _, neighbors := range adj {
		sort.Ints(neighbors)
	}
	return adj
}

func lexLess(a, b path.Path) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
