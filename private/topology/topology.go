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

// Package topology models the network topology the traffic-engineering
// pipeline operates on: a directed graph with dense integer node identifiers
// and optional middlebox capability per node.
//
// Topologies arrive from clients in a node-link JSON form whose node keys are
// not assumed stable. Normalize relabels them into the canonical form; see
// normalize.go.
package topology

import (
	"encoding/json"
	"sort"

	"github.com/solproject/sol/pkg/private/serrors"
)

// Node is a single node of the topology.
type Node struct {
	// ID is the stable integer identifier. After normalization the IDs of a
	// topology form a dense range starting at 0.
	ID int `json:"id"`
	// Mbox marks the node as middlebox-capable.
	Mbox bool `json:"mbox,omitempty"`
}

// Link is a directed edge between two nodes. SrcName and DstName carry the
// externally supplied stable names of the endpoints; they are only consumed
// by the normalizer and afterwards always equal Src and Dst.
type Link struct {
	Src     int `json:"src"`
	Dst     int `json:"dst"`
	SrcName int `json:"srcname"`
	DstName int `json:"dstname"`
}

// Topology is a directed graph with middlebox annotations. The zero value is
// an empty topology ready for use.
type Topology struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// NumNodes returns the number of nodes.
func (t *Topology) NumNodes() int {
	return len(t.Nodes)
}

// NodeIDs returns all node identifiers in ascending order.
func (t *Topology) NodeIDs() []int {
	ids := make([]int, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		ids = append(ids, n.ID)
	}
	sort.Ints(ids)
	return ids
}

// HasMbox reports whether the node with the given id is middlebox-capable.
// Unknown ids are not middlebox-capable.
func (t *Topology) HasMbox(id int) bool {
	for _, n := range t.Nodes {
		if n.ID == id {
			return n.Mbox
		}
	}
	return false
}

// SetMbox marks the node with the given id as middlebox-capable.
func (t *Topology) SetMbox(id int) error {
	for i := range t.Nodes {
		if t.Nodes[i].ID == id {
			t.Nodes[i].Mbox = true
			return nil
		}
	}
	return serrors.New("no such node", "id", id)
}

// Copy returns a deep copy of the topology.
func (t *Topology) Copy() *Topology {
	c := &Topology{
		Nodes: append([]Node(nil), t.Nodes...),
		Links: append([]Link(nil), t.Links...),
	}
	return c
}

// MarshalJSON renders the topology in canonical node-link form with nodes
// sorted by identifier.
func (t *Topology) MarshalJSON() ([]byte, error) {
	nodes := append([]Node(nil), t.Nodes...)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	type alias Topology
	return json.Marshal(alias{Nodes: nodes, Links: t.Links})
}
