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

package topology

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/solproject/sol/pkg/log"
	"github.com/solproject/sol/pkg/private/serrors"
)

// ErrDisconnectedNode indicates a raw topology contains a node with no
// incident link. Such a node can never be relabeled, so the topology is
// rejected up front.
var ErrDisconnectedNode = serrors.New("node without incident link")

// rawNode is the client-facing node shape. The hasMbox marker is transient:
// it only exists to flag middlebox capability during normalization and is
// stripped from the canonical form.
type rawNode struct {
	ID      int       `json:"id"`
	HasMbox *flexBool `json:"hasMbox,omitempty"`
	Mbox    bool      `json:"mbox,omitempty"`
}

// rawLink is the client-facing link shape. The endpoint names may arrive as
// JSON numbers or number-valued strings.
type rawLink struct {
	Src     int     `json:"src"`
	Dst     int     `json:"dst"`
	SrcName flexInt `json:"srcname"`
	DstName flexInt `json:"dstname"`
}

type rawTopology struct {
	Nodes []rawNode `json:"nodes"`
	Links []rawLink `json:"links"`
}

// Normalize parses a raw node-link topology document and relabels its nodes
// with their stable names, yielding a topology whose node identifiers form a
// dense range starting at 0. Node keys in the input are not assumed stable;
// the stable name of a node is only discoverable through the srcname/dstname
// attributes of its incident links. Normalizing an already-normalized
// topology is a no-op.
func Normalize(ctx context.Context, raw []byte) (*Topology, error) {
	logger := log.FromCtx(ctx)
	var rt rawTopology
	if err := json.Unmarshal(raw, &rt); err != nil {
		return nil, serrors.Wrap("parsing topology", err)
	}
	if logger.Enabled(log.DebugLevel) {
		logger.Debug("Topology read", "topology", string(raw))
	}

	// Precondition: every node must have at least one incident link, else the
	// relabel fixpoint below could never cover it.
	incident := make(map[int]struct{}, len(rt.Nodes))
	for _, l := range rt.Links {
		incident[l.Src] = struct{}{}
		incident[l.Dst] = struct{}{}
	}
	for _, n := range rt.Nodes {
		if _, ok := incident[n.ID]; !ok {
			return nil, serrors.JoinNoStack(ErrDisconnectedNode, nil, "id", n.ID)
		}
	}

	// Fixpoint relabeling: sweep all links, assigning each endpoint the name
	// its link records, until every node is covered. A node's name may only
	// become known through a link encountered late in the sweep, hence the
	// outer loop.
	relabels := make(map[int]int, len(rt.Nodes))
	for len(relabels) < len(rt.Nodes) {
		before := len(relabels)
		for _, l := range rt.Links {
			if _, ok := relabels[l.Src]; !ok {
				relabels[l.Src] = int(l.SrcName)
			}
			if _, ok := relabels[l.Dst]; !ok {
				relabels[l.Dst] = int(l.DstName)
			}
		}
		if len(relabels) == before {
			// Links reference node keys that are not in the node set.
			return nil, serrors.New("relabeling stalled",
				"covered", before, "nodes", len(rt.Nodes))
		}
	}

	topo, err := applyRelabels(rt, relabels)
	if err != nil {
		return nil, err
	}
	if logger.Enabled(log.DebugLevel) {
		relabeled, _ := json.Marshal(topo)
		logger.Debug("Topology relabeled", "topology", string(relabeled))
	}
	return topo, nil
}

func applyRelabels(rt rawTopology, relabels map[int]int) (*Topology, error) {
	seen := make(map[int]int, len(rt.Nodes))
	topo := &Topology{
		Nodes: make([]Node, 0, len(rt.Nodes)),
		Links: make([]Link, 0, len(rt.Links)),
	}
	for _, n := range rt.Nodes {
		id := relabels[n.ID]
		if prev, ok := seen[id]; ok {
			return nil, serrors.New("duplicate stable name",
				"name", id, "node", n.ID, "prev", prev)
		}
		seen[id] = n.ID
		mbox := n.Mbox || (n.HasMbox != nil && bool(*n.HasMbox))
		topo.Nodes = append(topo.Nodes, Node{ID: id, Mbox: mbox})
	}
	// Stable names must form a dense range starting at 0.
	for i := 0; i < len(rt.Nodes); i++ {
		if _, ok := seen[i]; !ok {
			return nil, serrors.New("stable names are not dense", "missing", i)
		}
	}
	for _, l := range rt.Links {
		src, dst := relabels[l.Src], relabels[l.Dst]
		topo.Links = append(topo.Links, Link{
			Src: src, Dst: dst, SrcName: src, DstName: dst,
		})
	}
	return topo, nil
}

// flexInt decodes a JSON number or a number-valued string.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return serrors.Wrap("parsing numeric string", err, "value", s)
		}
		*f = flexInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexInt(v)
	return nil
}

// flexBool decodes a JSON bool or the strings "true"/"false".
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = s == "true"
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexBool(v)
	return nil
}
