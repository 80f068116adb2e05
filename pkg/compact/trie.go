/*
 * Copyright (C) 2023 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

// Package compact maintains a binary trie over IPv4 address bits and greedily
// merges entries until the set of covered CIDR blocks fits a configured bound.
package compact

import (
	"github.com/netobserv/cidr-compactor/pkg/cidr"
)

// node is one trie position; its prefix is the bit path from the root. A
// finalized node declares its whole range covered and owns no children.
type node struct {
	prefix   cidr.Prefix
	final    bool
	left     *node
	right    *node
	nodes    int
	outputs  int
	coverage float64
	best     *Candidate
}

func newNode(p cidr.Prefix) *node {
	return &node{prefix: p, nodes: 1}
}

// Trie is the aggregation trie. It is a single-owner, single-goroutine
// structure: every Insert leaves all per-node statistics re-established
// before returning.
type Trie struct {
	root *node
}

// New returns a trie whose root covers the whole IPv4 space, nothing covered.
func New() *Trie {
	t := &Trie{root: newNode(cidr.Prefix{})}
	// a non-finalized node always carries a merge candidate, the root included
	t.root.refresh()
	return t
}

// Insert folds one prefix into the trie. Inserting below an already
// finalized ancestor is a no-op: the range is covered already. Inserting the
// prefix of an existing node finalizes that node, pruning anything beneath
// it; two finalized siblings collapse into their parent on the way back up.
func (t *Trie) Insert(p cidr.Prefix) {
	t.root.insert(p, 0)
}

func (n *node) insert(p cidr.Prefix, depth int) {
	if n.final {
		return
	}
	if depth < p.Len() {
		bit := p.Bit(depth)
		child := &n.left
		if bit {
			child = &n.right
		}
		if *child == nil {
			*child = newNode(n.prefix.AppendBit(bit))
		}
		(*child).insert(p, depth+1)
	} else {
		// full path traversed: this node is the requested prefix
		n.finalize()
	}
	n.collapse()
	n.refresh()
}

// finalize marks the node's whole range covered. Children are dropped: the
// finalized range subsumes theirs.
func (n *node) finalize() {
	n.final = true
	n.left = nil
	n.right = nil
}

// collapse finalizes the node when both children exist and are finalized;
// the two halves together already fill the parent's range.
func (n *node) collapse() {
	if n.left != nil && n.right != nil && n.left.final && n.right.final {
		n.finalize()
	}
}

// refresh recomputes the node's statistics and cached merge candidate from
// its (possibly just pruned) children. Called bottom-up on every insert path.
func (n *node) refresh() {
	nodes := 1
	outputs := 0
	coverage := 0.0
	for _, c := range []*node{n.left, n.right} {
		if c == nil {
			continue
		}
		nodes += c.nodes
		outputs += c.outputs
		// each child represents exactly half of this node's range
		coverage += c.coverage / 2
	}
	n.nodes = nodes
	if n.final {
		n.outputs = 1
		n.coverage = 1.0
		n.best = nil
		return
	}
	n.outputs = outputs
	n.coverage = coverage
	n.refreshBest()
}

// OutputCount returns the number of CIDR entries the trie would render.
func (t *Trie) OutputCount() int {
	return t.root.outputs
}

// Coverage returns the fraction of the full IPv4 space declared covered.
func (t *Trie) Coverage() float64 {
	return t.root.coverage
}

// NodeCount returns the number of trie nodes, root included. Diagnostic.
func (t *Trie) NodeCount() int {
	return t.root.nodes
}

// All returns a restartable iterator over the finalized prefixes in address
// order (left child before right), each with its 0/1 bit path from the root.
// Iteration stops early when yield returns false.
func (t *Trie) All() func(yield func(path string, p cidr.Prefix) bool) {
	return func(yield func(string, cidr.Prefix) bool) {
		_ = t.root.allRec("", yield)
	}
}

func (n *node) allRec(path string, yield func(string, cidr.Prefix) bool) bool {
	if n.final {
		return yield(path, n.prefix)
	}
	if n.left != nil && !n.left.allRec(path+"0", yield) {
		return false
	}
	if n.right != nil && !n.right.allRec(path+"1", yield) {
		return false
	}
	return true
}

// Outputs returns the finalized prefixes as a slice, in address order.
func (t *Trie) Outputs() []cidr.Prefix {
	var out []cidr.Prefix
	t.All()(func(_ string, p cidr.Prefix) bool {
		out = append(out, p)
		return true
	})
	return out
}
