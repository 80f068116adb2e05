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

package compact

import "github.com/netobserv/cidr-compactor/pkg/cidr"

// Candidate is a place where the trie could be lossily collapsed: finalizing
// Prefix would replace Outputs entries with one, spuriously covering Cost
// additional addresses.
type Candidate struct {
	Cost    float64
	Outputs int
	Prefix  cidr.Prefix
}

// collapseCost is the number of addresses wrongly declared covered if the
// prefix were finalized at the given coverage fraction.
func collapseCost(p cidr.Prefix, coverage float64) float64 {
	return p.Size() * (1 - coverage)
}

// less reports whether c is strictly preferable to o: lower cost first, then
// the shorter prefix, then the smaller network address. The tie-break keeps
// the reduction loop deterministic when coverage fractions are equal.
func (c *Candidate) less(o *Candidate) bool {
	if c.Cost != o.Cost {
		return c.Cost < o.Cost
	}
	if c.Prefix.Len() != o.Prefix.Len() {
		return c.Prefix.Len() < o.Prefix.Len()
	}
	return c.Prefix.Compare(o.Prefix) < 0
}

// refreshBest picks the cheapest collapse in this subtree: finalizing the
// node itself, or the cached best of either child, propagated unchanged.
// Never called on a finalized node.
func (n *node) refreshBest() {
	best := &Candidate{
		Cost:    collapseCost(n.prefix, n.coverage),
		Outputs: n.outputs,
		Prefix:  n.prefix,
	}
	for _, c := range []*node{n.left, n.right} {
		if c != nil && c.best != nil && c.best.less(best) {
			best = c.best
		}
	}
	n.best = best
}

// BestMergeCandidate returns the globally cheapest collapse, or ok=false when
// the whole space is already a single finalized root and nothing can merge.
func (t *Trie) BestMergeCandidate() (Candidate, bool) {
	if t.root.best == nil {
		return Candidate{}, false
	}
	return *t.root.best, true
}
