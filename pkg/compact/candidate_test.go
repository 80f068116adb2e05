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

import (
	"testing"

	"github.com/netobserv/cidr-compactor/pkg/cidr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseCost(t *testing.T) {
	// an empty /8 costs its full 2^24 addresses
	assert.Equal(t, float64(1<<24), collapseCost(cidr.MustParse("10.0.0.0/8"), 0))
	// a half-covered /8 costs half of that
	assert.Equal(t, float64(1<<23), collapseCost(cidr.MustParse("10.0.0.0/8"), 0.5))
	// a fully covered node costs nothing
	assert.Equal(t, 0.0, collapseCost(cidr.MustParse("10.0.0.0/8"), 1))
	// a /32 misses at most one address
	assert.Equal(t, 1.0, collapseCost(cidr.MustParse("10.0.0.1/32"), 0))
}

func TestCandidateOrdering(t *testing.T) {
	cheap := &Candidate{Cost: 1, Prefix: cidr.MustParse("10.0.0.0/8")}
	costly := &Candidate{Cost: 2, Prefix: cidr.MustParse("10.0.0.0/8")}
	assert.True(t, cheap.less(costly))
	assert.False(t, costly.less(cheap))

	// equal cost: the shorter prefix wins
	short := &Candidate{Cost: 1, Prefix: cidr.MustParse("10.0.0.0/8")}
	long := &Candidate{Cost: 1, Prefix: cidr.MustParse("10.0.0.0/16")}
	assert.True(t, short.less(long))
	assert.False(t, long.less(short))

	// equal cost and length: the smaller address wins
	low := &Candidate{Cost: 1, Prefix: cidr.MustParse("10.0.0.0/8")}
	high := &Candidate{Cost: 1, Prefix: cidr.MustParse("11.0.0.0/8")}
	assert.True(t, low.less(high))
	assert.False(t, high.less(low))
	assert.False(t, low.less(low))
}

func TestBestMergeCandidate(t *testing.T) {
	tree := New()
	tree.Insert(cidr.MustParse("10.0.0.0/32"))
	tree.Insert(cidr.MustParse("10.0.0.1/32")) // collapses into 10.0.0.0/31
	tree.Insert(cidr.MustParse("10.0.0.4/32"))

	// cheapest collapse: 10.0.0.4/31 wraps the lone /32 at the cost of one
	// spurious address
	best, ok := tree.BestMergeCandidate()
	require.True(t, ok)
	assert.Equal(t, cidr.MustParse("10.0.0.4/31"), best.Prefix)
	assert.Equal(t, 1.0, best.Cost)
	assert.Equal(t, 1, best.Outputs)
}

func TestBestCandidateDeterministicOnTies(t *testing.T) {
	// two /32s in disjoint halves: both /31 parents cost one address; the
	// tie-break must always pick the numerically smaller prefix
	for i := 0; i < 5; i++ {
		tree := New()
		tree.Insert(cidr.MustParse("200.0.0.0/32"))
		tree.Insert(cidr.MustParse("10.0.0.0/32"))

		best, ok := tree.BestMergeCandidate()
		require.True(t, ok)
		assert.Equal(t, cidr.MustParse("10.0.0.0/31"), best.Prefix)
	}
}

func TestNoCandidateOnFinalizedRoot(t *testing.T) {
	tree := New()
	tree.Insert(cidr.MustParse("0.0.0.0/0"))

	_, ok := tree.BestMergeCandidate()
	assert.False(t, ok)
}
