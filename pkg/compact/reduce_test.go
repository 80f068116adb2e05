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
	"fmt"
	"testing"

	"github.com/gaissmai/bart"
	"github.com/netobserv/cidr-compactor/pkg/cidr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scatter returns spread-out /32 prefixes, deterministic per index.
func scatter(count int) []cidr.Prefix {
	prefixes := make([]cidr.Prefix, 0, count)
	for i := 0; i < count; i++ {
		a, b := (i*37)%256, (i*101)%256
		prefixes = append(prefixes, cidr.MustParse(fmt.Sprintf("%d.%d.%d.%d/32", a, b, i%256, (i*7)%256)))
	}
	return prefixes
}

func TestReduceToTarget(t *testing.T) {
	tree := New()
	for _, p := range scatter(100) {
		tree.Insert(p)
	}
	initial := tree.OutputCount()
	require.Greater(t, initial, 10)

	merges := tree.Reduce(10, nil)

	assert.LessOrEqual(t, tree.OutputCount(), 10)
	assert.Positive(t, merges)
	assert.LessOrEqual(t, tree.Coverage(), 1.0)
}

func TestReduceProgressReportsPreMergeValues(t *testing.T) {
	tree := New()
	for _, p := range scatter(20) {
		tree.Insert(p)
	}

	var outputs []int
	var coverages []float64
	tree.Reduce(5, func(coverage float64, count int) {
		coverages = append(coverages, coverage)
		outputs = append(outputs, count)
	})

	require.NotEmpty(t, outputs)
	// first report carries the pre-reduction state
	assert.Equal(t, 20, outputs[0])
	// entry count never grows; every merge strictly grows coverage
	for i := 1; i < len(outputs); i++ {
		assert.LessOrEqual(t, outputs[i], outputs[i-1])
		assert.Greater(t, coverages[i], coverages[i-1])
	}
}

func TestReduceBelowOneCollapsesToRoot(t *testing.T) {
	tree := New()
	for _, p := range scatter(8) {
		tree.Insert(p)
	}

	// no candidate remains once the root is finalized, so the loop stops at 1
	tree.Reduce(0, nil)
	assert.Equal(t, 1, tree.OutputCount())
	assert.Equal(t, 1.0, tree.Coverage())
	assert.Equal(t, []cidr.Prefix{cidr.MustParse("0.0.0.0/0")}, tree.Outputs())
}

func TestReduceNoopWhenUnderTarget(t *testing.T) {
	tree := New()
	tree.Insert(cidr.MustParse("10.0.0.0/8"))

	merges := tree.Reduce(40, nil)
	assert.Zero(t, merges)
	assert.Equal(t, 1, tree.OutputCount())
}

// After any reduction, every ingested prefix must still be contained in some
// output block: merging only ever over-covers. An independent routing table
// acts as the containment oracle.
func TestReduceNeverUncovers(t *testing.T) {
	inputs := scatter(200)
	tree := New()
	for _, p := range inputs {
		tree.Insert(p)
	}

	tree.Reduce(15, nil)

	oracle := new(bart.Table[struct{}])
	for _, p := range tree.Outputs() {
		oracle.Insert(p.Netip(), struct{}{})
	}
	for _, p := range inputs {
		_, ok := oracle.LookupPrefix(p.Netip())
		assert.True(t, ok, "input %s no longer covered", p)
	}
}
