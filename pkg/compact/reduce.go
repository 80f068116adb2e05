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

import log "github.com/sirupsen/logrus"

// ProgressFunc receives the coverage fraction and entry count as they stand
// before a merge is applied.
type ProgressFunc func(coverage float64, outputs int)

// Reduce greedily applies the cheapest merge until the trie renders at most
// target entries, reporting pre-merge statistics through progress (may be
// nil). Every merge prunes at least one node and strictly grows coverage, so
// the loop terminates; it also stops when the whole space has collapsed into
// a single finalized root. Returns the number of merges applied.
func (t *Trie) Reduce(target int, progress ProgressFunc) int {
	merges := 0
	for t.OutputCount() > target {
		best, ok := t.BestMergeCandidate()
		if !ok {
			// single finalized root, nothing left to merge
			break
		}
		if progress != nil {
			progress(t.Coverage(), t.OutputCount())
		}
		log.Debugf("merging %s: cost=%v replaces=%d", best.Prefix, best.Cost, best.Outputs)
		t.Insert(best.Prefix)
		merges++
	}
	return merges
}
